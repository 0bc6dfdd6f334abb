package schedulers

import (
	"fmt"
	"log"

	"cpu-sim/internal/core"
	"cpu-sim/internal/requests"
	"cpu-sim/internal/responses"
)

// MultilevelFeedbackQueue keeps one FIFO queue per level. New arrivals enter
// level 0; the head of the highest non-empty level runs with that level's
// quantum, and a record whose slice expires unfinished demotes one level.
// The level below the configured quanta runs records to completion, and a
// running record is never preempted mid-slice.
type MultilevelFeedbackQueue struct {
	quanta    []int
	levels    [][]int
	current   int
	curLevel  int
	sliceLeft int
}

func NewMultilevelFeedbackQueue(levelsTimeQuantum []int) (*MultilevelFeedbackQueue, error) {
	if len(levelsTimeQuantum) == 0 {
		return nil, fmt.Errorf("%w: at least one level time quantum is required", core.ErrInvalidInput)
	}
	for i, q := range levelsTimeQuantum {
		if q <= 0 {
			return nil, fmt.Errorf("%w: level %d time quantum must be > 0, got %d", core.ErrInvalidInput, i, q)
		}
	}
	return &MultilevelFeedbackQueue{
		quanta:  levelsTimeQuantum,
		levels:  make([][]int, len(levelsTimeQuantum)+1),
		current: -1,
	}, nil
}

func (m *MultilevelFeedbackQueue) Name() string {
	return fmt.Sprintf("Multilevel Feedback Queue (q=%v)", m.quanta)
}

func (m *MultilevelFeedbackQueue) NextDecision(clock int, table *core.Table) Decision {
	m.admitArrivals(clock, table)

	if m.current >= 0 {
		r := table.At(m.current)
		switch {
		case r.Completed:
			m.current = -1
		case m.sliceLeft == 0:
			next := m.curLevel + 1
			if next >= len(m.levels) {
				next = len(m.levels) - 1
			}
			m.levels[next] = append(m.levels[next], m.current)
			m.current = -1
		default:
			m.sliceLeft--
			return Decision{Index: m.current, Duration: 1}
		}
	}

	for level := range m.levels {
		if len(m.levels[level]) == 0 {
			continue
		}
		idx := m.levels[level][0]
		m.levels[level] = m.levels[level][1:]
		slice := table.At(idx).Remaining
		if level < len(m.quanta) && slice > m.quanta[level] {
			slice = m.quanta[level]
		}
		m.current = idx
		m.curLevel = level
		m.sliceLeft = slice - 1
		return Decision{Index: idx, Duration: 1}
	}

	return idleUntilNextArrival(clock, table)
}

func (m *MultilevelFeedbackQueue) admitArrivals(clock int, table *core.Table) {
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		if !r.Enqueued && !r.Completed && r.Arrival <= clock {
			m.levels[0] = append(m.levels[0], i)
			r.Enqueued = true
		}
	}
}

func ScheduleMultilevelFeedbackQueue(request *requests.ScheduleRequests, levelsTimeQuantum []int) (responses.ScheduleResponse, error) {
	log.Println("running mlfq algorithm with levels timeQuantum =", levelsTimeQuantum)
	policy, err := NewMultilevelFeedbackQueue(levelsTimeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	table, err := core.Load(jobsFromRequest(request))
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline := Run(table, policy)
	return GenerateResponse(table, timeline), nil
}
