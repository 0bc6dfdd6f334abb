package schedulers

import (
	"fmt"
	"log"

	"cpu-sim/internal/core"
	"cpu-sim/internal/requests"
	"cpu-sim/internal/responses"
)

// RoundRobin grants the head of a FIFO ready queue up to one quantum,
// stepped one unit at a time so arrivals inside the slice are queued before
// the running record is requeued at the tail.
type RoundRobin struct {
	quantum   int
	ready     []int
	current   int
	sliceLeft int
}

func NewRoundRobin(quantum int) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: time quantum must be > 0, got %d", core.ErrInvalidInput, quantum)
	}
	return &RoundRobin{quantum: quantum, current: -1}, nil
}

func (rr *RoundRobin) Name() string {
	return fmt.Sprintf("Round Robin (q=%d)", rr.quantum)
}

func (rr *RoundRobin) NextDecision(clock int, table *core.Table) Decision {
	// Arrivals first: a record arriving mid-slice must sit ahead of the
	// running record when that one goes back to the tail.
	rr.enqueueArrivals(clock, table)

	if rr.current >= 0 {
		r := table.At(rr.current)
		switch {
		case r.Completed:
			rr.current = -1
		case rr.sliceLeft == 0:
			rr.ready = append(rr.ready, rr.current)
			rr.current = -1
		default:
			rr.sliceLeft--
			return Decision{Index: rr.current, Duration: 1}
		}
	}

	if len(rr.ready) == 0 {
		return idleUntilNextArrival(clock, table)
	}

	idx := rr.ready[0]
	rr.ready = rr.ready[1:]
	slice := table.At(idx).Remaining
	if slice > rr.quantum {
		slice = rr.quantum
	}
	rr.current = idx
	rr.sliceLeft = slice - 1
	return Decision{Index: idx, Duration: 1}
}

func (rr *RoundRobin) enqueueArrivals(clock int, table *core.Table) {
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		if !r.Enqueued && !r.Completed && r.Arrival <= clock {
			rr.ready = append(rr.ready, i)
			r.Enqueued = true
		}
	}
}

func ScheduleRoundRobin(request *requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum =", timeQuantum)
	policy, err := NewRoundRobin(timeQuantum)
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
