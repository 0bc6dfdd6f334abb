package schedulers

import (
	"log"

	"cpu-sim/internal/core"
	"cpu-sim/internal/requests"
	"cpu-sim/internal/responses"
)

// ShortestRemainingTimeFirst is preemptive SJF: every time unit it rescans
// the arrived, unfinished records and runs the one with the least remaining
// time. Ties break on earlier arrival, then smaller pid, so the choice is a
// total order and runs are deterministic.
type ShortestRemainingTimeFirst struct{}

func NewShortestRemainingTimeFirst() *ShortestRemainingTimeFirst {
	return &ShortestRemainingTimeFirst{}
}

func (s *ShortestRemainingTimeFirst) Name() string {
	return "Preemptive SJF (SRTF)"
}

func (s *ShortestRemainingTimeFirst) NextDecision(clock int, table *core.Table) Decision {
	pick := -1
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		if r.Completed || r.Arrival > clock {
			continue
		}
		if pick == -1 || shorterJob(r, table.At(pick)) {
			pick = i
		}
	}
	if pick == -1 {
		return idleUntilNextArrival(clock, table)
	}
	return Decision{Index: pick, Duration: 1}
}

func shorterJob(a, b *core.ProcessRecord) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Pid < b.Pid
}

func ScheduleShortestRemainingTimeFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running srtf algorithm ...")
	table, err := core.Load(jobsFromRequest(request))
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline := Run(table, NewShortestRemainingTimeFirst())
	return GenerateResponse(table, timeline), nil
}
