package schedulers

import (
	"log"

	"cpu-sim/internal/core"
	"cpu-sim/internal/requests"
	"cpu-sim/internal/responses"
)

// FirstComeFirstServe runs the arrived record with the earliest arrival to
// completion. Ties keep input order.
type FirstComeFirstServe struct{}

func NewFirstComeFirstServe() *FirstComeFirstServe {
	return &FirstComeFirstServe{}
}

func (f *FirstComeFirstServe) Name() string {
	return "First Come First Serve"
}

func (f *FirstComeFirstServe) NextDecision(clock int, table *core.Table) Decision {
	pick := -1
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		if r.Completed || r.Arrival > clock {
			continue
		}
		if pick == -1 || r.Arrival < table.At(pick).Arrival {
			pick = i
		}
	}
	if pick == -1 {
		return idleUntilNextArrival(clock, table)
	}
	return Decision{Index: pick, Duration: table.At(pick).Remaining}
}

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	table, err := core.Load(jobsFromRequest(request))
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline := Run(table, NewFirstComeFirstServe())
	return GenerateResponse(table, timeline), nil
}
