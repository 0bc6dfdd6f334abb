package schedulers

import (
	"cpu-sim/internal/core"
	"cpu-sim/internal/requests"
	"cpu-sim/internal/responses"
	"cpu-sim/internal/util"
)

// GenerateResponse derives per-process metrics from a finished table and
// packages them with the timeline. Rows come out in input order.
func GenerateResponse(table *core.Table, timeline *core.Timeline) responses.ScheduleResponse {
	proccessDetails := generateProcessDetails(table)
	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	segments := make([]responses.SegmentResponse, 0, len(timeline.Segments()))
	for _, seg := range timeline.Segments() {
		segments = append(segments, responses.SegmentResponse{
			ProcessId: seg.Pid,
			Idle:      seg.Idle,
			Start:     seg.Start,
			End:       seg.End,
		})
	}

	return responses.ScheduleResponse{
		Timeline:              segments,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               proccessDetails,
	}
}

func generateProcessDetails(table *core.Table) []responses.ProcessResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		turnAround := r.Completion - r.Arrival
		proccessDetails = append(proccessDetails, responses.ProcessResponse{
			ProcessId:      r.Pid,
			ArrivalTime:    r.Arrival,
			BurstTime:      r.Burst,
			CompletionTime: r.Completion,
			WaitingTime:    turnAround - r.Burst,
			TurnAroundTime: turnAround,
		})
	}
	return proccessDetails
}

func jobsFromRequest(request *requests.ScheduleRequests) []core.Job {
	jobs := make([]core.Job, 0, len(request.Jobs))
	for _, job := range request.Jobs {
		jobs = append(jobs, core.Job{
			Pid:     job.ProcessId,
			Arrival: job.ArrivalTime,
			Burst:   job.BurstTime,
		})
	}
	return jobs
}
