package requests

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}
type ScheduleRequests struct {
	Jobs              []Job `json:"jobs"`
	TimeQuantum       int   `json:"time_quantum,omitempty"`
	LevelsTimeQuantum []int `json:"levels_time_quantum,omitempty"`
}
