package responses

type SegmentResponse struct {
	ProcessId int  `json:"process_id,omitempty"`
	Idle      bool `json:"idle,omitempty"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
}
type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
}
type ScheduleResponse struct {
	Timeline              []SegmentResponse `json:"timeline"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
}
