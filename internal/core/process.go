package core

// Process is one descriptor of the process registry. Priority is only read by
// the priority policy; lower values win.
type Process struct {
	ID          string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// TimelineEntry is one execution interval [Start, End) of a process.
type TimelineEntry struct {
	ProcessID string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

// MetricRecord holds the per process metrics of a dispatch.
type MetricRecord struct {
	ProcessID      string `json:"process_id"`
	WaitingTime    int    `json:"waiting_time"`
	TurnaroundTime int    `json:"turn_around_time"`
}

// Dispatch joins a timeline entry with the metrics and the descriptor it was computed from.
type Dispatch struct {
	Process Process
	Entry   TimelineEntry
	Metric  MetricRecord
}
