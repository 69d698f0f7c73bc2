package responses

import "github.com/josefdc/Algoritmos-Despacho/internal/core"

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string               `json:"algorithm"`
	TotalTime             int                  `json:"total_time"`
	IdleTime              int                  `json:"idle_time"`
	TotalWaitingTime      int                  `json:"total_waiting_time"`
	TotalTurnAroundTime   int                  `json:"total_turn_around_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageResponseTime   float64              `json:"average_response_time"`
	AverageTurnAroundTime float64              `json:"average_turn_around_time"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	CpuThroughput         float64              `json:"cpu_throughput"`
	Timeline              []core.TimelineEntry `json:"timeline"`
	Metrics               []core.MetricRecord  `json:"metrics"`
	Details               []ProcessResponse    `json:"details"`
}

type AllSchedulesResponse struct {
	RunId     string             `json:"run_id,omitempty"`
	Schedules []ScheduleResponse `json:"schedules"`
}

type SingleScheduleResponse struct {
	RunId string `json:"run_id,omitempty"`
	ScheduleResponse
}

type AskResponse struct {
	Answer string `json:"answer"`
}
