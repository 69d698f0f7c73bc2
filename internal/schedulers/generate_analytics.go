package schedulers

import (
	"github.com/josefdc/Algoritmos-Despacho/internal/core"
	"github.com/josefdc/Algoritmos-Despacho/internal/responses"
	"github.com/josefdc/Algoritmos-Despacho/internal/util"
)

// GenerateResponse turns a simulation result into its response payload.
func GenerateResponse(result *Result) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Dispatches))
	for _, dispatch := range result.Dispatches {
		proccessDetails = append(proccessDetails, generateProcessDetails(dispatch))
	}
	totalWaitingTime, _, totalTurnAroundTime := util.Totals(proccessDetails)
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	var utilization, throughput float64
	if total := result.Cpu.TotalTime; total > 0 {
		utilization = float64(result.Cpu.UtilizationTime) / float64(total)
		throughput = float64(len(proccessDetails)) / float64(total)
	}
	return responses.ScheduleResponse{
		Algorithm:             result.Algorithm.String(),
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		TotalWaitingTime:      totalWaitingTime,
		TotalTurnAroundTime:   totalTurnAroundTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Timeline:              result.Timeline,
		Metrics:               result.Metrics,
		Details:               proccessDetails,
	}
}

// response time equals waiting time since a dispatched process runs to completion
func generateProcessDetails(dispatch core.Dispatch) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      dispatch.Process.ID,
		ArrivalTime:    dispatch.Process.ArrivalTime,
		BurstTime:      dispatch.Process.BurstTime,
		Priority:       dispatch.Process.Priority,
		StartTime:      dispatch.Entry.Start,
		CompletionTime: dispatch.Entry.End,
		ResponseTime:   dispatch.Metric.WaitingTime,
		TurnAroundTime: dispatch.Metric.TurnaroundTime,
		WaitingTime:    dispatch.Metric.WaitingTime,
	}
}
