package assistant

import (
	"fmt"
	"strings"

	"github.com/josefdc/Algoritmos-Despacho/internal/core"
	"github.com/josefdc/Algoritmos-Despacho/internal/responses"
)

// BuildContext renders the registry and, when present, the schedule computed
// for it as plain text for the assistant.
func BuildContext(processes []core.Process, schedule *responses.ScheduleResponse) string {
	var sb strings.Builder
	sb.WriteString("Processes in the queue:\n")
	for _, process := range processes {
		fmt.Fprintf(&sb, "- Process %s: arrival time=%d, burst time=%d, priority=%d\n",
			process.ID, process.ArrivalTime, process.BurstTime, process.Priority)
	}
	if schedule == nil {
		return sb.String()
	}

	sb.WriteString("\nResults of the last scheduling algorithm:\n")
	for _, entry := range schedule.Timeline {
		fmt.Fprintf(&sb, "- Process %s: start=%d, end=%d\n", entry.ProcessID, entry.Start, entry.End)
	}
	for _, metric := range schedule.Metrics {
		fmt.Fprintf(&sb, "- Process %s: waiting time=%d, turnaround time=%d\n",
			metric.ProcessID, metric.WaitingTime, metric.TurnaroundTime)
	}
	fmt.Fprintf(&sb, "Totals / averages: waiting time=Sum: %d / Average: %.2f, turnaround time=Sum: %d / Average: %.2f\n",
		schedule.TotalWaitingTime, schedule.AverageWaitingTime,
		schedule.TotalTurnAroundTime, schedule.AverageTurnAroundTime)
	fmt.Fprintf(&sb, "\nScheduling algorithm used: %s", schedule.Algorithm)
	return sb.String()
}
