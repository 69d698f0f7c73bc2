package schedulers

import "github.com/josefdc/Algoritmos-Despacho/internal/core"

// firstInFirstOut picks the earliest arrival, then the earliest submission.
func firstInFirstOut(a, b core.Candidate) bool {
	if a.Process.ArrivalTime != b.Process.ArrivalTime {
		return a.Process.ArrivalTime < b.Process.ArrivalTime
	}
	return a.Index < b.Index
}

// ScheduleFirstInFirstOut dispatches processes in arrival order.
func ScheduleFirstInFirstOut(processes []core.Process) (*Result, error) {
	return schedule(FirstInFirstOut, processes, firstInFirstOut)
}
