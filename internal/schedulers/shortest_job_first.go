package schedulers

import "github.com/josefdc/Algoritmos-Despacho/internal/core"

// shortestJob picks the smallest burst time among eligible processes. Ties
// fall back to arrival order and then submission order.
func shortestJob(a, b core.Candidate) bool {
	if a.Process.BurstTime != b.Process.BurstTime {
		return a.Process.BurstTime < b.Process.BurstTime
	}
	return firstInFirstOut(a, b)
}

// ScheduleShortestJobFirst dispatches the shortest eligible job each time the CPU frees up.
func ScheduleShortestJobFirst(processes []core.Process) (*Result, error) {
	return schedule(ShortestJobFirst, processes, shortestJob)
}
