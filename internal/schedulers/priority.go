package schedulers

import "github.com/josefdc/Algoritmos-Despacho/internal/core"

// highestPriority picks the lowest priority value; lower means more urgent.
func highestPriority(a, b core.Candidate) bool {
	if a.Process.Priority != b.Process.Priority {
		return a.Process.Priority < b.Process.Priority
	}
	return firstInFirstOut(a, b)
}

// SchedulePriority dispatches the most urgent eligible process each time the
// CPU frees up. A running process is never preempted.
func SchedulePriority(processes []core.Process) (*Result, error) {
	return schedule(Priority, processes, highestPriority)
}
