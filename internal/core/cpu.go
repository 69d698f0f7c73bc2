package core

// Candidate is a not yet dispatched process together with its submission index.
type Candidate struct {
	Index   int
	Process *Process
}

// Selector reports whether a should be dispatched before b. It must define a
// total order over candidates so that every run is deterministic.
type Selector func(a, b Candidate) bool

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Execute runs the non-preemptive dispatch loop over processes. The clock
// starts at zero and jumps to the next arrival whenever nothing is eligible,
// so the CPU never idles while an eligible process waits.
func Execute(processes []Process, selector Selector) ([]Dispatch, CpuMetric) {
	dispatched := make([]bool, len(processes))
	result := make([]Dispatch, 0, len(processes))
	var metric CpuMetric

	clock := 0
	for len(result) < len(processes) {
		selected := -1
		nextArrival := -1
		for i := range processes {
			if dispatched[i] {
				continue
			}
			process := &processes[i]
			if process.ArrivalTime > clock {
				if nextArrival == -1 || process.ArrivalTime < nextArrival {
					nextArrival = process.ArrivalTime
				}
				continue
			}
			if selected == -1 || selector(Candidate{Index: i, Process: process}, Candidate{Index: selected, Process: &processes[selected]}) {
				selected = i
			}
		}
		if selected == -1 {
			// idle gap
			metric.IdleTime += nextArrival - clock
			clock = nextArrival
			continue
		}

		process := processes[selected]
		dispatched[selected] = true
		start := clock
		end := start + process.BurstTime
		waiting := start - process.ArrivalTime
		result = append(result, Dispatch{
			Process: process,
			Entry:   TimelineEntry{ProcessID: process.ID, Start: start, End: end},
			Metric: MetricRecord{
				ProcessID:      process.ID,
				WaitingTime:    waiting,
				TurnaroundTime: waiting + process.BurstTime,
			},
		})
		metric.UtilizationTime += process.BurstTime
		clock = end
	}
	metric.TotalTime = clock
	return result, metric
}
