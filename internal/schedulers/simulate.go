package schedulers

import (
	"fmt"

	"github.com/josefdc/Algoritmos-Despacho/internal/core"
)

// Result is the outcome of one simulation run. Metrics are aligned with
// Timeline: both follow dispatch order.
type Result struct {
	Algorithm  Policy
	Timeline   []core.TimelineEntry
	Metrics    []core.MetricRecord
	Dispatches []core.Dispatch
	Cpu        core.CpuMetric
}

// Simulate runs the given policy over the registry.
func Simulate(processes []core.Process, policy Policy) (*Result, error) {
	switch policy {
	case FirstInFirstOut:
		return ScheduleFirstInFirstOut(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case Priority:
		return SchedulePriority(processes)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
}

// SimulateAll runs every policy over the same registry, in Policies order.
func SimulateAll(processes []core.Process) ([]*Result, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}
	results := make([]*Result, 0, len(Policies()))
	for _, policy := range Policies() {
		result, err := Simulate(processes, policy)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func schedule(policy Policy, processes []core.Process, selector core.Selector) (*Result, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}
	// work on a snapshot so the caller's registry is never touched
	snapshot := append([]core.Process(nil), processes...)
	dispatches, cpu := core.Execute(snapshot, selector)

	result := &Result{
		Algorithm:  policy,
		Timeline:   make([]core.TimelineEntry, 0, len(dispatches)),
		Metrics:    make([]core.MetricRecord, 0, len(dispatches)),
		Dispatches: dispatches,
		Cpu:        cpu,
	}
	for _, dispatch := range dispatches {
		result.Timeline = append(result.Timeline, dispatch.Entry)
		result.Metrics = append(result.Metrics, dispatch.Metric)
	}
	return result, nil
}
