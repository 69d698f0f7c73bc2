package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byIndex(a, b Candidate) bool {
	return a.Index < b.Index
}

func TestExecute(t *testing.T) {
	processes := []Process{
		{ID: "late", ArrivalTime: 10, BurstTime: 2},
		{ID: "first", ArrivalTime: 3, BurstTime: 4},
		{ID: "second", ArrivalTime: 4, BurstTime: 1},
	}

	dispatches, metric := Execute(processes, byIndex)
	require.Len(t, dispatches, 3)

	assert.Equal(t, TimelineEntry{ProcessID: "first", Start: 3, End: 7}, dispatches[0].Entry)
	assert.Equal(t, TimelineEntry{ProcessID: "second", Start: 7, End: 8}, dispatches[1].Entry)
	assert.Equal(t, TimelineEntry{ProcessID: "late", Start: 10, End: 12}, dispatches[2].Entry)
	assert.Equal(t, MetricRecord{ProcessID: "second", WaitingTime: 3, TurnaroundTime: 4}, dispatches[1].Metric)
	assert.Equal(t, processes[2], dispatches[1].Process)
	assert.Equal(t, CpuMetric{TotalTime: 12, UtilizationTime: 7, IdleTime: 5}, metric)
}

func TestExecute_Empty(t *testing.T) {
	dispatches, metric := Execute(nil, byIndex)
	assert.Empty(t, dispatches)
	assert.Equal(t, CpuMetric{}, metric)
}
