package store

import (
	"context"
	"testing"
	"time"

	"github.com/josefdc/Algoritmos-Despacho/internal/core"
	"github.com/josefdc/Algoritmos-Despacho/internal/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(id string, createdAt time.Time) *Run {
	return &Run{
		ID:        id,
		CreatedAt: createdAt,
		Processes: []core.Process{{ID: "A", ArrivalTime: 5, BurstTime: 3}},
		Schedules: []responses.ScheduleResponse{{
			Algorithm: "FIFO",
			TotalTime: 8,
			IdleTime:  5,
			Timeline:  []core.TimelineEntry{{ProcessID: "A", Start: 5, End: 8}},
			Metrics:   []core.MetricRecord{{ProcessID: "A", WaitingTime: 0, TurnaroundTime: 3}},
		}},
	}
}

func TestServices(t *testing.T) {
	fsStore, err := NewFS(t.TempDir())
	require.NoError(t, err)

	testCases := []struct {
		name    string
		service Service
	}{
		{"memory", NewMemory()},
		{"fs", fsStore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
			second := newRun("run-2", base.Add(time.Minute))
			first := newRun("run-1", base)

			require.NoError(t, tc.service.Save(ctx, second))
			require.NoError(t, tc.service.Save(ctx, first))

			loaded, err := tc.service.Load(ctx, "run-1")
			require.NoError(t, err)
			assert.Equal(t, first.ID, loaded.ID)
			assert.True(t, first.CreatedAt.Equal(loaded.CreatedAt))
			assert.Equal(t, first.Processes, loaded.Processes)
			assert.Equal(t, first.Schedules[0].Timeline, loaded.Schedules[0].Timeline)

			runs, err := tc.service.List(ctx)
			require.NoError(t, err)
			require.Len(t, runs, 2)
			assert.Equal(t, "run-1", runs[0].ID)
			assert.Equal(t, "run-2", runs[1].ID)

			_, err = tc.service.Load(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = tc.service.Load(ctx, "")
			assert.ErrorIs(t, err, ErrInvalidID)
			assert.ErrorIs(t, tc.service.Save(ctx, nil), ErrNilRun)
			assert.ErrorIs(t, tc.service.Save(ctx, &Run{}), ErrInvalidID)
		})
	}
}
