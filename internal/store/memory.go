package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory, thread-safe run store.
type Memory struct {
	runs map[string]*Run
	mux  sync.RWMutex
}

var _ Service = (*Memory)(nil)

func (s *Memory) Save(_ context.Context, run *Run) error {
	if run == nil {
		return ErrNilRun
	}
	if run.ID == "" {
		return ErrInvalidID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *Memory) Load(_ context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	s.mux.RLock()
	run, ok := s.runs[id]
	s.mux.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return run, nil
}

// List returns all runs, oldest first.
func (s *Memory) List(_ context.Context) ([]*Run, error) {
	s.mux.RLock()
	out := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, run)
	}
	s.mux.RUnlock()
	sortRuns(out)
	return out, nil
}

func sortRuns(runs []*Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.Before(runs[j].CreatedAt)
		}
		return runs[i].ID < runs[j].ID
	})
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{runs: make(map[string]*Run)}
}
