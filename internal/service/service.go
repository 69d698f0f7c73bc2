// Package service runs simulations on behalf of the HTTP and CLI surfaces:
// it resolves requests into process registries, traces and logs each run,
// persists it and forwards questions to the assistant.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/josefdc/Algoritmos-Despacho/internal/assistant"
	"github.com/josefdc/Algoritmos-Despacho/internal/core"
	"github.com/josefdc/Algoritmos-Despacho/internal/requests"
	"github.com/josefdc/Algoritmos-Despacho/internal/responses"
	"github.com/josefdc/Algoritmos-Despacho/internal/schedulers"
	"github.com/josefdc/Algoritmos-Despacho/internal/store"
	"github.com/josefdc/Algoritmos-Despacho/internal/tracing"
)

// ErrAssistantDisabled is returned by Ask when no assistant is configured.
var ErrAssistantDisabled = errors.New("assistant is not configured")

// Asker answers a question given a textual simulation context.
type Asker interface {
	Ask(ctx context.Context, contextText, question string) (string, error)
}

type Service struct {
	store     store.Service
	assistant Asker
	defaults  requests.PriorityDefaults
	newID     func() string
	now       func() time.Time
}

// Store returns the run store.
func (s *Service) Store() store.Service {
	return s.store
}

// Simulate runs a single policy. An empty policy falls back to the request algorithm.
func (s *Service) Simulate(ctx context.Context, request *requests.ScheduleRequests, policy schedulers.Policy) (*responses.SingleScheduleResponse, error) {
	if policy == "" {
		parsed, err := schedulers.ParsePolicy(request.Algorithm)
		if err != nil {
			return nil, err
		}
		policy = parsed
	}
	processes, err := request.Processes(policy, s.defaults)
	if err != nil {
		return nil, err
	}
	schedule, err := s.simulate(ctx, processes, policy)
	if err != nil {
		return nil, err
	}
	run := s.save(ctx, processes, schedule)
	logRun(run, len(processes), schedule)
	return &responses.SingleScheduleResponse{RunId: run, ScheduleResponse: schedule}, nil
}

// SimulateAll runs every policy over the same registry.
func (s *Service) SimulateAll(ctx context.Context, request *requests.ScheduleRequests) (*responses.AllSchedulesResponse, error) {
	// priorities are resolved as for PRIORITY so a required priority is enforced once for all runs
	processes, err := request.Processes(schedulers.Priority, s.defaults)
	if err != nil {
		return nil, err
	}
	schedules := make([]responses.ScheduleResponse, 0, len(schedulers.Policies()))
	for _, policy := range schedulers.Policies() {
		schedule, err := s.simulate(ctx, processes, policy)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	run := s.save(ctx, processes, schedules...)
	logRun(run, len(processes), schedules...)
	return &responses.AllSchedulesResponse{RunId: run, Schedules: schedules}, nil
}

// Ask simulates the request policy and asks the assistant about the outcome.
func (s *Service) Ask(ctx context.Context, request *requests.AskRequest) (*responses.AskResponse, error) {
	if s.assistant == nil {
		return nil, ErrAssistantDisabled
	}
	policy, err := schedulers.ParsePolicy(request.Algorithm)
	if err != nil {
		return nil, err
	}
	processes, err := request.Processes(policy, s.defaults)
	if err != nil {
		return nil, err
	}
	schedule, err := s.simulate(ctx, processes, policy)
	if err != nil {
		return nil, err
	}
	answer, err := s.assistant.Ask(ctx, assistant.BuildContext(processes, &schedule), request.Question)
	if err != nil {
		return nil, err
	}
	return &responses.AskResponse{Answer: answer}, nil
}

func (s *Service) simulate(ctx context.Context, processes []core.Process, policy schedulers.Policy) (schedule responses.ScheduleResponse, err error) {
	_, span := tracing.StartSpan(ctx, "simulate")
	span.WithAttributes(map[string]string{"policy": policy.String()}).WithInt("processes", len(processes))
	defer func() { tracing.EndSpan(span, err) }()

	result, err := schedulers.Simulate(processes, policy)
	if err != nil {
		return schedule, err
	}
	schedule = schedulers.GenerateResponse(result)
	span.WithInt("total_time", schedule.TotalTime)
	return schedule, nil
}

func logRun(run string, processes int, schedules ...responses.ScheduleResponse) {
	for _, schedule := range schedules {
		log.Printf("run: %s policy: %s processes: %d total time: %d idle time: %d", run, schedule.Algorithm, processes, schedule.TotalTime, schedule.IdleTime)
	}
}

// save persists the run and returns its id, or an empty id when the store failed.
func (s *Service) save(ctx context.Context, processes []core.Process, schedules ...responses.ScheduleResponse) string {
	if s.store == nil {
		return ""
	}
	run := &store.Run{
		ID:        s.newID(),
		CreatedAt: s.now(),
		Processes: processes,
		Schedules: schedules,
	}
	if err := s.store.Save(ctx, run); err != nil {
		log.Printf("failed to save run %s: %v", run.ID, err)
		return ""
	}
	return run.ID
}

// New creates a service. A nil asker disables questions.
func New(runs store.Service, asker Asker, defaults requests.PriorityDefaults) *Service {
	return &Service{
		store:     runs,
		assistant: asker,
		defaults:  defaults,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}
