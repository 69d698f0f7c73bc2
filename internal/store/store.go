package store

import (
	"context"
	"errors"
	"time"

	"github.com/josefdc/Algoritmos-Despacho/internal/core"
	"github.com/josefdc/Algoritmos-Despacho/internal/responses"
)

var (
	// ErrNotFound is returned when the requested run does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrInvalidID indicates an empty run id.
	ErrInvalidID = errors.New("store: invalid id")

	// ErrNilRun is returned when the caller attempts to persist a nil run.
	ErrNilRun = errors.New("store: nil run")
)

// Run is one persisted simulation: the registry it was computed from and the
// schedules produced for it.
type Run struct {
	ID        string                       `json:"id"`
	CreatedAt time.Time                    `json:"created_at"`
	Processes []core.Process               `json:"processes"`
	Schedules []responses.ScheduleResponse `json:"schedules"`
}

// Service persists simulation runs.
type Service interface {
	Save(ctx context.Context, run *Run) error

	Load(ctx context.Context, id string) (*Run, error)

	List(ctx context.Context) ([]*Run, error)
}
