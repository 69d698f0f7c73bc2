package schedulers

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the process registry has no processes.
	ErrEmptyInput = errors.New("schedulers: empty process registry")

	// ErrUnknownPolicy is returned for a policy selector other than FIFO, SJF or PRIORITY.
	ErrUnknownPolicy = errors.New("schedulers: unknown policy")

	// ErrInvalidProcess is wrapped by every *InvalidProcessError.
	ErrInvalidProcess = errors.New("schedulers: invalid process")
)

// InvalidProcessError describes the first registry row that failed validation.
type InvalidProcessError struct {
	Index     int
	ProcessID string
	Reason    string
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("%v: #%d (%q): %s", ErrInvalidProcess, e.Index, e.ProcessID, e.Reason)
}

func (e *InvalidProcessError) Unwrap() error {
	return ErrInvalidProcess
}

// NewInvalidProcessError creates an InvalidProcessError for the row at index.
func NewInvalidProcessError(index int, processID, reason string) *InvalidProcessError {
	return &InvalidProcessError{Index: index, ProcessID: processID, Reason: reason}
}
