package schedulers

import (
	"math"
	"strconv"
	"strings"

	"github.com/josefdc/Algoritmos-Despacho/internal/core"
)

// Validate checks the registry before any dispatch step runs. The clock never
// exceeds the latest arrival plus the sum of bursts, so that bound must fit in an int.
func Validate(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[string]int, len(processes))
	latest, total := 0, 0
	for i, process := range processes {
		switch {
		case strings.TrimSpace(process.ID) == "":
			return NewInvalidProcessError(i, process.ID, "empty process id")
		case process.ArrivalTime < 0:
			return NewInvalidProcessError(i, process.ID, "negative arrival time")
		case process.BurstTime <= 0:
			return NewInvalidProcessError(i, process.ID, "burst time must be positive")
		}
		if prev, ok := seen[process.ID]; ok {
			return NewInvalidProcessError(i, process.ID, "duplicate process id, first seen at #"+strconv.Itoa(prev))
		}
		seen[process.ID] = i

		if process.BurstTime > math.MaxInt-total {
			return NewInvalidProcessError(i, process.ID, "schedule end overflows the clock")
		}
		total += process.BurstTime
		latest = max(latest, process.ArrivalTime)
		if latest > math.MaxInt-total {
			return NewInvalidProcessError(i, process.ID, "schedule end overflows the clock")
		}
	}
	return nil
}
