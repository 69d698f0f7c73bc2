package schedulers

import (
	"fmt"
	"strings"
)

// Policy selects the dispatch rule of a simulation.
type Policy string

const (
	FirstInFirstOut  = Policy("FIFO")
	ShortestJobFirst = Policy("SJF")
	Priority         = Policy("PRIORITY")
)

// Policies returns every supported policy in the order SimulateAll runs them.
func Policies() []Policy {
	return []Policy{FirstInFirstOut, ShortestJobFirst, Priority}
}

// ParsePolicy resolves a case-insensitive selector. FCFS and PRIORIDAD are
// accepted as aliases.
func ParsePolicy(value string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "FIFO", "FCFS":
		return FirstInFirstOut, nil
	case "SJF":
		return ShortestJobFirst, nil
	case "PRIORITY", "PRIORIDAD":
		return Priority, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
}

func (p Policy) String() string {
	return string(p)
}
