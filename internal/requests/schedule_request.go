package requests

import (
	"github.com/josefdc/Algoritmos-Despacho/internal/core"
	"github.com/josefdc/Algoritmos-Despacho/internal/schedulers"
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
}

type ScheduleRequests struct {
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Jobs      []Job  `json:"processes" yaml:"processes"`
}

type AskRequest struct {
	ScheduleRequests `yaml:",inline"`
	Question         string `json:"question" yaml:"question"`
}

// PriorityDefaults controls how a missing priority is resolved.
type PriorityDefaults struct {
	Default  int
	Required bool
}

// Processes converts the request jobs into process descriptors. A missing
// priority takes the default value unless the policy is PRIORITY and
// priorities are required.
func (r *ScheduleRequests) Processes(policy schedulers.Policy, defaults PriorityDefaults) ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		process := core.Process{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    defaults.Default,
		}
		if job.Priority != nil {
			process.Priority = *job.Priority
		} else if defaults.Required && policy == schedulers.Priority {
			return nil, schedulers.NewInvalidProcessError(i, job.ProcessId, "missing priority")
		}
		processes = append(processes, process)
	}
	return processes, nil
}
