package requests

import (
	"encoding/json"
	"fmt"

	"cpu-scheduler/internal/core"
)

// Process is the wire form of one process. Numbers are kept as json.Number
// so that fractional values can be rejected instead of truncated.
type Process struct {
	Pid         json.Number
	ArrivalTime json.Number
	BurstTime   json.Number
	Priority    json.Number
}

// field aliases accepted on the wire, first match wins
var (
	pidKeys      = []string{"pid", "process_id", "id"}
	arrivalKeys  = []string{"arrival_time", "arrivalTime", "arrival"}
	burstKeys    = []string{"burst_time", "burstTime", "burst"}
	priorityKeys = []string{"priority"}
)

// UnmarshalJSON picks the known fields out of a process object and ignores
// everything else, so clients may attach labels or colors.
func (p *Process) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Pid = lookup(raw, pidKeys)
	p.ArrivalTime = lookup(raw, arrivalKeys)
	p.BurstTime = lookup(raw, burstKeys)
	p.Priority = lookup(raw, priorityKeys)
	return nil
}

func lookup(raw map[string]json.RawMessage, keys []string) json.Number {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			// keep the literal, ToProcesses reports it with the process position
			return json.Number(v)
		}
		if n != "" {
			return n
		}
	}
	return ""
}

type ScheduleRequest struct {
	Processes []Process   `json:"processes"`
	Quantum   json.Number `json:"quantum"`
}

// ToProcesses validates the request and converts it for the schedulers.
// A missing pid defaults to the 1-based position of the process; an
// explicit pid, 0 included, is kept as given.
// maxProcesses <= 0 disables the size limit.
func (r *ScheduleRequest) ToProcesses(requirePriority bool, maxProcesses int) ([]core.Process, error) {
	if len(r.Processes) == 0 {
		return nil, fmt.Errorf("%w: processes list is empty", core.ErrMissingInput)
	}
	if maxProcesses > 0 && len(r.Processes) > maxProcesses {
		return nil, fmt.Errorf("%w: at most %d processes allowed, got %d", core.ErrInvalidInput, maxProcesses, len(r.Processes))
	}

	processes := make([]core.Process, len(r.Processes))
	for i, p := range r.Processes {
		position := i + 1
		arrival, err := requiredInt(p.ArrivalTime, position, "arrival time")
		if err != nil {
			return nil, err
		}
		burst, err := requiredInt(p.BurstTime, position, "burst time")
		if err != nil {
			return nil, err
		}

		pid := position
		if p.Pid != "" {
			if pid, err = toInt(p.Pid, position, "pid"); err != nil {
				return nil, err
			}
		}

		var priority int
		if requirePriority || p.Priority != "" {
			if priority, err = requiredInt(p.Priority, position, "priority"); err != nil {
				return nil, err
			}
		}

		if arrival < 0 || arrival > core.MaxTime {
			return nil, fmt.Errorf("%w: process %d: arrival time must be in [0, %d]", core.ErrInvalidInput, position, core.MaxTime)
		}
		if burst <= 0 || burst > core.MaxTime {
			return nil, fmt.Errorf("%w: process %d: burst time must be in [1, %d]", core.ErrInvalidInput, position, core.MaxTime)
		}

		processes[i] = core.Process{
			Pid:         pid,
			ArrivalTime: arrival,
			BurstTime:   burst,
			Priority:    priority,
		}
	}
	return processes, nil
}

// TimeQuantum returns the round-robin quantum, or fallback when the
// request has none and fallback is positive.
func (r *ScheduleRequest) TimeQuantum(fallback int) (int, error) {
	if r.Quantum == "" {
		if fallback > 0 {
			return fallback, nil
		}
		return 0, fmt.Errorf("%w: quantum is required", core.ErrMissingInput)
	}
	q, err := r.Quantum.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: quantum must be an integer, got %s", core.ErrInvalidParameter, r.Quantum)
	}
	if q <= 0 {
		return 0, fmt.Errorf("%w: quantum must be positive, got %d", core.ErrInvalidParameter, q)
	}
	return int(q), nil
}

func requiredInt(n json.Number, position int, field string) (int, error) {
	if n == "" {
		return 0, fmt.Errorf("%w: process %d: %s is required", core.ErrInvalidInput, position, field)
	}
	return toInt(n, position, field)
}

func toInt(n json.Number, position int, field string) (int, error) {
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: process %d: %s must be an integer, got %s", core.ErrInvalidInput, position, field, n)
	}
	return int(v), nil
}
