package schedulers

import (
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
	Priority                   Algorithm = "priority"
)

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	Priority,
}

func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case ShortestRemainingTimeFirst:
		return "Shortest-remaining-time-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority"
	}
	return string(a)
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return FirstComeFirstServe, nil
	case "sjf", "sjf_non_preemptive":
		return ShortestJobFirst, nil
	case "srtf", "preemptive_sjf":
		return ShortestRemainingTimeFirst, nil
	case "rr", "round_robin":
		return RoundRobin, nil
	case "priority", "priority_scheduling":
		return Priority, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidParameter, name)
}

// Run dispatches to the scheduler for algorithm. timeQuantum is only read
// by round-robin.
func Run(algorithm Algorithm, processes []core.Process, timeQuantum int) (core.Schedule, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum)
	case Priority:
		return SchedulePriority(processes)
	}
	return core.Schedule{}, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidParameter, algorithm)
}
