package schedulers

import (
	"fmt"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// prepare validates the input and returns a private copy ready for
// simulation, so callers can reuse their slice across runs. Pids are
// labels only but must be unique.
func prepare(processes []core.Process) ([]core.Process, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: no processes given", core.ErrMissingInput)
	}

	procs := make([]core.Process, len(processes))
	seen := make(map[int]bool, len(processes))
	for i, p := range processes {
		if seen[p.Pid] {
			return nil, fmt.Errorf("%w: duplicate pid %d", core.ErrInvalidInput, p.Pid)
		}
		seen[p.Pid] = true
		if p.ArrivalTime < 0 || p.ArrivalTime > core.MaxTime {
			return nil, fmt.Errorf("%w: pid %d: arrival time must be in [0, %d]", core.ErrInvalidInput, p.Pid, core.MaxTime)
		}
		if p.BurstTime <= 0 || p.BurstTime > core.MaxTime {
			return nil, fmt.Errorf("%w: pid %d: burst time must be in [1, %d]", core.ErrInvalidInput, p.Pid, core.MaxTime)
		}

		procs[i] = core.Process{
			Pid:           p.Pid,
			ArrivalTime:   p.ArrivalTime,
			BurstTime:     p.BurstTime,
			Priority:      p.Priority,
			RemainingTime: p.BurstTime,
		}
	}
	return procs, nil
}

// arrivalOrder returns indexes sorted by arrival, ties kept in input order.
func arrivalOrder(procs []core.Process) []int {
	order := make([]int, len(procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return procs[order[i]].ArrivalTime < procs[order[j]].ArrivalTime
	})
	return order
}

// earliestPendingArrival is the first arrival among unfinished processes.
func earliestPendingArrival(procs []core.Process) int {
	earliest := -1
	for i := range procs {
		if procs[i].Done() {
			continue
		}
		if earliest == -1 || procs[i].ArrivalTime < earliest {
			earliest = procs[i].ArrivalTime
		}
	}
	return earliest
}

// nextArrivalAfter is the earliest arrival strictly later than now.
func nextArrivalAfter(procs []core.Process, now int) (int, bool) {
	next, found := 0, false
	for i := range procs {
		a := procs[i].ArrivalTime
		if procs[i].Done() || a <= now {
			continue
		}
		if !found || a < next {
			next, found = a, true
		}
	}
	return next, found
}

func generateSchedule(algorithm Algorithm, procs []core.Process, cpu *core.Cpu) core.Schedule {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(procs)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(procs)) / float64(metric.TotalTime)
	}

	return core.Schedule{
		Algorithm:             string(algorithm),
		Processes:             procs,
		Gantt:                 cpu.Gantt(),
		Cpu:                   metric,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
	}
}
