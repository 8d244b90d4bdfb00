package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin serves a FIFO ready queue in slices of at most
// timeQuantum units. Processes that arrive while a slice runs are queued
// ahead of the process that was just preempted.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.Schedule, error) {
	if timeQuantum <= 0 {
		return core.Schedule{}, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidParameter, timeQuantum)
	}
	procs, err := prepare(processes)
	if err != nil {
		return core.Schedule{}, err
	}

	order := arrivalOrder(procs)
	readyQueue := make([]int, 0, len(procs))
	admitted := 0
	admit := func(now int) {
		for admitted < len(order) && procs[order[admitted]].ArrivalTime <= now {
			readyQueue = append(readyQueue, order[admitted])
			admitted++
		}
	}

	cpu := core.NewCpu()
	for completed := 0; completed < len(procs); {
		admit(cpu.Clock())
		if len(readyQueue) == 0 {
			cpu.IdleUntil(procs[order[admitted]].ArrivalTime)
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]

		p := &procs[current]
		p.Dispatch(cpu.Clock())
		run := min(timeQuantum, p.RemainingTime)
		cpu.Execute(p.Pid, run)
		p.RemainingTime -= run

		admit(cpu.Clock())
		if p.RemainingTime > 0 {
			readyQueue = append(readyQueue, current)
			continue
		}
		p.Complete(cpu.Clock())
		completed++
	}

	return generateSchedule(RoundRobin, procs, cpu), nil
}
