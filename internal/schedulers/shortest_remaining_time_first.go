package schedulers

import "cpu-scheduler/internal/core"

// ScheduleShortestRemainingTimeFirst is preemptive SJF.
//
// The ranking of ready processes can only change when a process arrives or
// finishes, so instead of stepping one unit at a time the running process
// is allowed to run until the next arrival or its own completion, whichever
// comes first. The resulting trace is the same as a unit-step simulation
// that re-selects on every tick.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (core.Schedule, error) {
	procs, err := prepare(processes)
	if err != nil {
		return core.Schedule{}, err
	}

	cpu := core.NewCpu()
	for completed := 0; completed < len(procs); {
		now := cpu.Clock()
		shortest := -1
		for i := range procs {
			if procs[i].Done() || procs[i].ArrivalTime > now {
				continue
			}
			if shortest == -1 || shorterRemaining(&procs[i], &procs[shortest]) {
				shortest = i
			}
		}

		if shortest == -1 {
			cpu.IdleUntil(earliestPendingArrival(procs))
			continue
		}

		p := &procs[shortest]
		p.Dispatch(now)

		run := p.RemainingTime
		if next, ok := nextArrivalAfter(procs, now); ok && next-now < run {
			run = next - now
		}
		cpu.Execute(p.Pid, run)
		p.RemainingTime -= run

		if p.RemainingTime == 0 {
			p.Complete(cpu.Clock())
			completed++
		}
	}

	return generateSchedule(ShortestRemainingTimeFirst, procs, cpu), nil
}

func shorterRemaining(a, b *core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return a.ArrivalTime < b.ArrivalTime
}
