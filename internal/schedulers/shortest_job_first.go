package schedulers

import "cpu-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive: whenever the cpu frees up it
// picks the shortest burst among arrived processes and runs it to the end.
func ScheduleShortestJobFirst(processes []core.Process) (core.Schedule, error) {
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
			if shortest == -1 || shorterJob(&procs[i], &procs[shortest]) {
				shortest = i
			}
		}

		if shortest == -1 {
			cpu.IdleUntil(earliestPendingArrival(procs))
			continue
		}

		p := &procs[shortest]
		p.Dispatch(now)
		cpu.Execute(p.Pid, p.BurstTime)
		p.Complete(cpu.Clock())
		completed++
	}

	return generateSchedule(ShortestJobFirst, procs, cpu), nil
}

// shorterJob orders by burst, then arrival. Equal candidates keep scan
// (input) order because the comparison is strict.
func shorterJob(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return a.ArrivalTime < b.ArrivalTime
}
