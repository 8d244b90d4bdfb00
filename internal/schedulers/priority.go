package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriority is non-preemptive priority scheduling. A lower value
// means a higher priority. The choice is re-made at every completion
// among everything that has arrived by then.
func SchedulePriority(processes []core.Process) (core.Schedule, error) {
	procs, err := prepare(processes)
	if err != nil {
		return core.Schedule{}, err
	}

	cpu := core.NewCpu()
	for completed := 0; completed < len(procs); {
		now := cpu.Clock()
		next := -1
		for i := range procs {
			if procs[i].Done() || procs[i].ArrivalTime > now {
				continue
			}
			if next == -1 || higherPriority(&procs[i], &procs[next]) {
				next = i
			}
		}

		if next == -1 {
			cpu.IdleUntil(earliestPendingArrival(procs))
			continue
		}

		p := &procs[next]
		p.Dispatch(now)
		cpu.Execute(p.Pid, p.BurstTime)
		p.Complete(cpu.Clock())
		completed++
	}

	return generateSchedule(Priority, procs, cpu), nil
}

func higherPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}
