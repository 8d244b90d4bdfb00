package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Schedule, error) {
	procs, err := prepare(processes)
	if err != nil {
		return core.Schedule{}, err
	}

	cpu := core.NewCpu()
	for _, i := range arrivalOrder(procs) {
		p := &procs[i]
		cpu.IdleUntil(p.ArrivalTime)
		p.Dispatch(cpu.Clock())
		cpu.Execute(p.Pid, p.BurstTime)
		p.Complete(cpu.Clock())
	}

	return generateSchedule(FirstComeFirstServe, procs, cpu), nil
}
