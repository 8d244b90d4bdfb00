package core

// MaxTime bounds arrival and burst times so that a schedule's clock,
// at most the latest arrival plus the sum of all bursts, fits in an int.
const MaxTime = 1 << 30

// Process is one schedulable job. The first four fields are input; the
// rest are filled in by a scheduler.
type Process struct {
	Pid         int
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime  int
	CompletionTime int
	WaitingTime    int
	TurnAroundTime int
	ResponseTime   int

	dispatched bool
}

// Dispatch records the first time the process gets the cpu.
func (p *Process) Dispatch(clock int) {
	if p.dispatched {
		return
	}
	p.dispatched = true
	p.ResponseTime = clock - p.ArrivalTime
}

// Complete finalizes the derived times once the process has no work left.
func (p *Process) Complete(clock int) {
	p.RemainingTime = 0
	p.CompletionTime = clock
	p.TurnAroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.BurstTime
}

// Done reports whether the process has no work left.
func (p *Process) Done() bool {
	return p.RemainingTime == 0
}

// Slice is one contiguous run of a process on the cpu.
type Slice struct {
	Pid   int
	Start int
	End   int
}

// Schedule is the outcome of one simulation. Processes are in input order.
type Schedule struct {
	Algorithm string
	Processes []Process
	Gantt     []Slice
	Cpu       CpuMetric

	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnAroundTime float64
	CpuUtilization        float64
	CpuThroughput         float64
}
