package core

// CpuMetric is measured in abstract time units from clock zero.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core. Its clock only moves forward.
type Cpu struct {
	clock  int
	gantt  []Slice
	metric CpuMetric
}

// NewCpu returns an idle cpu at clock zero.
func NewCpu() *Cpu {
	return &Cpu{gantt: make([]Slice, 0)}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil moves the clock to t, counting the gap as idle time.
// A t in the past is a no-op.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs pid for units and returns the interval it occupied.
// Back-to-back runs of the same pid are merged into one Gantt slice.
func (c *Cpu) Execute(pid, units int) (start, end int) {
	start = c.clock
	end = start + units
	c.clock = end
	c.metric.UtilizationTime += units

	if n := len(c.gantt); n > 0 && c.gantt[n-1].Pid == pid && c.gantt[n-1].End == start {
		c.gantt[n-1].End = end
	} else {
		c.gantt = append(c.gantt, Slice{Pid: pid, Start: start, End: end})
	}
	return start, end
}

func (c *Cpu) Gantt() []Slice {
	out := make([]Slice, len(c.gantt))
	copy(out, c.gantt)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
