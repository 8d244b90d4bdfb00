package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"cpu-scheduler/internal/core"
)

// Metrics are the prometheus collectors of the scheduling endpoints.
// A nil *Metrics records nothing.
type Metrics struct {
	requests  *prometheus.CounterVec
	makespan  *prometheus.HistogramVec
	processes *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cpu_scheduler_requests_total",
			Help: "Scheduling requests by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		makespan: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cpu_scheduler_simulated_total_time",
			Help:    "Simulated time units until the last process completed",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		processes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cpu_scheduler_request_processes",
			Help:    "Number of processes per scheduling request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"algorithm"}),
	}
	reg.MustRegister(m.requests, m.makespan, m.processes)
	return m
}

func (m *Metrics) observe(algorithm string, schedule *core.Schedule, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.requests.WithLabelValues(algorithm, core.Kind(err)).Inc()
		return
	}
	m.requests.WithLabelValues(algorithm, "ok").Inc()
	m.makespan.WithLabelValues(algorithm).Observe(float64(schedule.Cpu.TotalTime))
	m.processes.WithLabelValues(algorithm).Observe(float64(len(schedule.Processes)))
}
