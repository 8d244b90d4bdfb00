package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type GanttEntry struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	GanttChart            []GanttEntry      `json:"gantt_chart"`

	// per-process columns in input order
	WaitingTime    []int `json:"waiting_time"`
	TurnAroundTime []int `json:"turn_around_time"`
	CompletionTime []int `json:"completion_time"`
	ResponseTime   []int `json:"response_time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func NewScheduleResponse(schedule core.Schedule) ScheduleResponse {
	n := len(schedule.Processes)
	response := ScheduleResponse{
		Algorithm:             schedule.Algorithm,
		TotalTime:             schedule.Cpu.TotalTime,
		IdleTime:              schedule.Cpu.IdleTime,
		AverageWaitingTime:    schedule.AverageWaitingTime,
		AverageResponseTime:   schedule.AverageResponseTime,
		AverageTurnAroundTime: schedule.AverageTurnAroundTime,
		CpuUtilization:        schedule.CpuUtilization,
		CpuThroughput:         schedule.CpuThroughput,
		Details:               make([]ProcessResponse, 0, n),
		GanttChart:            make([]GanttEntry, 0, len(schedule.Gantt)),
		WaitingTime:           make([]int, 0, n),
		TurnAroundTime:        make([]int, 0, n),
		CompletionTime:        make([]int, 0, n),
		ResponseTime:          make([]int, 0, n),
	}

	for _, p := range schedule.Processes {
		response.Details = append(response.Details, ProcessResponse{
			ProcessId:      p.Pid,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnAroundTime,
			WaitingTime:    p.WaitingTime,
		})
		response.WaitingTime = append(response.WaitingTime, p.WaitingTime)
		response.TurnAroundTime = append(response.TurnAroundTime, p.TurnAroundTime)
		response.CompletionTime = append(response.CompletionTime, p.CompletionTime)
		response.ResponseTime = append(response.ResponseTime, p.ResponseTime)
	}
	for _, s := range schedule.Gantt {
		response.GanttChart = append(response.GanttChart, GanttEntry{ProcessId: s.Pid, Start: s.Start, End: s.End})
	}
	return response
}
