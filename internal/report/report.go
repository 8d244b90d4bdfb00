package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
)

// OutputSchedule writes title, Gantt chart and the per-process table.
func OutputSchedule(w io.Writer, title string, schedule core.Schedule) {
	outputTitle(w, title)
	outputGantt(w, schedule.Gantt)
	outputTable(w, schedule)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []core.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range gantt {
		pid := fmt.Sprint(s.Pid)
		padding := strings.Repeat(" ", max(0, 8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range gantt {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputTable(w io.Writer, schedule core.Schedule) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Response", "Turnaround", "Exit"})
	for _, p := range schedule.Processes {
		table.Append([]string{
			fmt.Sprint(p.Pid),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", schedule.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", schedule.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", schedule.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", schedule.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, idle %d of %d\n\n",
		schedule.CpuUtilization*100, schedule.Cpu.IdleTime, schedule.Cpu.TotalTime)
}
