// Package report renders simulation outcomes as text tables and timelines.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
)

// Results writes one row per process plus a footer with the averages.
func Results(w io.Writer, title string, results []sched.ProcessResult) {
	sum := sched.Summarize(results)

	if title != "" {
		fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			fmt.Sprint(r.ID),
			r.Name,
			fmt.Sprint(r.ArrivalTime),
			fmt.Sprint(r.BurstTime),
			fmt.Sprint(r.FinishTime),
			fmt.Sprint(r.TurnaroundTime),
			fmt.Sprint(r.WaitingTime),
			fmt.Sprintf("%.3f", r.ServiceIndex),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Name", "Arrival", "Burst", "Finish", "Turnaround", "Waiting", "Service Index"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", sum.AvgTurnaround),
		fmt.Sprintf("%.2f", sum.AvgWaiting),
		fmt.Sprintf("%.3f", sum.AvgServiceIndex),
	})
	table.Render()

	fmt.Fprintf(w, "Makespan: %d ticks, utilization: %.1f%%, throughput: %.3f processes/tick\n\n",
		sum.Makespan, sum.Utilization*100, sum.Throughput)
}

// Comparison writes one row per policy outcome.
func Comparison(w io.Writer, outcomes []sched.Outcome) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Turnaround", "Avg Waiting", "Avg Service Index", "Makespan", "Utilization"})
	for _, o := range outcomes {
		sum := o.Summary()
		table.Append([]string{
			strings.ToUpper(string(o.Policy)),
			fmt.Sprintf("%.2f", sum.AvgTurnaround),
			fmt.Sprintf("%.2f", sum.AvgWaiting),
			fmt.Sprintf("%.3f", sum.AvgServiceIndex),
			fmt.Sprint(sum.Makespan),
			fmt.Sprintf("%.1f%%", sum.Utilization*100),
		})
	}
	table.Render()
}

// Gantt writes one row per finished process, in results order: '#' for a
// tick on the CPU, '.' for a tick between arrival and finish spent waiting.
func Gantt(w io.Writer, history []sched.ExecutionStep, results []sched.ProcessResult) {
	if len(history) == 0 {
		return
	}
	start := history[0].Time
	end := history[len(history)-1].Time
	for _, r := range results {
		if r.ArrivalTime < start {
			start = r.ArrivalTime
		}
	}
	width := int(end-start) + 1

	running := make(map[int64]sched.ProcessID, len(history))
	for _, s := range history {
		running[s.Time] = s.ProcessID
	}

	fmt.Fprintf(w, "%-8s|%s| t=%d..%d\n", "", ruler(start, width), start, end)
	for _, r := range results {
		row := make([]byte, width)
		for i := range row {
			t := start + int64(i)
			id, busy := running[t]
			switch {
			case busy && id == r.ID:
				row[i] = '#'
			case t >= r.ArrivalTime && t < r.FinishTime:
				row[i] = '.'
			default:
				row[i] = ' '
			}
		}
		fmt.Fprintf(w, "%-8s|%s|\n", r.Name, row)
	}
	fmt.Fprintln(w)
}

// ruler marks every fifth tick with its last digit.
func ruler(start int64, width int) string {
	b := []byte(strings.Repeat(" ", width))
	for i := 0; i < width; i++ {
		if t := start + int64(i); t%5 == 0 {
			b[i] = byte('0' + t%10)
		}
	}
	return string(b)
}
