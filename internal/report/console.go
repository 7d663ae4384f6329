package report

import (
	"fmt"
	"io"
	"strings"

	"schedsim/internal/sched"
)

// Console is a Listener printing one line per engine event, for realtime runs.
// Admit and Idle events are skipped unless Verbose is set.
type Console struct {
	W       io.Writer
	Table   *sched.StateTable
	Verbose bool
}

func (c *Console) Handle(ev sched.Event) {
	if !c.Verbose && (ev.Kind == sched.EventAdmit || ev.Kind == sched.EventIdle) {
		return
	}

	var detail string
	switch ev.Kind {
	case sched.EventStep:
		detail = fmt.Sprintf("Process: %-8s remaining=%03d queue=%v",
			ev.Step.ProcessName, ev.Step.RemainingAfter, ev.Step.QueueBefore)
	case sched.EventFinish:
		detail = fmt.Sprintf("Process: %-8s turnaround=%03d waiting=%03d index=%.3f",
			ev.Result.Name, ev.Result.TurnaroundTime, ev.Result.WaitingTime, ev.Result.ServiceIndex)
	case sched.EventComplete:
		detail = fmt.Sprintf("%d processes finished", len(ev.Results))
	case sched.EventIdle:
		detail = "CPU idle"
	default:
		detail = fmt.Sprintf("Process: %s", c.name(ev.ProcessID))
	}

	fmt.Fprintf(c.W, "Tick: %07d [%s] => %s\n", ev.Time, center(ev.Kind.String(), 10), detail)
}

func (c *Console) name(id sched.ProcessID) string {
	if c.Table != nil {
		if p, ok := c.Table.Process(id); ok {
			return p.Name
		}
	}
	return fmt.Sprintf("P%d", id)
}

// center pads str with spaces on both sides to width
func center(str string, width int) string {
	if len(str) >= width {
		return str
	}
	spaces := (width - len(str)) / 2
	return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
}
