// internal/sched/csvlog.go

package sched

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var csvHeader = []string{"tick", "event", "pid", "name", "remaining", "queue", "finish", "turnaround", "waiting", "service_index"}

// CSVLogger is a Listener writing one CSV record per engine event.
type CSVLogger struct {
	table  *StateTable
	closer io.Closer
	w      *csv.Writer
	err    error
}

// NewCSVLogger creates path and writes the header. table is used to resolve
// process names for events that only carry an id.
func NewCSVLogger(path string, table *StateTable) (*CSVLogger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating csv log: %w", err)
	}
	l := NewCSVWriterLogger(f, table)
	l.closer = f
	if l.err != nil {
		f.Close()
		return nil, l.err
	}
	return l, nil
}

// NewCSVWriterLogger logs to w; Close flushes but does not close w.
func NewCSVWriterLogger(w io.Writer, table *StateTable) *CSVLogger {
	l := &CSVLogger{table: table, w: csv.NewWriter(w)}
	l.write(csvHeader)
	return l
}

func (l *CSVLogger) Handle(ev Event) {
	rec := make([]string, len(csvHeader))
	rec[0] = strconv.FormatInt(ev.Time, 10)
	rec[1] = ev.Kind.String()

	switch ev.Kind {
	case EventIdle:
	case EventComplete:
		rec[2] = strconv.Itoa(len(ev.Results))
	case EventStep:
		rec[2] = strconv.Itoa(int(ev.Step.ProcessID))
		rec[3] = ev.Step.ProcessName
		rec[4] = strconv.FormatInt(ev.Step.RemainingAfter, 10)
		rec[5] = joinIDs(ev.Step.QueueBefore)
	case EventFinish:
		r := ev.Result
		rec[2] = strconv.Itoa(int(r.ID))
		rec[3] = r.Name
		rec[4] = "0"
		rec[6] = strconv.FormatInt(r.FinishTime, 10)
		rec[7] = strconv.FormatInt(r.TurnaroundTime, 10)
		rec[8] = strconv.FormatInt(r.WaitingTime, 10)
		rec[9] = fmt.Sprintf("%.4f", r.ServiceIndex)
	default:
		rec[2] = strconv.Itoa(int(ev.ProcessID))
		if l.table != nil {
			if p, ok := l.table.Process(ev.ProcessID); ok {
				rec[3] = p.Name
			}
		}
	}
	l.write(rec)
}

// Close flushes pending records and closes the file, if any.
// It returns the first error seen while writing.
func (l *CSVLogger) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil && l.err == nil {
		l.err = err
	}
	if l.closer != nil {
		if err := l.closer.Close(); err != nil && l.err == nil {
			l.err = err
		}
	}
	return l.err
}

func (l *CSVLogger) write(rec []string) {
	if l.err != nil {
		return
	}
	if err := l.w.Write(rec); err != nil {
		l.err = fmt.Errorf("writing csv log: %w", err)
		return
	}
	l.w.Flush()
	l.err = l.w.Error()
}

func joinIDs(ids []ProcessID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, " ")
}
