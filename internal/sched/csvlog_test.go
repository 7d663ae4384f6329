package sched

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLogger_WritesOneRecordPerEvent(t *testing.T) {
	// GIVEN a logger on the SRTF example
	var buf bytes.Buffer
	e := NewEngine(SRTF{})
	logger := NewCSVWriterLogger(&buf, e.Table())
	e.Subscribe(logger)
	for _, p := range []Process{NewProcess(1, "A", 0, 4), NewProcess(2, "B", 2, 2), NewProcess(3, "C", 3, 3)} {
		require.NoError(t, e.Register(p))
	}

	// WHEN run to completion
	for !e.Tick() {
	}
	require.NoError(t, logger.Close())

	// THEN the header comes first and every step and finish is recorded
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, csvHeader, records[0])

	counts := map[string]int{}
	for _, rec := range records[1:] {
		counts[rec[1]]++
	}
	assert.Equal(t, 9, counts["Step"])
	assert.Equal(t, 3, counts["Finish"])
	assert.Equal(t, 1, counts["Complete"])
	assert.Equal(t, 1, counts["Preempt"])
	assert.Equal(t, 3, counts["Admit"])

	// the preemption at t=2 names A
	for _, rec := range records[1:] {
		if rec[1] == "Preempt" {
			assert.Equal(t, []string{"2", "Preempt", "1", "A"}, rec[:4])
		}
		if rec[1] == "Finish" && rec[3] == "B" {
			assert.Equal(t, []string{"3", "Finish", "2", "B", "0", "", "4", "2", "0", "1.0000"}, rec)
		}
	}
}

func TestNewCSVLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	logger, err := NewCSVLogger(path, nil)
	require.NoError(t, err)
	logger.Handle(Event{Kind: EventIdle, Time: 3})
	assert.NoError(t, logger.Close())
}

func TestNewCSVLogger_BadPath(t *testing.T) {
	_, err := NewCSVLogger(filepath.Join(t.TempDir(), "missing", "events.csv"), nil)
	assert.Error(t, err)
}
