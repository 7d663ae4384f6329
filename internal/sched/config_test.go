package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "fcfs", cfg.Policy)
	assert.Equal(t, DefaultQuantum, cfg.Quantum)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yml", `
policy: RR
quantum: 4
tick_ms: 100
realtime: true
log_level: debug
csv_path: events.csv
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Policy:   "rr",
		Quantum:  4,
		TickMS:   100,
		Realtime: true,
		LogLevel: "debug",
		CSVPath:  "events.csv",
	}, cfg)

	sel, err := cfg.Selector()
	require.NoError(t, err)
	assert.Equal(t, RoundRobin{Quantum: 4}, sel)
}

func TestLoad_ClampsNonsense(t *testing.T) {
	path := writeFile(t, "config.yml", "quantum: -3\ntick_ms: 0\npolicy: \"\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultQuantum, cfg.Quantum)
	assert.Equal(t, 500, cfg.TickMS)
	assert.Equal(t, "fcfs", cfg.Policy)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "config.yml", "slice_ticks: 5\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_UnknownPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = "lottery"
	_, err := cfg.Selector()
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
