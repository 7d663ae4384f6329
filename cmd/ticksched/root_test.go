package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the CLI with fresh flag values and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range []*cobra.Command{rootCmd, runCmd, compareCmd} {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	quiet := true
	for _, a := range args {
		if a == "--log" {
			quiet = false
		}
	}
	if quiet {
		args = append(args, "--log", "warn")
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRun_PresetWithGantt(t *testing.T) {
	out, err := executeCommand(t, "run", "--preset", "srtf-demo", "--policy", "srtf", "--gantt")
	require.NoError(t, err)

	assert.Contains(t, out, "SRTF results")
	assert.Contains(t, out, "A       |##..##   |")
	assert.Contains(t, out, "B       |  ##     |")
	assert.Contains(t, out, "C       |   ...###|")
}

func TestRun_WorkloadFileAndCSV(t *testing.T) {
	dir := t.TempDir()
	wl := filepath.Join(dir, "rr.yml")
	require.NoError(t, os.WriteFile(wl, []byte(`
policy: rr
quantum: 2
processes:
  - {id: 1, name: A, arrival: 0, burst: 5}
  - {id: 2, name: B, arrival: 1, burst: 2}
`), 0o644))
	csvPath := filepath.Join(dir, "events.csv")

	out, err := executeCommand(t, "run", "--workload", wl, "--csv", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "RR results")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick,event,pid,name")
	assert.Contains(t, string(data), "6,Finish,1,A,0,,7,7,2,")
}

func TestRun_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("policy: sjf\n"), 0o644))

	out, err := executeCommand(t, "run", "--config", cfg, "--preset", "rr-demo")
	require.NoError(t, err)
	assert.Contains(t, out, "SJF results")
}

func TestRun_Realtime(t *testing.T) {
	out, err := executeCommand(t, "run", "--preset", "rr-demo", "--policy", "rr", "--realtime", "--tick-ms", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Tick: 0000000 [ Dispatch ] => Process: A")
	assert.Contains(t, out, "[ Preempt  ]")
	assert.Contains(t, out, "RR results")
}

func TestRun_Errors(t *testing.T) {
	_, err := executeCommand(t, "run", "--policy", "lottery")
	assert.Error(t, err)

	_, err = executeCommand(t, "run", "--preset", "nope")
	assert.Error(t, err)

	_, err = executeCommand(t, "run", "--policy", "rr", "--quantum", "0")
	assert.Error(t, err)

	_, err = executeCommand(t, "run", "--log", "loud")
	assert.Error(t, err)
}

func TestCompare_AllPolicies(t *testing.T) {
	out, err := executeCommand(t, "compare", "--preset", "default", "--details")
	require.NoError(t, err)
	for _, name := range []string{"FCFS", "SJF", "SRTF", "RR"} {
		assert.Contains(t, out, name+" results")
	}
	assert.Contains(t, out, "AVG TURNAROUND")
}

func TestPresets_Lists(t *testing.T) {
	out, err := executeCommand(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "srtf-demo")
	assert.Contains(t, out, "15 processes")
}
