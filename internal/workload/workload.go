// Package workload loads and validates the process sets fed to the scheduler.
//
// The engine trusts its input; every check on process descriptors happens here.
package workload

import (
	"errors"
	"fmt"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"schedsim/internal/sched"
)

// MaxBurst is the longest burst a process may request.
const MaxBurst = 60

// ErrInvalidProcess wraps every validation failure.
var ErrInvalidProcess = errors.New("invalid process")

// File is the on-disk workload format.
//
//	policy: rr
//	quantum: 2
//	processes:
//	  - {id: 1, name: A, arrival: 0, burst: 5}
type File struct {
	Policy    string          `yaml:"policy,omitempty"`
	Quantum   int             `yaml:"quantum,omitempty"`
	Processes []sched.Process `yaml:"processes"`
}

// Load reads a workload file. Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("workload %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a workload document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	return &f, nil
}

// Normalize fills in missing ids and names.
// Ids of zero get the next id above the largest one in use; empty names
// become Task0001, Task0002, ...
func Normalize(procs []sched.Process) []sched.Process {
	out := make([]sched.Process, len(procs))
	copy(out, procs)

	var maxID sched.ProcessID
	for _, p := range out {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	named := 0
	for i := range out {
		if out[i].ID == 0 {
			maxID++
			out[i].ID = maxID
		}
		out[i].Name = strings.TrimSpace(out[i].Name)
		if out[i].Name == "" {
			named++
			out[i].Name = AutoName(named)
		}
	}
	return out
}

// AutoName returns the generated name of the n-th unnamed process.
func AutoName(n int) string {
	return fmt.Sprintf("Task%04d", n)
}

// Validate checks every descriptor. quantum is only checked for round robin.
func Validate(procs []sched.Process, kind sched.Kind, quantum int) error {
	if len(procs) == 0 {
		return fmt.Errorf("%w: workload has no processes", ErrInvalidProcess)
	}
	if kind == sched.KindRR && quantum <= 0 {
		return fmt.Errorf("%w: round robin quantum must be positive, got %d", ErrInvalidProcess, quantum)
	}
	seen := make(map[sched.ProcessID]bool, len(procs))
	for i, p := range procs {
		if err := validateProcess(p); err != nil {
			return fmt.Errorf("process[%d]: %w", i, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("process[%d]: %w: duplicate id %d", i, ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

func validateProcess(p sched.Process) error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidProcess, p.ID)
	case p.Name == "":
		return fmt.Errorf("%w: pid %d has no name", ErrInvalidProcess, p.ID)
	case p.ArrivalTime < 0:
		return fmt.Errorf("%w: %s arrival must be >= 0, got %d", ErrInvalidProcess, p.Name, p.ArrivalTime)
	case p.BurstTime <= 0 || p.BurstTime > MaxBurst:
		return fmt.Errorf("%w: %s burst must be in (0,%d], got %d", ErrInvalidProcess, p.Name, MaxBurst, p.BurstTime)
	case p.Quantum < 0:
		return fmt.Errorf("%w: %s quantum must be positive, got %d", ErrInvalidProcess, p.Name, p.Quantum)
	}
	return nil
}
