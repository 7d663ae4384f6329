// internal/sched/process.go

package sched

import "fmt"

// ProcessID uniquely identifies a process in the simulation.
type ProcessID int

// Process is the immutable descriptor of one schedulable process.
type Process struct {
	ID          ProcessID `yaml:"id"`
	Name        string    `yaml:"name"`
	ArrivalTime int64     `yaml:"arrival"`           // tick at which the process becomes ready
	BurstTime   int64     `yaml:"burst"`             // CPU units required to finish
	Quantum     int       `yaml:"quantum,omitempty"` // round robin hint; the policy-wide quantum wins
}

// NewProcess creates a process descriptor.
// NOTE: no validation happens here, that is the job of whoever authors the workload.
func NewProcess(id ProcessID, name string, arrival, burst int64) Process {
	return Process{
		ID:          id,
		Name:        name,
		ArrivalTime: arrival,
		BurstTime:   burst,
	}
}

func (p Process) String() string {
	return fmt.Sprintf("%s(pid=%d, arrival=%d, burst=%d)", p.Name, p.ID, p.ArrivalTime, p.BurstTime)
}

// RuntimeState is the mutable per-process part of the simulation.
type RuntimeState struct {
	Remaining int64
	Admitted  bool
	Started   bool
	Finished  bool
}

// SimulationState is the engine-wide bookkeeping.
type SimulationState struct {
	Clock         int64 // next tick to execute
	ExecutedUnits int64 // CPU units consumed so far
	TotalUnits    int64 // sum of bursts of every registered process
}

type entry struct {
	proc  Process
	state RuntimeState
}

// StateTable holds every registered process together with its runtime state.
// Only the engine mutates it; everything else reads.
type StateTable struct {
	entries map[ProcessID]*entry
}

// NewStateTable returns an empty table.
func NewStateTable() *StateTable {
	return &StateTable{entries: make(map[ProcessID]*entry)}
}

// add registers p and reports false when the id is already known.
func (t *StateTable) add(p Process) bool {
	if _, dup := t.entries[p.ID]; dup {
		return false
	}
	t.entries[p.ID] = &entry{proc: p}
	return true
}

// Process returns the descriptor registered under id.
func (t *StateTable) Process(id ProcessID) (Process, bool) {
	e, ok := t.entries[id]
	if !ok {
		return Process{}, false
	}
	return e.proc, true
}

// State returns a copy of the runtime state of id.
func (t *StateTable) State(id ProcessID) (RuntimeState, bool) {
	e, ok := t.entries[id]
	if !ok {
		return RuntimeState{}, false
	}
	return e.state, true
}

// Remaining is a shorthand used by the selectors' comparators.
func (t *StateTable) Remaining(id ProcessID) int64 {
	return t.mustGet(id).state.Remaining
}

// Len returns the number of registered processes.
func (t *StateTable) Len() int { return len(t.entries) }

func (t *StateTable) admit(id ProcessID) {
	e := t.mustGet(id)
	e.state.Admitted = true
	e.state.Remaining = e.proc.BurstTime
}

// run consumes one unit of CPU for id and returns what is left.
func (t *StateTable) run(id ProcessID) int64 {
	e := t.mustGet(id)
	if e.state.Finished || e.state.Remaining <= 0 {
		panic(fmt.Sprintf("sched: process %d executed after it finished", id))
	}
	e.state.Started = true
	e.state.Remaining--
	return e.state.Remaining
}

func (t *StateTable) finish(id ProcessID) {
	t.mustGet(id).state.Finished = true
}

func (t *StateTable) mustGet(id ProcessID) *entry {
	e, ok := t.entries[id]
	if !ok {
		panic(fmt.Sprintf("sched: unknown process %d", id))
	}
	return e
}
