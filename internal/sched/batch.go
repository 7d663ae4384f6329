// internal/sched/batch.go

package sched

// Outcome is the full record of a simulation run.
type Outcome struct {
	Policy  Kind
	History []ExecutionStep
	Results []ProcessResult // sorted by name
	State   SimulationState
}

// Summary aggregates the outcome's results.
func (o Outcome) Summary() Summary { return Summarize(o.Results) }

// RunToCompletion registers every process on a fresh engine and ticks it until
// all of them finish. Duplicate ids keep the first descriptor.
func RunToCompletion(sel Selector, processes []Process, opts ...Option) Outcome {
	e := NewEngine(sel, opts...)
	for _, p := range processes {
		// a fresh engine cannot be complete yet
		_ = e.Register(p)
	}
	if e.State().TotalUnits > 0 {
		for !e.Tick() {
		}
	}
	return Outcome{
		Policy:  sel.Kind(),
		History: e.History(),
		Results: e.Results(),
		State:   e.State(),
	}
}

// Compare runs the same processes under every selector, in order.
func Compare(selectors []Selector, processes []Process) []Outcome {
	out := make([]Outcome, 0, len(selectors))
	for _, sel := range selectors {
		out = append(out, RunToCompletion(sel, processes))
	}
	return out
}
