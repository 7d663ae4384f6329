// internal/sched/policy.go

package sched

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Kind names a scheduling policy.
type Kind string

const (
	KindFCFS Kind = "fcfs"
	KindSJF  Kind = "sjf"
	KindSRTF Kind = "srtf"
	KindRR   Kind = "rr"
)

// DefaultQuantum is the round robin time slice used when none is configured.
const DefaultQuantum = 2

// ErrUnknownPolicy is returned by NewSelector for names it does not recognize.
var ErrUnknownPolicy = errors.New("unknown scheduling policy")

var policyAliases = map[string]Kind{
	"fcfs":        KindFCFS,
	"fifo":        KindFCFS,
	"sjf":         KindSJF,
	"srtf":        KindSRTF,
	"rr":          KindRR,
	"round-robin": KindRR,
}

// Selector decides which ready process gets the CPU.
//
// Selectors are stateless: all mutable state lives in the Engine, so one
// selector value can drive any number of simulations.
type Selector interface {
	Kind() Kind

	// Order returns the comparator the ready queue is presented in, or nil
	// for admission (FIFO) order.
	Order(table *StateTable) utils.Comparator

	// SelectNext returns the process that should run next, or false if the
	// ready queue is empty. The returned id must be in ready.
	SelectNext(ready *ReadyQueue, table *StateTable, clock int64) (ProcessID, bool)

	// Reevaluate reports whether the running process, having used
	// quantumUsed consecutive ticks, must go back through selection.
	Reevaluate(quantumUsed int) bool
}

// IsValidPolicy returns true if name is a recognized policy name or alias.
func IsValidPolicy(name string) bool {
	_, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// PolicyNames returns the canonical policy names in a stable order.
func PolicyNames() []string {
	return []string{string(KindFCFS), string(KindSJF), string(KindSRTF), string(KindRR)}
}

// ParseKind maps a policy name or alias to its Kind.
func ParseKind(name string) (Kind, error) {
	k, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		valid := make([]string, 0, len(policyAliases))
		for alias := range policyAliases {
			valid = append(valid, alias)
		}
		sort.Strings(valid)
		return "", fmt.Errorf("%w %q; valid: %s", ErrUnknownPolicy, name, strings.Join(valid, ", "))
	}
	return k, nil
}

// NewSelector creates a Selector by name. quantum is only used by round robin
// and must be positive there.
func NewSelector(name string, quantum int) (Selector, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindFCFS:
		return FCFS{}, nil
	case KindSJF:
		return SJF{}, nil
	case KindSRTF:
		return SRTF{}, nil
	case KindRR:
		if quantum <= 0 {
			return nil, fmt.Errorf("round robin quantum must be positive, got %d", quantum)
		}
		return RoundRobin{Quantum: quantum}, nil
	default:
		panic(fmt.Sprintf("unhandled policy %q", kind))
	}
}

// MustSelector is NewSelector for callers holding known-good names.
// Panics on error.
func MustSelector(name string, quantum int) Selector {
	s, err := NewSelector(name, quantum)
	if err != nil {
		panic(err)
	}
	return s
}

// headOf returns the first process of the ready queue under cmp.
func headOf(ready *ReadyQueue, cmp utils.Comparator) (ProcessID, bool) {
	ids := ready.Ordered(cmp)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FCFS runs processes in arrival order, each to completion.
type FCFS struct{}

func (FCFS) Kind() Kind { return KindFCFS }

// Order sorts by arrival time, then by id.
func (FCFS) Order(table *StateTable) utils.Comparator {
	return func(a, b interface{}) int {
		pa, _ := table.Process(a.(ProcessID))
		pb, _ := table.Process(b.(ProcessID))
		if c := compareInt64(pa.ArrivalTime, pb.ArrivalTime); c != 0 {
			return c
		}
		return compareInt64(int64(pa.ID), int64(pb.ID))
	}
}

func (f FCFS) SelectNext(ready *ReadyQueue, table *StateTable, _ int64) (ProcessID, bool) {
	return headOf(ready, f.Order(table))
}

func (FCFS) Reevaluate(int) bool { return false }

// SJF picks the shortest burst among ready processes and never preempts.
// Warning: long jobs can starve under a steady stream of short ones.
type SJF struct{}

func (SJF) Kind() Kind { return KindSJF }

// Order sorts by burst time, then earliest arrival, then lowest id.
func (SJF) Order(table *StateTable) utils.Comparator {
	return func(a, b interface{}) int {
		pa, _ := table.Process(a.(ProcessID))
		pb, _ := table.Process(b.(ProcessID))
		if c := compareInt64(pa.BurstTime, pb.BurstTime); c != 0 {
			return c
		}
		if c := compareInt64(pa.ArrivalTime, pb.ArrivalTime); c != 0 {
			return c
		}
		return compareInt64(int64(pa.ID), int64(pb.ID))
	}
}

func (s SJF) SelectNext(ready *ReadyQueue, table *StateTable, _ int64) (ProcessID, bool) {
	return headOf(ready, s.Order(table))
}

func (SJF) Reevaluate(int) bool { return false }

// SRTF picks the least remaining time and reconsiders the running process on
// every tick.
//
// Ties go to the latest arrival, then the highest id, so a newcomer with the
// same remaining time as the incumbent takes the CPU.
type SRTF struct{}

func (SRTF) Kind() Kind { return KindSRTF }

// Order sorts by remaining time ascending, then arrival and id descending.
func (SRTF) Order(table *StateTable) utils.Comparator {
	return func(a, b interface{}) int {
		ia, ib := a.(ProcessID), b.(ProcessID)
		if c := compareInt64(table.Remaining(ia), table.Remaining(ib)); c != 0 {
			return c
		}
		pa, _ := table.Process(ia)
		pb, _ := table.Process(ib)
		if c := compareInt64(pb.ArrivalTime, pa.ArrivalTime); c != 0 {
			return c
		}
		return compareInt64(int64(pb.ID), int64(pa.ID))
	}
}

func (s SRTF) SelectNext(ready *ReadyQueue, table *StateTable, _ int64) (ProcessID, bool) {
	return headOf(ready, s.Order(table))
}

func (SRTF) Reevaluate(int) bool { return true }

// RoundRobin serves the ready queue in FIFO order, Quantum ticks at a time.
type RoundRobin struct {
	Quantum int
}

func (RoundRobin) Kind() Kind { return KindRR }

// Order is nil: the queue is served in admission order.
func (RoundRobin) Order(*StateTable) utils.Comparator { return nil }

func (RoundRobin) SelectNext(ready *ReadyQueue, _ *StateTable, _ int64) (ProcessID, bool) {
	return headOf(ready, nil)
}

func (r RoundRobin) Reevaluate(quantumUsed int) bool {
	q := r.Quantum
	if q <= 0 {
		q = DefaultQuantum
	}
	return quantumUsed >= q
}
