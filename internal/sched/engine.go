// internal/sched/engine.go

package sched

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrSimulationComplete is returned by Register once the Complete event has fired.
var ErrSimulationComplete = errors.New("simulation already complete")

// Engine is a discrete, single-CPU scheduling simulator.
//
// Each call to Tick advances the simulation by exactly one time unit. The
// engine is not safe for concurrent use; a Driver serialises access when
// ticks are paced by a wall clock.
type Engine struct {
	selector Selector
	table    *StateTable
	ready    *ReadyQueue
	state    SimulationState

	running     ProcessID
	hasRunning  bool
	quantumUsed int // consecutive ticks given to running

	history   []ExecutionStep
	results   []ProcessResult
	listeners []Listener
	complete  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithStartTime sets the clock value of the first tick.
func WithStartTime(t int64) Option {
	return func(e *Engine) { e.state.Clock = t }
}

// WithListener subscribes l before any process is registered.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.Subscribe(l) }
}

// NewEngine creates an engine scheduling with sel.
func NewEngine(sel Selector, opts ...Option) *Engine {
	if sel == nil {
		panic("NewEngine: selector must not be nil")
	}
	e := &Engine{
		selector: sel,
		table:    NewStateTable(),
		ready:    NewReadyQueue(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe adds l to the listeners. Listeners are called in subscription order.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Register adds a process. Registering an id that is already known is a no-op.
// A process whose arrival time is already in the past is admitted on the next tick.
func (e *Engine) Register(p Process) error {
	if e.complete {
		return fmt.Errorf("register process %d: %w", p.ID, ErrSimulationComplete)
	}
	if !e.table.add(p) {
		logrus.Debugf("[tick %07d] ignoring duplicate registration of pid=%d", e.state.Clock, p.ID)
		return nil
	}
	e.state.TotalUnits += p.BurstTime
	e.ready.schedule(p)
	return nil
}

// Now returns the clock value of the next tick.
func (e *Engine) Now() int64 { return e.state.Clock }

// State returns a copy of the engine-wide counters.
func (e *Engine) State() SimulationState { return e.state }

// Selector returns the policy driving this engine.
func (e *Engine) Selector() Selector { return e.selector }

// Table exposes the registered processes and their runtime state, read-only by convention.
func (e *Engine) Table() *StateTable { return e.table }

// Running returns the process occupying the CPU, if any.
func (e *Engine) Running() (ProcessID, bool) { return e.running, e.hasRunning }

// ReadyIDs returns the ready queue in the policy's order.
func (e *Engine) ReadyIDs() []ProcessID {
	return e.ready.Ordered(e.selector.Order(e.table))
}

// Complete reports whether the Complete event has fired.
func (e *Engine) Complete() bool { return e.complete }

// History returns a copy of every step executed so far.
func (e *Engine) History() []ExecutionStep {
	out := make([]ExecutionStep, len(e.history))
	copy(out, e.history)
	return out
}

// Results returns a copy of the results so far: finish order while running,
// sorted by name once complete.
func (e *Engine) Results() []ProcessResult {
	out := make([]ProcessResult, len(e.results))
	copy(out, e.results)
	return out
}

// Tick advances the simulation by one time unit and reports whether every
// registered process has finished. Once complete, Tick does nothing.
func (e *Engine) Tick() bool {
	if e.complete {
		return true
	}
	now := e.state.Clock

	// 1) admit arrivals
	for _, id := range e.ready.Admit(now) {
		e.table.admit(id)
		e.emit(Event{Kind: EventAdmit, Time: now, ProcessID: id})
	}
	queueBefore := e.ReadyIDs()

	// 2) reconsider the incumbent when the policy asks for it: it goes back
	//    to the tail and competes with everyone else
	if e.hasRunning && e.selector.Reevaluate(e.quantumUsed) {
		incumbent := e.running
		e.ready.Push(incumbent)
		e.hasRunning = false
		e.quantumUsed = 0

		if winner, ok := e.pick(now); ok {
			if winner != incumbent {
				logrus.Debugf("[tick %07d] preempt pid=%d for pid=%d", now, incumbent, winner)
				e.emit(Event{Kind: EventPreempt, Time: now, ProcessID: incumbent})
				e.dispatch(now, winner)
			} else {
				e.running, e.hasRunning = winner, true
			}
		}
	}

	// 3) idle CPU picks the next process
	if !e.hasRunning {
		if id, ok := e.pick(now); ok {
			e.dispatch(now, id)
		}
	}

	// 4) execute one unit
	if !e.hasRunning {
		e.emit(Event{Kind: EventIdle, Time: now})
	} else {
		e.execute(now, queueBefore)
	}

	// 5) advance the clock
	e.state.Clock++

	// 6) all burst consumed?
	if e.state.TotalUnits > 0 && e.state.ExecutedUnits == e.state.TotalUnits && e.ready.Pending() == 0 {
		e.complete = true
		SortByName(e.results)
		logrus.Debugf("[tick %07d] simulation complete: %d processes, %d units", now, len(e.results), e.state.ExecutedUnits)
		e.emit(Event{Kind: EventComplete, Time: now, Results: e.Results()})
	}
	return e.complete
}

// pick asks the selector for the next process and takes it out of the ready queue.
func (e *Engine) pick(now int64) (ProcessID, bool) {
	id, ok := e.selector.SelectNext(e.ready, e.table, now)
	if !ok {
		return 0, false
	}
	if !e.ready.Remove(id) {
		panic(fmt.Sprintf("sched: %s selector chose pid=%d which is not ready", e.selector.Kind(), id))
	}
	return id, true
}

func (e *Engine) dispatch(now int64, id ProcessID) {
	e.running, e.hasRunning = id, true
	e.quantumUsed = 0
	logrus.Debugf("[tick %07d] dispatch pid=%d (remaining %d)", now, id, e.table.Remaining(id))
	e.emit(Event{Kind: EventDispatch, Time: now, ProcessID: id})
}

func (e *Engine) execute(now int64, queueBefore []ProcessID) {
	id := e.running
	p, _ := e.table.Process(id)

	remaining := e.table.run(id)
	e.state.ExecutedUnits++
	e.quantumUsed++

	step := ExecutionStep{
		Time:           now,
		ProcessID:      id,
		ProcessName:    p.Name,
		RemainingAfter: remaining,
		QueueBefore:    queueBefore,
	}
	e.history = append(e.history, step)
	e.emit(Event{Kind: EventStep, Time: now, ProcessID: id, Step: &step})

	if remaining > 0 {
		return
	}

	res := NewResult(p, now+1)
	e.table.finish(id)
	e.results = append(e.results, res)
	e.hasRunning = false
	e.quantumUsed = 0
	logrus.Debugf("[tick %07d] finish pid=%d turnaround=%d waiting=%d", now, id, res.TurnaroundTime, res.WaitingTime)
	e.emit(Event{Kind: EventFinish, Time: now, ProcessID: id, Result: &res})
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l.Handle(ev)
	}
}
