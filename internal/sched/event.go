// internal/sched/event.go

package sched

// EventKind represents the type of engine event
type EventKind int

const (
	EventAdmit EventKind = iota
	EventDispatch
	EventPreempt
	EventIdle
	EventStep
	EventFinish
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventAdmit:
		return "Admit"
	case EventDispatch:
		return "Dispatch"
	case EventPreempt:
		return "Preempt"
	case EventIdle:
		return "Idle"
	case EventStep:
		return "Step"
	case EventFinish:
		return "Finish"
	case EventComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// ExecutionStep records one tick of CPU time given to one process.
type ExecutionStep struct {
	Time           int64
	ProcessID      ProcessID
	ProcessName    string
	RemainingAfter int64
	QueueBefore    []ProcessID // ready queue after admission, before selection
}

// Event is emitted by the engine, in tick order.
//
// Within one tick the order is: Admit*, Preempt, Dispatch, Idle or Step,
// Finish, Complete. Fields not relevant to Kind are zero.
type Event struct {
	Kind      EventKind
	Time      int64
	ProcessID ProcessID
	Step      *ExecutionStep  // EventStep
	Result    *ProcessResult  // EventFinish
	Results   []ProcessResult // EventComplete, sorted by name
}

// Listener consumes engine events. Handle is called synchronously from Tick.
type Listener interface {
	Handle(ev Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) Handle(ev Event) { f(ev) }

// Observer is a Listener for the three timeline events only. Nil callbacks
// are skipped.
type Observer struct {
	OnStep     func(step ExecutionStep)
	OnFinish   func(result ProcessResult)
	OnComplete func(results []ProcessResult)
}

func (o Observer) Handle(ev Event) {
	switch ev.Kind {
	case EventStep:
		if o.OnStep != nil {
			o.OnStep(*ev.Step)
		}
	case EventFinish:
		if o.OnFinish != nil {
			o.OnFinish(*ev.Result)
		}
	case EventComplete:
		if o.OnComplete != nil {
			o.OnComplete(ev.Results)
		}
	}
}

// ChannelListener forwards events into a buffered channel so another
// goroutine can consume them. Handle blocks when the buffer is full.
type ChannelListener struct {
	ch chan Event
}

// NewChannelListener creates a listener with the given buffer size.
func NewChannelListener(buffer int) *ChannelListener {
	return &ChannelListener{ch: make(chan Event, buffer)}
}

// C exposes the read-only event stream.
func (c *ChannelListener) C() <-chan Event { return c.ch }

func (c *ChannelListener) Handle(ev Event) { c.ch <- ev }

// Close closes the stream. The engine must not emit afterwards.
func (c *ChannelListener) Close() { close(c.ch) }
