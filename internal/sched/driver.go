// internal/sched/driver.go

package sched

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type injection struct {
	proc      Process
	arriveNow bool
}

// Driver paces an Engine with a TickClock: one engine tick per clock tick.
//
// The driver goroutine is the only one touching the engine while Run is
// active. Processes injected from other goroutines are registered between
// ticks.
type Driver struct {
	engine   *Engine
	interval time.Duration
	inject   chan injection
}

// NewDriver creates a driver ticking e every interval.
func NewDriver(e *Engine, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Driver{
		engine:   e,
		interval: interval,
		inject:   make(chan injection, 64),
	}
}

// Inject queues p for registration with its own arrival time.
func (d *Driver) Inject(p Process) {
	d.inject <- injection{proc: p}
}

// InjectNow queues p for registration arriving at the tick the driver
// processes it on, like a process created while the simulation is on screen.
func (d *Driver) InjectNow(p Process) {
	d.inject <- injection{proc: p, arriveNow: true}
}

// Run ticks the engine until it completes or ctx is cancelled.
// It returns ctx.Err() on cancellation and nil on completion.
func (d *Driver) Run(ctx context.Context) error {
	clock := NewTickClock(1)
	clock.Start(d.interval)
	// stop the underlying clock to release its goroutine
	defer clock.Stop()

	if d.engine.Complete() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("simulation stopped at tick %d: %v", d.engine.Now(), ctx.Err())
			return ctx.Err()

		case in := <-d.inject:
			p := in.proc
			if in.arriveNow {
				p.ArrivalTime = d.engine.Now()
			}
			if err := d.engine.Register(p); err != nil {
				logrus.Warnf("dropping injected process %s: %v", p, err)
			}

		case <-clock.Ch:
			if d.engine.Tick() {
				return nil
			}
		}
	}
}
