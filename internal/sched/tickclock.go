// internal/sched/tickclock.go

package sched

import (
	"sync/atomic"
	"time"
)

// TickClock emits wall-clock ticks and counts them atomically.
type TickClock struct {
	Ch    chan struct{}
	count atomic.Int64
	stop  chan struct{}
	once  atomic.Bool
}

// NewTickClock creates a clock but does not start it.
func NewTickClock(buffer int) *TickClock {
	return &TickClock{
		Ch:   make(chan struct{}, buffer),
		stop: make(chan struct{}),
	}
}

// Start begins emitting ticks at the given interval.
// A tick that finds the buffer full is dropped, so a slow consumer sees
// fewer ticks rather than a burst of stale ones.
func (c *TickClock) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case c.Ch <- struct{}{}:
					c.count.Add(1)
				default:
				}
			case <-c.stop:
				close(c.Ch)
				return
			}
		}
	}()
}

// Stop signals the clock to stop emitting ticks. Safe to call more than once.
func (c *TickClock) Stop() {
	if c.once.CompareAndSwap(false, true) {
		close(c.stop)
	}
}

// Count returns the number of ticks delivered so far.
func (c *TickClock) Count() int64 {
	return c.count.Load()
}
