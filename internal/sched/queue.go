// internal/sched/queue.go

package sched

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// ReadyQueue tracks processes that are registered but not yet arrived (pending)
// and processes that arrived and wait for the CPU (ready).
//
// The ready list keeps admission order. Policies that order by something else
// pass a comparator to Ordered; the underlying order is never rewritten, so a
// requeued process always lands behind everything already waiting.
type ReadyQueue struct {
	ready   *doublylinkedlist.List // ProcessID values in admission order
	pending *redblacktree.Tree     // arrivalKey -> ProcessID, ordered by arrival then id
}

// NewReadyQueue returns an empty queue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{
		ready:   doublylinkedlist.New(),
		pending: redblacktree.NewWith(arrivalCmp),
	}
}

// schedule parks p until its arrival tick.
func (q *ReadyQueue) schedule(p Process) {
	q.pending.Put(arrivalKey{arrival: p.ArrivalTime, id: p.ID}, p.ID)
}

// Admit moves every pending process with arrival <= clock to the tail of the
// ready list, earliest arrival first and lowest id first on ties.
// A process leaves the pending tree when admitted, so it is never admitted twice.
func (q *ReadyQueue) Admit(clock int64) []ProcessID {
	var admitted []ProcessID
	for {
		node := q.pending.Left()
		if node == nil {
			break
		}
		key := node.Key.(arrivalKey)
		if key.arrival > clock {
			break
		}
		q.pending.Remove(key)
		q.ready.Add(key.id)
		admitted = append(admitted, key.id)
	}
	return admitted
}

// Push appends id to the tail of the ready list.
func (q *ReadyQueue) Push(id ProcessID) {
	if q.ready.Contains(id) {
		return
	}
	q.ready.Add(id)
}

// Remove takes id out of the ready list and reports whether it was there.
func (q *ReadyQueue) Remove(id ProcessID) bool {
	idx := q.ready.IndexOf(id)
	if idx < 0 {
		return false
	}
	q.ready.Remove(idx)
	return true
}

// Contains reports whether id is waiting in the ready list.
func (q *ReadyQueue) Contains(id ProcessID) bool {
	return q.ready.Contains(id)
}

// Len is the number of ready processes.
func (q *ReadyQueue) Len() int { return q.ready.Size() }

// Pending is the number of registered processes that have not arrived yet.
func (q *ReadyQueue) Pending() int { return q.pending.Size() }

// IDs returns the ready list in admission order.
func (q *ReadyQueue) IDs() []ProcessID {
	return toIDs(q.ready.Values())
}

// Ordered returns the ready list sorted by cmp. A nil comparator keeps
// admission order.
func (q *ReadyQueue) Ordered(cmp utils.Comparator) []ProcessID {
	values := q.ready.Values()
	if cmp != nil {
		utils.Sort(values, cmp)
	}
	return toIDs(values)
}

func toIDs(values []interface{}) []ProcessID {
	ids := make([]ProcessID, len(values))
	for i, v := range values {
		ids[i] = v.(ProcessID)
	}
	return ids
}

// arrivalKey is used as a key in the pending red-black tree.
type arrivalKey struct {
	arrival int64
	id      ProcessID
}

// arrivalCmp orders pending processes by arrival time, then by id.
func arrivalCmp(a, b any) int {
	ka, kb := a.(arrivalKey), b.(arrivalKey)
	switch {
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}
