package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyQueue_AdmitsByArrivalThenID(t *testing.T) {
	// GIVEN processes scheduled out of order
	q := NewReadyQueue()
	q.schedule(NewProcess(5, "E", 1, 1))
	q.schedule(NewProcess(3, "C", 0, 1))
	q.schedule(NewProcess(4, "D", 1, 1))
	q.schedule(NewProcess(1, "A", 7, 1))

	// WHEN the clock reaches 1
	admitted := q.Admit(1)

	// THEN arrivals up to 1 are admitted in (arrival, id) order
	assert.Equal(t, []ProcessID{3, 4, 5}, admitted)
	assert.Equal(t, []ProcessID{3, 4, 5}, q.IDs())
	assert.Equal(t, 1, q.Pending())
	assert.Equal(t, 3, q.Len())
}

func TestReadyQueue_AdmitIsIdempotent(t *testing.T) {
	q := NewReadyQueue()
	q.schedule(NewProcess(1, "A", 0, 1))

	assert.Len(t, q.Admit(0), 1)
	assert.Empty(t, q.Admit(0))
	assert.Empty(t, q.Admit(10))
	assert.Equal(t, 1, q.Len())
}

func TestReadyQueue_PushRemove(t *testing.T) {
	q := NewReadyQueue()
	q.Push(1)
	q.Push(2)
	q.Push(1) // already waiting
	q.Push(3)
	assert.Equal(t, []ProcessID{1, 2, 3}, q.IDs())

	assert.True(t, q.Remove(2))
	assert.False(t, q.Remove(2))
	assert.False(t, q.Contains(2))
	assert.True(t, q.Contains(3))

	// requeue goes to the tail
	q.Remove(1)
	q.Push(1)
	assert.Equal(t, []ProcessID{3, 1}, q.IDs())
}

func TestReadyQueue_OrderedDoesNotReorderStorage(t *testing.T) {
	q := NewReadyQueue()
	q.Push(3)
	q.Push(1)
	q.Push(2)

	desc := func(a, b interface{}) int { return int(b.(ProcessID)) - int(a.(ProcessID)) }
	assert.Equal(t, []ProcessID{3, 2, 1}, q.Ordered(desc))
	assert.Equal(t, []ProcessID{3, 1, 2}, q.Ordered(nil))
	assert.Equal(t, []ProcessID{3, 1, 2}, q.IDs())
}

func TestArrivalCmp(t *testing.T) {
	assert.Equal(t, -1, arrivalCmp(arrivalKey{0, 9}, arrivalKey{1, 1}))
	assert.Equal(t, 1, arrivalCmp(arrivalKey{1, 2}, arrivalKey{1, 1}))
	assert.Equal(t, 0, arrivalCmp(arrivalKey{1, 1}, arrivalKey{1, 1}))
}
