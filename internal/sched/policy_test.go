package sched

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readyWith admits every process immediately.
func readyWith(procs ...Process) (*ReadyQueue, *StateTable) {
	q := NewReadyQueue()
	tbl := NewStateTable()
	for _, p := range procs {
		tbl.add(p)
		q.schedule(p)
	}
	for _, id := range q.Admit(math.MaxInt64) {
		tbl.admit(id)
	}
	return q, tbl
}

func TestNewSelector_NamesAndAliases(t *testing.T) {
	cases := map[string]Kind{
		"fcfs":        KindFCFS,
		"FIFO":        KindFCFS,
		" sjf ":       KindSJF,
		"SRTF":        KindSRTF,
		"rr":          KindRR,
		"round-robin": KindRR,
	}
	for name, want := range cases {
		sel, err := NewSelector(name, 3)
		require.NoError(t, err, name)
		assert.Equal(t, want, sel.Kind(), name)
		assert.True(t, IsValidPolicy(name))
	}

	rr, err := NewSelector("rr", 3)
	require.NoError(t, err)
	assert.Equal(t, RoundRobin{Quantum: 3}, rr)
}

func TestNewSelector_Errors(t *testing.T) {
	_, err := NewSelector("lottery", 2)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.False(t, IsValidPolicy("lottery"))

	_, err = NewSelector("rr", 0)
	assert.Error(t, err)

	// quantum is irrelevant for the other policies
	_, err = NewSelector("srtf", 0)
	assert.NoError(t, err)
}

func TestMustSelector_PanicsOnUnknownName(t *testing.T) {
	assert.Panics(t, func() { MustSelector("priority", 2) })
	assert.NotPanics(t, func() { MustSelector("sjf", 0) })
}

func TestPolicyNames_Stable(t *testing.T) {
	assert.Equal(t, []string{"fcfs", "sjf", "srtf", "rr"}, PolicyNames())
	for _, name := range PolicyNames() {
		assert.True(t, IsValidPolicy(name))
	}
}

func TestFCFS_OrdersByArrivalThenID(t *testing.T) {
	q, tbl := readyWith(
		NewProcess(3, "late", 4, 1),
		NewProcess(2, "tieHigh", 1, 9),
		NewProcess(1, "tieLow", 1, 9),
	)
	assert.Equal(t, []ProcessID{1, 2, 3}, q.Ordered(FCFS{}.Order(tbl)))

	id, ok := FCFS{}.SelectNext(q, tbl, 0)
	assert.True(t, ok)
	assert.Equal(t, ProcessID(1), id)
}

func TestSJF_OrdersByBurstArrivalID(t *testing.T) {
	q, tbl := readyWith(
		NewProcess(1, "long", 0, 8),
		NewProcess(2, "shortLate", 3, 2),
		NewProcess(4, "shortEarlyHighID", 1, 2),
		NewProcess(3, "shortEarlyLowID", 1, 2),
	)
	assert.Equal(t, []ProcessID{3, 4, 2, 1}, q.Ordered(SJF{}.Order(tbl)))
}

func TestSRTF_TieGoesToLatestArrivalThenHighestID(t *testing.T) {
	q, tbl := readyWith(
		NewProcess(1, "old", 0, 3),
		NewProcess(2, "newLowID", 2, 3),
		NewProcess(3, "newHighID", 2, 3),
		NewProcess(4, "shortest", 0, 1),
	)
	assert.Equal(t, []ProcessID{4, 3, 2, 1}, q.Ordered(SRTF{}.Order(tbl)))
}

func TestSRTF_UsesRemainingNotBurst(t *testing.T) {
	q, tbl := readyWith(NewProcess(1, "A", 0, 5), NewProcess(2, "B", 0, 3))
	// A has run four units
	for i := 0; i < 4; i++ {
		tbl.run(1)
	}
	id, ok := SRTF{}.SelectNext(q, tbl, 4)
	assert.True(t, ok)
	assert.Equal(t, ProcessID(1), id)

	id, _ = SJF{}.SelectNext(q, tbl, 4)
	assert.Equal(t, ProcessID(2), id, "SJF looks at the original burst")
}

func TestRoundRobin_FIFOAndQuantum(t *testing.T) {
	q, tbl := readyWith(NewProcess(2, "B", 0, 1), NewProcess(1, "A", 0, 9))
	q.Remove(1)
	q.Push(1)

	rr := RoundRobin{Quantum: 3}
	assert.Nil(t, rr.Order(tbl))
	id, ok := rr.SelectNext(q, tbl, 0)
	assert.True(t, ok)
	assert.Equal(t, ProcessID(2), id)

	assert.False(t, rr.Reevaluate(2))
	assert.True(t, rr.Reevaluate(3))
	assert.True(t, RoundRobin{}.Reevaluate(DefaultQuantum), "zero quantum falls back to the default")
}

func TestSelectors_EmptyQueue(t *testing.T) {
	q, tbl := readyWith()
	for _, sel := range []Selector{FCFS{}, SJF{}, SRTF{}, RoundRobin{Quantum: 1}} {
		_, ok := sel.SelectNext(q, tbl, 0)
		assert.False(t, ok, string(sel.Kind()))
	}
}

func TestSelectors_Reevaluate(t *testing.T) {
	assert.False(t, FCFS{}.Reevaluate(100))
	assert.False(t, SJF{}.Reevaluate(100))
	assert.True(t, SRTF{}.Reevaluate(0))
}
