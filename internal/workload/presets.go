package workload

import (
	"sort"

	"schedsim/internal/sched"
)

var presets = map[string][]sched.Process{
	// fifteen processes with staggered arrivals
	"default": {
		{ID: 1, Name: "A", ArrivalTime: 0, BurstTime: 2},
		{ID: 2, Name: "B", ArrivalTime: 1, BurstTime: 3},
		{ID: 3, Name: "C", ArrivalTime: 2, BurstTime: 4},
		{ID: 4, Name: "D", ArrivalTime: 3, BurstTime: 2},
		{ID: 5, Name: "E", ArrivalTime: 3, BurstTime: 6},
		{ID: 6, Name: "F", ArrivalTime: 4, BurstTime: 5},
		{ID: 7, Name: "G", ArrivalTime: 5, BurstTime: 2},
		{ID: 8, Name: "H", ArrivalTime: 6, BurstTime: 4},
		{ID: 9, Name: "I", ArrivalTime: 7, BurstTime: 3},
		{ID: 10, Name: "J", ArrivalTime: 8, BurstTime: 1},
		{ID: 11, Name: "K", ArrivalTime: 9, BurstTime: 2},
		{ID: 12, Name: "L", ArrivalTime: 10, BurstTime: 4},
		{ID: 13, Name: "M", ArrivalTime: 11, BurstTime: 2},
		{ID: 14, Name: "N", ArrivalTime: 12, BurstTime: 3},
		{ID: 15, Name: "O", ArrivalTime: 13, BurstTime: 5},
	},
	// same as default but C is a one-unit job arriving while A runs
	"preemption": {
		{ID: 1, Name: "A", ArrivalTime: 0, BurstTime: 4},
		{ID: 2, Name: "B", ArrivalTime: 1, BurstTime: 3},
		{ID: 3, Name: "C", ArrivalTime: 2, BurstTime: 1},
		{ID: 4, Name: "D", ArrivalTime: 3, BurstTime: 2},
		{ID: 5, Name: "E", ArrivalTime: 3, BurstTime: 6},
		{ID: 6, Name: "F", ArrivalTime: 4, BurstTime: 5},
		{ID: 7, Name: "G", ArrivalTime: 5, BurstTime: 2},
		{ID: 8, Name: "H", ArrivalTime: 6, BurstTime: 4},
		{ID: 9, Name: "I", ArrivalTime: 7, BurstTime: 3},
		{ID: 10, Name: "J", ArrivalTime: 8, BurstTime: 1},
		{ID: 11, Name: "K", ArrivalTime: 9, BurstTime: 2},
		{ID: 12, Name: "L", ArrivalTime: 10, BurstTime: 4},
		{ID: 13, Name: "M", ArrivalTime: 11, BurstTime: 2},
		{ID: 14, Name: "N", ArrivalTime: 12, BurstTime: 3},
		{ID: 15, Name: "O", ArrivalTime: 13, BurstTime: 5},
	},
	"srtf-demo": {
		{ID: 1, Name: "A", ArrivalTime: 0, BurstTime: 4},
		{ID: 2, Name: "B", ArrivalTime: 2, BurstTime: 2},
		{ID: 3, Name: "C", ArrivalTime: 3, BurstTime: 3},
	},
	"rr-demo": {
		{ID: 1, Name: "A", ArrivalTime: 0, BurstTime: 5},
		{ID: 2, Name: "B", ArrivalTime: 1, BurstTime: 2},
	},
}

// Preset returns a copy of the named built-in workload.
func Preset(name string) ([]sched.Process, bool) {
	procs, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make([]sched.Process, len(procs))
	copy(out, procs)
	return out, true
}

// PresetNames lists the built-in workloads alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
