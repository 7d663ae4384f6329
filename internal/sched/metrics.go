// internal/sched/metrics.go

package sched

import "sort"

// ProcessResult holds the per-process metrics computed when a process finishes.
type ProcessResult struct {
	ID             ProcessID
	Name           string
	ArrivalTime    int64
	BurstTime      int64
	FinishTime     int64
	TurnaroundTime int64   // finish - arrival
	WaitingTime    int64   // turnaround - burst
	ServiceIndex   float64 // burst / turnaround, 0 when turnaround is 0
}

// NewResult derives the metrics of p finishing at tick finish.
func NewResult(p Process, finish int64) ProcessResult {
	turnaround := finish - p.ArrivalTime
	var index float64
	if turnaround > 0 {
		index = float64(p.BurstTime) / float64(turnaround)
	}
	return ProcessResult{
		ID:             p.ID,
		Name:           p.Name,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		FinishTime:     finish,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ServiceIndex:   index,
	}
}

// SortByName orders results by process name, falling back to id for equal names.
func SortByName(results []ProcessResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].ID < results[j].ID
	})
}

// Summary aggregates a finished run.
type Summary struct {
	Processes       int
	AvgTurnaround   float64
	AvgWaiting      float64
	AvgServiceIndex float64
	Makespan        int64   // last finish - first arrival
	BusyUnits       int64   // sum of bursts
	Utilization     float64 // BusyUnits / Makespan
	Throughput      float64 // processes per tick over the makespan
}

// Summarize computes averages over results. An empty slice yields a zero Summary.
func Summarize(results []ProcessResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	var (
		sum          Summary
		totalTurn    int64
		totalWait    int64
		totalIndex   float64
		firstArrival = results[0].ArrivalTime
		lastFinish   = results[0].FinishTime
	)
	for _, r := range results {
		totalTurn += r.TurnaroundTime
		totalWait += r.WaitingTime
		totalIndex += r.ServiceIndex
		sum.BusyUnits += r.BurstTime
		if r.ArrivalTime < firstArrival {
			firstArrival = r.ArrivalTime
		}
		if r.FinishTime > lastFinish {
			lastFinish = r.FinishTime
		}
	}

	n := float64(len(results))
	sum.Processes = len(results)
	sum.AvgTurnaround = float64(totalTurn) / n
	sum.AvgWaiting = float64(totalWait) / n
	sum.AvgServiceIndex = totalIndex / n
	sum.Makespan = lastFinish - firstArrival
	if sum.Makespan > 0 {
		sum.Utilization = float64(sum.BusyUnits) / float64(sum.Makespan)
		sum.Throughput = n / float64(sum.Makespan)
	}
	return sum
}
