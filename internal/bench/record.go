package bench

import "time"

// Record holds the outcome of one benchmark run.
type Record struct {
	// Name identifies the benchmarked workload, usually "<domain>/<strategy>".
	Name string

	// Iterations is the number of times the workload function was invoked.
	Iterations int

	// Total is the wall-clock duration of the whole run.
	Total time.Duration

	// PerIteration is Total divided by Iterations.
	PerIteration time.Duration

	// The hardware counter fields are placeholders. They stay zero until a
	// perf event source is wired in; consumers must treat zero as "not
	// measured".
	Instructions uint64
	Cycles       uint64
	CacheMisses  uint64
	BranchMisses uint64
}

// InstructionsPerCycle returns the IPC ratio, or 0 when the hardware
// counters were not collected.
func (r Record) InstructionsPerCycle() float64 {
	if r.Cycles == 0 {
		return 0
	}
	return float64(r.Instructions) / float64(r.Cycles)
}
