package clement

import (
	"fmt"
	"io"
)

// ReduceFunc combines per-process diagnostic values across cooperating
// processes. The serial deployment uses SerialReduce; a distributed caller
// injects its allreduce.
type ReduceFunc func(vals []float64) []float64

// SerialReduce is the identity reduction for single-process runs.
func SerialReduce(vals []float64) []float64 { return vals }

// Timings reports the local construction time and mean time per Invoke
// call, in seconds. Mean call time is zero before the first call.
func (ci *Interpolant) Timings() (construction, meanCall float64) {
	construction = ci.initTime.Seconds()
	if ci.ncalls > 0 {
		meanCall = ci.totalCallTime.Seconds() / float64(ci.ncalls)
	}
	return
}

// NumCalls is the number of completed or in-flight Invoke calls.
func (ci *Interpolant) NumCalls() int { return ci.ncalls }

// Report reduces the timing statistics across size cooperating processes
// with the injected reduction and writes the human-readable block on rank
// 0 only. Diagnostics never affect interpolation state.
func (ci *Interpolant) Report(w io.Writer, reduce ReduceFunc, rank, size int) {
	construction, meanCall := ci.Timings()
	data := reduce([]float64{construction, meanCall})
	if rank != 0 {
		return
	}
	fmt.Fprintf(w, "---- Clement Interpolant (stats for %d procs) ----\n", size)
	fmt.Fprintf(w, "Construction time [s]               %g\n", data[0])
	fmt.Fprintf(w, "Average time per call [s] (%d calls) %g\n", ci.ncalls, data[1])
}
