package bench_test

import (
	"os"
	"time"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/multiply"
)

// ExampleTextReporter renders one sweep entry by hand.
func ExampleTextReporter() {
	r := bench.NewTextReporter(os.Stdout)

	seq := bench.Sample{Algorithm: multiply.Sequential, Workers: 1, Elapsed: 1500 * time.Millisecond}
	par := bench.Sample{Algorithm: multiply.Parallel, Workers: 4, Elapsed: 500 * time.Millisecond}
	r.Sample(seq)
	r.Sample(par)

	e := bench.Entry{Threads: 4, Sequential: seq, Parallel: par, Speedup: bench.Speedup(seq.Elapsed, par.Elapsed)}
	r.Entry(e)
	r.End(bench.Summarize([]bench.Entry{e}))

	// Output:
	// Standard Matrix Multiplication took 1.5000000000 Seconds
	// Parallel Matrix Multiplication (4 threads) took 0.5000000000 Seconds
	// Parallel (4 threads) was 3.00 times faster than Standard
	//
	// Best speedup: 3.00x with 4 threads; mean 3.00x over 1 entries
}
