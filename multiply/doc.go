// SPDX-License-Identifier: MIT

// Package multiply is the multiplication engine of the benchmark: one
// operation family, C = A × B over square int64 matrices, selected by a
// Strategy.
//
// Strategies:
//
//	Sequential  naive i→j→k triple loop on the calling goroutine.
//	Tiled       the same arithmetic iterated over square (i,j) tiles and k
//	            blocks of edge TileSize, to keep recently touched rows of A
//	            and columns of B in cache. Edge tiles are clipped to n.
//	Parallel    the Sequential kernel run over a static, contiguous, even
//	            split of the row range across freshly spawned goroutines,
//	            joined before the call returns.
//
// All three produce bit-identical results for every input, TileSize and
// thread budget: every output cell is summed by exactly one goroutine in
// ascending k order, and integer addition wraps identically in any order.
//
// Timing:
//
//	Each call returns Result.Elapsed, measured with a monotonic clock
//	(time.Now by default; see WithClock). For Parallel the interval opens
//	immediately before the first worker is spawned and closes right after
//	the join, so goroutine startup and teardown are part of the measurement.
//	Partitioning happens before the clock starts.
//
// Concurrency:
//
//	Inputs are read concurrently and never written. Each worker owns a
//	disjoint block of output rows, so the hot path takes no locks.
//	There is no cancellation; a dispatched call runs to completion.
//
// Example:
//
//	res, err := multiply.Multiply(a, b, multiply.Parallel, multiply.WithThreads(8))
//	fmt.Printf("%d workers, %.6fs\n", res.Workers, res.Elapsed.Seconds())
package multiply
