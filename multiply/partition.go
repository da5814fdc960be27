// SPDX-License-Identifier: MIT

package multiply

import "runtime"

// ResolveWorkers turns a thread budget into the effective worker count for
// an n-row problem.
//   - threads ≤ 0 selects runtime.GOMAXPROCS(0).
//   - the result is clamped to [1, n]; excess budget is ignored, never an error.
func ResolveWorkers(threads, n int) int {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	return max(1, min(threads, n))
}

// Partition splits rows [0, n) into `workers` contiguous chunks decided up
// front (no work stealing). Chunk sizes differ by at most one: the first
// n%workers chunks carry the extra row. The workers argument is clamped to
// [1, n] first, so no chunk is ever empty. Returns nil for n ≤ 0.
//
// Complexity: O(workers).
func Partition(n, workers int) []RowRange {
	if n <= 0 {
		return nil
	}
	workers = max(1, min(workers, n))

	base, extra := n/workers, n%workers
	out := make([]RowRange, workers)
	lo := 0
	for w := range out {
		size := base
		if w < extra {
			size++
		}
		out[w] = RowRange{Lo: lo, Hi: lo + size}
		lo += size
	}

	return out
}
