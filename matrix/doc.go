// SPDX-License-Identifier: MIT

// Package matrix provides the square integer storage used by the benchmark.
//
// What & Why:
//
//	Dense is an n×n grid of int64 values held in one flat row-major buffer
//	(offset = i*n + j). A single contiguous allocation keeps rows adjacent in
//	memory, which is exactly what the multiplication kernels in package
//	multiply rely on for predictable cache behavior.
//
// Surface:
//   - NewDense, NewFromRows, Identity: constructors with strict shape validation.
//   - At/Set: safe indexers that return ErrOutOfRange instead of panicking.
//   - Row: a no-copy view of one row for hot loops (panics on a bad index).
//   - Clone, Reset, Equal, Trace, Rows, String: helpers for tests and reports.
//   - ValidateSquarePair, ValidateProduct: the canonical operand checks.
//
// Ownership:
//
//	A multiplication borrows its two inputs read-only and exclusively owns its
//	output for the duration of the call. ValidateProduct rejects an output that
//	aliases an input.
//
// Complexity:
//
//	NewDense O(n²) zero-init; At/Set/Row O(1); Clone/Equal/Reset O(n²); Trace O(n).
package matrix
