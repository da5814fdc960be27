// SPDX-License-Identifier: MIT
// Package: matbench/multiply
//
// engine.go — the public facade: validation, allocation, strategy dispatch
// and timing around the kernels.

package multiply

import (
	"sync"
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// Multiply computes C = A × B with strategy s into a freshly allocated matrix.
//
// Implementation:
//   - Stage 1: reject unknown strategies and invalid operands.
//   - Stage 2: allocate C (n×n, zeroed).
//   - Stage 3: delegate to MultiplyInto.
//
// Errors (wrapped with the strategy name):
//   - ErrUnknownStrategy.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²) for C plus O(n) row views.
func Multiply(a, b *matrix.Dense, s Strategy, opts ...Option) (Result, error) {
	if !s.Valid() {
		return Result{}, multiplyErrorf(s.String(), ErrUnknownStrategy)
	}
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return Result{}, multiplyErrorf(s.String(), err)
	}
	c, err := matrix.NewDense(a.Dim())
	if err != nil {
		return Result{}, multiplyErrorf(s.String(), err)
	}

	return MultiplyInto(c, a, b, s, opts...)
}

// MultiplyInto computes dst = A × B with strategy s, overwriting every cell
// of dst. The caller keeps ownership of dst; it must not alias a or b.
//
// Errors (wrapped with the strategy name):
//   - ErrUnknownStrategy.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAliasedOutput.
func MultiplyInto(dst, a, b *matrix.Dense, s Strategy, opts ...Option) (Result, error) {
	if !s.Valid() {
		return Result{}, multiplyErrorf(s.String(), ErrUnknownStrategy)
	}
	if err := matrix.ValidateProduct(dst, a, b); err != nil {
		return Result{}, multiplyErrorf(s.String(), err)
	}
	o := gatherOptions(opts...)
	n := a.Dim()
	av, bv, cv := rowViews(a), rowViews(b), rowViews(dst)

	res := Result{C: dst, Strategy: s, Workers: 1}
	switch s {
	case Sequential:
		start := o.clock()
		mulRows(av, bv, cv, 0, n)
		res.Elapsed = elapsedSince(o.clock, start)
	case Tiled:
		res.TileSize = min(o.tileSize, n)
		start := o.clock()
		mulTiled(av, bv, cv, res.TileSize)
		res.Elapsed = elapsedSince(o.clock, start)
	case Parallel:
		ranges := Partition(n, ResolveWorkers(o.threads, n))
		res.Workers = len(ranges)
		res.Elapsed = runParallel(av, bv, cv, ranges, o.clock)
	}

	return res, nil
}

// runParallel spawns one goroutine per range, each running mulRows on its
// own rows, and joins them. The returned interval covers spawn through join.
func runParallel(a, b, c [][]int64, ranges []RowRange, clock func() time.Time) time.Duration {
	var wg sync.WaitGroup
	wg.Add(len(ranges))

	start := clock()
	for _, r := range ranges {
		r := r
		go func() {
			defer wg.Done()
			mulRows(a, b, c, r.Lo, r.Hi)
		}()
	}
	wg.Wait()

	return elapsedSince(clock, start)
}

// elapsedSince returns clock()-start, floored at zero so a misbehaving
// injected clock can never report negative time.
func elapsedSince(clock func() time.Time, start time.Time) time.Duration {
	return max(0, clock().Sub(start))
}

// SequentialProduct is shorthand for Multiply(a, b, Sequential).
func SequentialProduct(a, b *matrix.Dense) (Result, error) {
	return Multiply(a, b, Sequential)
}

// TiledProduct is shorthand for Multiply(a, b, Tiled, WithTileSize(tile)).
// Panics when tile ≤ 0, like WithTileSize.
func TiledProduct(a, b *matrix.Dense, tile int) (Result, error) {
	return Multiply(a, b, Tiled, WithTileSize(tile))
}

// ParallelProduct is shorthand for Multiply(a, b, Parallel, WithThreads(threads)).
func ParallelProduct(a, b *matrix.Dense, threads int) (Result, error) {
	return Multiply(a, b, Parallel, WithThreads(threads))
}
