// SPDX-License-Identifier: MIT
// Package: matbench/multiply
//
// kernels.go — the arithmetic. No validation here: callers (engine.go) have
// already checked shapes, so every index below is derived from n.

package multiply

import "github.com/katalvlaran/matbench/matrix"

// rowViews returns no-copy row slices of m, resolved once per call so the
// inner loops index plain slices.
func rowViews(m *matrix.Dense) [][]int64 {
	rows := make([][]int64, m.Dim())
	for i := range rows {
		rows[i] = m.Row(i)
	}

	return rows
}

// mulRows writes C[i][j] = Σ_k A[i][k]*B[k][j] for rows i in [lo, hi).
// Loop order is i → j → k with a register accumulator; each cell is
// written exactly once. Both Sequential (lo=0, hi=n) and every Parallel
// worker use this kernel, which is what keeps their results identical.
func mulRows(a, b, c [][]int64, lo, hi int) {
	n := len(b)
	for i := lo; i < hi; i++ {
		ai, ci := a[i], c[i]
		for j := 0; j < n; j++ {
			var sum int64
			for k := 0; k < n; k++ {
				sum += ai[k] * b[k][j]
			}
			ci[j] = sum
		}
	}
}

// mulTiled computes the same product over (i0, j0) output tiles of edge
// `tile`. For each tile it walks k in blocks of `tile`, adding the partial
// dot products into the tile's cells before moving on, so the tile of C,
// a tile-wide band of A and a tile-high band of B stay hot together.
// Every bound is clipped with min(x0+tile, n); nothing outside [0, n) is
// touched when n is not a multiple of tile.
//
// Per cell, k still ascends (blocks in order, k in order within a block).
func mulTiled(a, b, c [][]int64, tile int) {
	n := len(a)
	for _, row := range c {
		clear(row)
	}

	for i0 := 0; i0 < n; i0 += tile {
		iEnd := min(i0+tile, n)
		for j0 := 0; j0 < n; j0 += tile {
			jEnd := min(j0+tile, n)
			for k0 := 0; k0 < n; k0 += tile {
				kEnd := min(k0+tile, n)
				for i := i0; i < iEnd; i++ {
					ai, ci := a[i], c[i]
					for j := j0; j < jEnd; j++ {
						sum := ci[j]
						for k := k0; k < kEnd; k++ {
							sum += ai[k] * b[k][j]
						}
						ci[j] = sum
					}
				}
			}
		}
	}
}
