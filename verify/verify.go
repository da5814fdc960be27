// SPDX-License-Identifier: MIT

// Package verify cross-checks an integer product against an independent
// reference computed by gonum's float64 mat.Dense.Mul.
//
// The reference is exact only while every partial sum fits in the 53-bit
// float64 mantissa, so Product first bounds n·max|A|·max|B| and refuses
// (ErrUnverifiable) when that bound exceeds 2^53. The benchmark's default
// range [1, 100] keeps the bound far below the limit for any practical n.
package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matbench/matrix"
)

var (
	// ErrMismatch reports that C differs from the reference product.
	ErrMismatch = errors.New("verify: product mismatch")

	// ErrUnverifiable reports that the inputs are too large for an exact
	// float64 reference.
	ErrUnverifiable = errors.New("verify: values too large for exact float64 reference")
)

// exactLimit is 2^53, the largest magnitude below which every integer is
// representable in float64.
const exactLimit = 1 << 53

// Product checks that c == a × b cell by cell.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for bad operands.
//   - ErrUnverifiable when n·max|A|·max|B| > 2^53.
//   - ErrMismatch, wrapped with the first differing cell in row-major order.
//
// Complexity: O(n³) for the reference product, O(n²) extra memory.
func Product(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return fmt.Errorf("verify.Product: %w", err)
	}
	if err := matrix.ValidateSquarePair(a, c); err != nil {
		return fmt.Errorf("verify.Product: C: %w", err)
	}
	n := a.Dim()
	if !withinExactBound(n, maxAbs(a), maxAbs(b)) {
		return fmt.Errorf("verify.Product: n=%d: %w", n, ErrUnverifiable)
	}

	var ref mat.Dense
	ref.Mul(toFloat(a), toFloat(b))

	for i := 0; i < n; i++ {
		row := c.Row(i)
		for j, got := range row {
			if want := ref.At(i, j); float64(got) != want {
				return fmt.Errorf("verify.Product: C[%d][%d] = %d, want %.0f: %w", i, j, got, want, ErrMismatch)
			}
		}
	}

	return nil
}

// toFloat copies m into a gonum dense matrix.
func toFloat(m *matrix.Dense) *mat.Dense {
	n := m.Dim()
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for _, v := range m.Row(i) {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(n, n, data)
}

// maxAbs returns max |m[i][j]| as a float64 (MinInt64 maps to 2^63).
func maxAbs(m *matrix.Dense) float64 {
	var best float64
	for i := 0; i < m.Dim(); i++ {
		for _, v := range m.Row(i) {
			best = math.Max(best, math.Abs(float64(v)))
		}
	}

	return best
}

// withinExactBound reports whether n·ma·mb ≤ 2^53, i.e. every partial sum of
// the reference product is an exactly representable integer.
func withinExactBound(n int, ma, mb float64) bool {
	return float64(n)*ma*mb <= exactLimit
}
