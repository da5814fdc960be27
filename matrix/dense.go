// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose Row as the one no-copy window hot kernels use.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set/Row: O(1); Clone/Equal/Reset: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "NewFromRows"
	ctxIdentity = "Identity"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w so callers can use errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of int64 values.
//   - n is the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int     // dimension (>0)
	data []int64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer of n*n cells.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// NewFromRows builds a Dense from a square literal, copying every value.
// Returns ErrInvalidDimensions for empty input and ErrNonSquare when any row
// length differs from the number of rows.
// Complexity: O(n²).
func NewFromRows(rows [][]int64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxFromRows, i, len(row), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) for allocation, O(n) for the diagonal.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Dim returns the dimension n.
func (m *Dense) Dim() int { return m.n }

// indexOf computes the flat index for (row, col) or returns a wrapped ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped) when either index falls outside [0, n).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange (wrapped) when either index falls outside [0, n).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice sharing the backing buffer (no copy).
// Writes through the slice mutate the matrix. The slice capacity is clipped
// to the row so an append can never spill into row i+1.
//
// Row panics when i is outside [0, n): it serves kernels that derive i from
// their own validated loop bounds, where a bad index is a programmer error.
func (m *Dense) Row(i int) []int64 {
	if i < 0 || i >= m.n {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}
	lo := i * m.n

	return m.data[lo : lo+m.n : lo+m.n]
}

// Rows copies the matrix out into a fresh [][]int64.
func (m *Dense) Rows() [][]int64 {
	out := make([][]int64, m.n)
	for i := range out {
		out[i] = append([]int64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// Clone returns a deep copy with independent storage.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Reset zeroes every cell in place.
func (m *Dense) Reset() {
	clear(m.data)
}

// Equal reports exact cell-by-cell equality. Two nil matrices are equal;
// a nil and a non-nil matrix are not.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Trace returns the sum of the main diagonal (wrapping on overflow).
// Used as a cheap checksum in reports.
func (m *Dense) Trace() int64 {
	var acc int64
	for i := 0; i < m.n; i++ {
		acc += m.data[i*m.n+i]
	}

	return acc
}

// sameStorage reports whether m and other share a backing buffer.
func (m *Dense) sameStorage(other *Dense) bool {
	return m == other || (len(m.data) > 0 && len(other.data) > 0 && &m.data[0] == &other.data[0])
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			sb.WriteString(strconv.FormatInt(m.data[i*m.n+j], 10))
			if j < m.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
