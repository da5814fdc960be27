// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its callers. Callers MUST match them via errors.Is. Public
// methods never panic on user-triggered conditions; Row is the single
// documented exception, reserved for kernels that own their index math.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels are
// returned wrapped with call-site context (fmt.Errorf("ctx: %w", ErrX)); the
// errors.Is contract still holds.

var (
	// ErrInvalidDimensions indicates that a requested dimension is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals ragged or non-square input rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates operands of different dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAliasedOutput indicates that an output matrix shares storage with an input.
	ErrAliasedOutput = errors.New("matrix: output aliases an input")
)
