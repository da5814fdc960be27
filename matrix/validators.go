// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep the multiplication kernels minimal by delegating nil/shape/aliasing checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Aliasing),
//    so the error reported for a doubly-bad call is stable.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquarePair ensures a and b are non-nil and share one dimension.
//
// Errors:
//   - ErrNilMatrix when either operand is nil (a is checked first).
//   - ErrDimensionMismatch when a.Dim() != b.Dim().
//
// Complexity: O(1).
func ValidateSquarePair(a, b *Dense) error {
	if a == nil {
		return validatorErrorf("ValidateSquarePair: A", ErrNilMatrix)
	}
	if b == nil {
		return validatorErrorf("ValidateSquarePair: B", ErrNilMatrix)
	}
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSquarePair: %d vs %d", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateProduct checks the full contract of dst = a × b:
// both inputs pass ValidateSquarePair, dst is non-nil with the same
// dimension, and dst shares storage with neither input.
// Complexity: O(1).
func ValidateProduct(dst, a, b *Dense) error {
	if err := ValidateSquarePair(a, b); err != nil {
		return err
	}
	if dst == nil {
		return validatorErrorf("ValidateProduct: C", ErrNilMatrix)
	}
	if dst.n != a.n {
		return validatorErrorf(fmt.Sprintf("ValidateProduct: C is %d, want %d", dst.n, a.n), ErrDimensionMismatch)
	}
	if dst.sameStorage(a) || dst.sameStorage(b) {
		return validatorErrorf("ValidateProduct", ErrAliasedOutput)
	}

	return nil
}
