// SPDX-License-Identifier: MIT
// Package: matbench/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (see generatorErrorf).
//   • Fill/New never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates lower > upper in a Fill/New call.
var ErrInvalidRange = errors.New("generator: lower bound exceeds upper bound")

// Method tags used in error wrapping.
const (
	methodFill = "Fill"
	methodNew  = "New"
)

// generatorErrorf wraps err with a method tag, preserving it for errors.Is.
func generatorErrorf(method string, err error) error {
	return fmt.Errorf("generator.%s: %w", method, err)
}
