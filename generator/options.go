// SPDX-License-Identifier: MIT
// Package: matbench/generator
//
// options.go — functional options for the generator package.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is opt-in: WithSeed or WithRand.

package generator

import "math/rand"

// Option customizes a Fill/New call by mutating a genConfig before drawing.
type Option func(*genConfig)

// WithRand provides an explicit RNG stream. Successive calls sharing one
// *rand.Rand continue the same stream. Panics on nil.
//
// A *rand.Rand is not safe for concurrent use; do not share one across
// goroutines calling Fill at the same time.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed, making the fill
// reproducible.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
