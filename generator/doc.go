// SPDX-License-Identifier: MIT

// Package generator populates matrix.Dense values with uniformly distributed
// integers drawn from a closed range [lower, upper].
//
// The generator is the benchmark's input source and nothing more: it makes no
// determinism promise by default (every process draws from a freshly
// time-seeded stream), and callers must treat generated values as opaque.
// Tests and examples that need repeatable data pass WithSeed or WithRand.
//
//	a, err := generator.New(512, 1, 100)                        // unseeded
//	b, err := generator.New(512, 1, 100, generator.WithSeed(7)) // reproducible
//	err = generator.Fill(c, -10, 10)                            // refill in place
//
// Every cell is an independent draw. The full int64 range is supported; spans
// wider than 2^63 fall back to rejection sampling on Uint64.
package generator
