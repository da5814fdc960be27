// SPDX-License-Identifier: MIT
// Package: matbench/generator
//
// config.go — internal configuration and defaults.
//
// Design:
//   • genConfig is the single source of truth for generator knobs.
//   • newGenConfig applies options in-order (later overrides earlier).
//   • With no RNG option, a time-seeded source is created per call, so two
//     benchmark runs see different inputs.

package generator

import (
	"math/rand"
	"time"
)

// genConfig aggregates all knobs used by Fill/New.
// It is passed by VALUE (immutable to callers).
type genConfig struct {
	// RNG stream; nil means "seed a fresh source from the wall clock".
	rng *rand.Rand
}

// newGenConfig applies options in order and resolves the RNG.
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
