// SPDX-License-Identifier: MIT
// Package: matbench/multiply
//
// options.go — functional options for the multiplication engine.
//
// Contract:
//   • Option constructors panic on nonsensical values (programmer error).
//   • WithThreads is the exception: any budget is legal, ≤0 means
//     "platform default" and never fails.
//   • Options irrelevant to the chosen strategy are ignored.

package multiply

import (
	"fmt"
	"time"
)

// DefaultTileSize is the tile edge used by Tiled when WithTileSize is absent.
// Three 32×32 int64 tiles (A, B, C) occupy 24 KiB, inside a typical 32 KiB L1d.
const DefaultTileSize = 32

// DefaultThreads requests the platform default worker count
// (runtime.GOMAXPROCS(0)).
const DefaultThreads = 0

// Option customizes one Multiply/MultiplyInto call.
type Option func(*options)

// options holds resolved per-call settings.
type options struct {
	threads  int              // Parallel budget; ≤0 → GOMAXPROCS
	tileSize int              // Tiled edge; >0
	clock    func() time.Time // monotonic time source
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		threads:  DefaultThreads,
		tileSize: DefaultTileSize,
		clock:    time.Now,
	}
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithThreads sets the worker budget for Parallel. Budgets above n are
// clamped to n; budgets ≤0 select runtime.GOMAXPROCS(0).
func WithThreads(threads int) Option {
	return func(o *options) {
		o.threads = threads
	}
}

// WithTileSize sets the tile edge for Tiled. Values above n behave as n.
// Panics when tile ≤ 0.
func WithTileSize(tile int) Option {
	if tile <= 0 {
		panic(fmt.Sprintf("multiply: WithTileSize(%d): tile must be > 0", tile))
	}
	return func(o *options) {
		o.tileSize = tile
	}
}

// WithClock replaces the time source used for Result.Elapsed.
// The default is time.Now, whose readings carry a monotonic component.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("multiply: WithClock(nil)")
	}
	return func(o *options) {
		o.clock = now
	}
}
