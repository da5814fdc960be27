// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/katalvlaran/matbench/multiply"
)

// Sample is one timing measurement: which algorithm ran, with how many
// workers, and for how long.
type Sample struct {
	Algorithm multiply.Strategy
	Workers   int
	TileSize  int // Tiled only
	Elapsed   time.Duration
}

// Seconds returns the elapsed time in seconds (finite, ≥ 0).
func (s Sample) Seconds() float64 {
	return max(0, s.Elapsed).Seconds()
}

// Label is the algorithm name used in reports.
func (s Sample) Label() string {
	switch s.Algorithm {
	case multiply.Sequential:
		return "Standard"
	case multiply.Tiled:
		return "Tiled"
	case multiply.Parallel:
		return "Parallel"
	}

	return s.Algorithm.String()
}

// Entry is the outcome of one sweep step.
type Entry struct {
	Threads      int     // requested budget
	Sequential   Sample  // baseline
	Parallel     Sample  // Workers holds the effective worker count
	Tiled        *Sample // nil unless Config.IncludeTiled
	Speedup      float64 // Sequential / Parallel
	TiledSpeedup float64 // Sequential / Tiled; 0 without Tiled
	Checksum     int64   // trace of the sequential product
	Verified     bool    // every product matched the reference
}

// Summary aggregates a finished sweep.
type Summary struct {
	Entries     int
	Best        Entry   // highest Speedup; zero value when Entries == 0
	MeanSpeedup float64 // arithmetic mean of Speedup
}
