// SPDX-License-Identifier: MIT
// Package: matbench/bench
//
// config.go — the explicit run configuration handed to NewDriver.
// There is no package-level mutable state: every knob lives in Config.

package bench

import "github.com/katalvlaran/matbench/multiply"

// Defaults (single source of truth for DefaultConfig).
const (
	// DefaultExponent gives a 512×512 problem.
	DefaultExponent = 9
	// MaxExponent caps n at 16384 (2 GiB per int64 matrix).
	MaxExponent = 14
	// DefaultLower and DefaultUpper bound the generated values.
	DefaultLower = 1
	DefaultUpper = 100
)

// Config describes one benchmark run.
type Config struct {
	// Exponent sets the dimension n = 1 << Exponent, in [0, MaxExponent].
	Exponent int
	// Threads is the sweep of thread budgets, run in order. A budget ≤ 0
	// selects the platform default; repeats are run again, not merged.
	Threads []int
	// Lower and Upper bound the generated values (closed range).
	Lower, Upper int64
	// TileSize is the tile edge for the Tiled variant (> 0).
	TileSize int
	// IncludeTiled adds a Tiled run to every sweep entry.
	IncludeTiled bool
	// Regenerate draws fresh inputs for every sweep entry.
	Regenerate bool
	// Verify cross-checks every product against a float64 reference.
	Verify bool
	// PrintMatrices dumps A, B and the sequential product per entry.
	PrintMatrices bool
	// Seed makes the inputs reproducible; 0 means time-seeded.
	Seed int64
}

// DefaultConfig returns the standard sweep: n=512, budgets 1/2/4/8,
// values in [1, 100], tiled and verified.
func DefaultConfig() Config {
	return Config{
		Exponent:     DefaultExponent,
		Threads:      []int{1, 2, 4, 8},
		Lower:        DefaultLower,
		Upper:        DefaultUpper,
		TileSize:     multiply.DefaultTileSize,
		IncludeTiled: true,
		Verify:       true,
	}
}

// Dimension returns n = 1 << Exponent.
func (c Config) Dimension() int {
	return 1 << c.Exponent
}

// Validate checks every field; the first violation is returned, wrapped
// around ErrInvalidConfig with the field name.
func (c Config) Validate() error {
	if c.Exponent < 0 || c.Exponent > MaxExponent {
		return configErrorf("Exponent", "%d not in [0, %d]", c.Exponent, MaxExponent)
	}
	if len(c.Threads) == 0 {
		return configErrorf("Threads", "empty sweep")
	}
	if c.Lower > c.Upper {
		return configErrorf("Lower", "%d > Upper %d", c.Lower, c.Upper)
	}
	if c.TileSize <= 0 {
		return configErrorf("TileSize", "%d must be > 0", c.TileSize)
	}

	return nil
}
