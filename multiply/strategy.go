// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"
	"strings"
)

// Strategy selects one member of the multiplication family.
type Strategy int

const (
	// Sequential is the single-goroutine i→j→k reference.
	Sequential Strategy = iota
	// Tiled is the cache-blocked variant.
	Tiled
	// Parallel is the row-partitioned multi-goroutine variant.
	Parallel
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{Sequential, Tiled, Parallel}

var strategyNames = [...]string{
	Sequential: "sequential",
	Tiled:      "tiled",
	Parallel:   "parallel",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s >= Sequential && s <= Parallel
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
// "standard" and "naive" are accepted as aliases of "sequential".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential", "standard", "naive":
		return Sequential, nil
	case "tiled", "blocked":
		return Tiled, nil
	case "parallel":
		return Parallel, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}
