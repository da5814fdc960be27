// SPDX-License-Identifier: MIT

package multiply

import (
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// Result is the outcome of one multiplication call.
type Result struct {
	C        *matrix.Dense // product; owned by the caller after return
	Strategy Strategy      // strategy that produced C
	Workers  int           // goroutines that computed C (1 for Sequential/Tiled)
	TileSize int           // effective tile edge for Tiled, 0 otherwise
	Elapsed  time.Duration // wall time of the kernel; never negative
}

// RowRange is the half-open row interval [Lo, Hi) owned by one worker.
type RowRange struct {
	Lo, Hi int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int { return r.Hi - r.Lo }
