// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/samber/lo"
)

// clockTick is the floor applied to a zero denominator.
const clockTick = time.Nanosecond

// Speedup returns seq/par as a ratio. A parallel time of zero (a run faster
// than the clock resolution) is floored to one tick so the result is always
// finite; a negative sequential time counts as zero.
func Speedup(seq, par time.Duration) float64 {
	return max(0, seq).Seconds() / max(clockTick, par).Seconds()
}

// Summarize picks the entry with the highest speedup and averages the rest.
// Ties keep the earliest entry.
func Summarize(entries []Entry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}
	best := lo.MaxBy(entries, func(a, b Entry) bool { return a.Speedup > b.Speedup })
	total := lo.SumBy(entries, func(e Entry) float64 { return e.Speedup })

	return Summary{
		Entries:     len(entries),
		Best:        best,
		MeanSpeedup: total / float64(len(entries)),
	}
}
