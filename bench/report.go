// SPDX-License-Identifier: MIT
// Package: matbench/bench
//
// report.go — the Reporter contract and the plain-text renderer.

package bench

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
)

// Reporter receives results as the Driver produces them, in this order:
// Begin once; per entry: Sample for each run, Matrices (when enabled),
// Entry; End once.
type Reporter interface {
	Begin(host HostInfo, cfg Config)
	Sample(s Sample)
	Matrices(a, b, c *matrix.Dense)
	Entry(e Entry)
	End(s Summary)
}

// Discard is a Reporter that drops everything.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Begin(HostInfo, Config) {}
func (discard) Sample(Sample) {}
func (discard) Matrices(_, _, _ *matrix.Dense) {}
func (discard) Entry(Entry) {}
func (discard) End(Summary) {}

// TextReporter renders the human-readable report. Write errors are
// latched: after the first failure nothing more is written and Err
// returns that failure.
type TextReporter struct {
	w   io.Writer
	p   *message.Printer // groups large counts: 134,217,728
	err error
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w, p: message.NewPrinter(language.English)}
}

// Err returns the first write error, if any.
func (r *TextReporter) Err() error { return r.err }

func (r *TextReporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = r.p.Fprintf(r.w, format, args...)
}

// Begin prints the host line and the problem size.
func (r *TextReporter) Begin(host HostInfo, cfg Config) {
	features := "none"
	if len(host.Features) > 0 {
		features = strings.Join(host.Features, " ")
	}
	n := cfg.Dimension()
	r.printf("Host: %s/%s, %d CPUs, GOMAXPROCS=%d, features: %s\n",
		host.GOOS, host.GOARCH, host.NumCPU, host.GOMAXPROCS, features)
	r.printf("Matrix dimension: %d x %d (%d multiply-adds per product)\n", n, n, int64(n)*int64(n)*int64(n))
	r.printf("Value range: [%d, %d]\n", cfg.Lower, cfg.Upper)
}

// Sample prints one "<Algorithm> Matrix Multiplication took X Seconds" line.
func (r *TextReporter) Sample(s Sample) {
	switch s.Algorithm {
	case multiply.Tiled:
		r.printf("%s Matrix Multiplication (tile %d) took %.10f Seconds\n", s.Label(), s.TileSize, s.Seconds())
	case multiply.Parallel:
		r.printf("%s Matrix Multiplication (%d threads) took %.10f Seconds\n", s.Label(), s.Workers, s.Seconds())
	default:
		r.printf("%s Matrix Multiplication took %.10f Seconds\n", s.Label(), s.Seconds())
	}
}

// Matrices dumps the operands and the product, one "Matrix:" block each.
func (r *TextReporter) Matrices(a, b, c *matrix.Dense) {
	for _, m := range []*matrix.Dense{a, b, c} {
		r.printf("Matrix:\n")
		for i := 0; i < m.Dim(); i++ {
			var sb strings.Builder
			for _, v := range m.Row(i) {
				sb.WriteString(strconv.FormatInt(v, 10))
				sb.WriteByte(' ')
			}
			r.printf("%s\n", sb.String())
		}
	}
}

// Entry prints the speedup statement(s) closing a sweep step.
func (r *TextReporter) Entry(e Entry) {
	r.printf("Parallel (%d threads) was %.2f times faster than Standard\n", e.Parallel.Workers, e.Speedup)
	if e.Tiled != nil {
		r.printf("Tiled was %.2f times faster than Standard\n", e.TiledSpeedup)
	}
	if e.Verified {
		r.printf("Verified (trace %d)\n", e.Checksum)
	}
	r.printf("\n")
}

// End prints the sweep summary.
func (r *TextReporter) End(s Summary) {
	if s.Entries == 0 {
		return
	}
	r.printf("Best speedup: %.2fx with %d threads; mean %.2fx over %d entries\n",
		s.Best.Speedup, s.Best.Parallel.Workers, s.MeanSpeedup, s.Entries)
}
