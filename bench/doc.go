// SPDX-License-Identifier: MIT

// Package bench drives the thread-count sweep and turns multiplication
// timings into speedup reports.
//
// For every thread budget in Config.Threads the Driver runs Sequential once
// and Parallel once on the same inputs (plus Tiled when enabled), optionally
// cross-checks each product with package verify, and computes
//
//	speedup = sequential elapsed / parallel elapsed
//
// Inputs are generated once per run, or once per sweep entry when
// Config.Regenerate is set. Nothing else is carried between entries.
//
// Results flow to a Reporter as they are produced; NewTextReporter renders
// the human-readable report ("... took 0.0123456789 Seconds",
// "... was 3.42 times faster than Standard"). Speedup is not expected to be
// monotonic in the thread count and nothing here assumes it is.
package bench
