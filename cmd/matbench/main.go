// SPDX-License-Identifier: MIT

// Command matbench times sequential, tiled and parallel multiplication of
// two random square matrices over a sweep of thread budgets and prints
// the speedup of each parallel run over the sequential baseline.
//
// No flags are parsed: edit the constants below and rebuild.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/multiply"
)

const (
	exponent = bench.DefaultExponent // n = 1 << exponent
	lower    = bench.DefaultLower
	upper    = bench.DefaultUpper
	tileSize = multiply.DefaultTileSize
)

// threadSweep is run in order; 0 means runtime.GOMAXPROCS(0).
var threadSweep = []int{1, 2, 4, 8, 0}

func main() {
	log.SetFlags(0)
	log.SetPrefix("matbench: ")

	cfg := bench.DefaultConfig()
	cfg.Exponent = exponent
	cfg.Threads = threadSweep
	cfg.Lower, cfg.Upper = lower, upper
	cfg.TileSize = tileSize

	rep := bench.NewTextReporter(os.Stdout)
	d, err := bench.NewDriver(cfg, rep)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if _, err = d.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
	if err = rep.Err(); err != nil {
		log.Fatalf("report: %v", err)
	}
}
