// SPDX-License-Identifier: MIT
// Package: matbench/bench
//
// driver.go — the sweep loop.

package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/matbench/generator"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
	"github.com/katalvlaran/matbench/verify"
)

// Driver runs a validated Config against a Reporter.
type Driver struct {
	cfg    Config
	rep    Reporter
	engine []multiply.Option // forwarded to every multiplication
	rng    *rand.Rand        // input stream shared across entries
}

// NewDriver validates cfg and binds it to rep (nil means Discard).
// Extra engine options (e.g. multiply.WithClock) are forwarded to every
// multiplication; the driver appends its own WithThreads/WithTileSize last.
func NewDriver(cfg Config, rep Reporter, engine ...multiply.Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rep == nil {
		rep = Discard
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Threads = append([]int(nil), cfg.Threads...)

	return &Driver{
		cfg:    cfg,
		rep:    rep,
		engine: engine,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Run executes the sweep and returns one Entry per thread budget, in order.
// Any error aborts the run; entries already reported stay reported, but no
// partial result is returned.
func (d *Driver) Run() ([]Entry, error) {
	n := d.cfg.Dimension()
	d.rep.Begin(Host(), d.cfg)

	var a, b *matrix.Dense
	entries := make([]Entry, 0, len(d.cfg.Threads))
	for _, threads := range d.cfg.Threads {
		if a == nil || d.cfg.Regenerate {
			var err error
			if a, b, err = d.inputs(n); err != nil {
				return nil, err
			}
		}
		e, err := d.runEntry(a, b, threads)
		if err != nil {
			return nil, fmt.Errorf("bench: threads=%d: %w", threads, err)
		}
		d.rep.Entry(e)
		entries = append(entries, e)
	}
	d.rep.End(Summarize(entries))

	return entries, nil
}

// inputs draws the two operands from the driver's stream.
func (d *Driver) inputs(n int) (*matrix.Dense, *matrix.Dense, error) {
	a, err := generator.New(n, d.cfg.Lower, d.cfg.Upper, generator.WithRand(d.rng))
	if err != nil {
		return nil, nil, err
	}
	b, err := generator.New(n, d.cfg.Lower, d.cfg.Upper, generator.WithRand(d.rng))
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// runEntry performs one sweep step on fixed inputs.
func (d *Driver) runEntry(a, b *matrix.Dense, threads int) (Entry, error) {
	e := Entry{Threads: threads, Verified: d.cfg.Verify}

	seq, err := d.measure(a, b, multiply.Sequential, threads, &e.Sequential, &e.Verified)
	if err != nil {
		return Entry{}, err
	}
	e.Checksum = seq.C.Trace()

	if d.cfg.IncludeTiled {
		e.Tiled = new(Sample)
		if _, err = d.measure(a, b, multiply.Tiled, threads, e.Tiled, &e.Verified); err != nil {
			return Entry{}, err
		}
		e.TiledSpeedup = Speedup(e.Sequential.Elapsed, e.Tiled.Elapsed)
	}

	par, err := d.measure(a, b, multiply.Parallel, threads, &e.Parallel, &e.Verified)
	if err != nil {
		return Entry{}, err
	}
	if !seq.C.Equal(par.C) {
		return Entry{}, fmt.Errorf("parallel result differs from sequential: %w", verify.ErrMismatch)
	}
	e.Speedup = Speedup(e.Sequential.Elapsed, e.Parallel.Elapsed)

	if d.cfg.PrintMatrices {
		d.rep.Matrices(a, b, seq.C)
	}

	return e, nil
}

// measure runs one strategy, records its Sample, reports it, and verifies
// the product when enabled. An unverifiable product (values too large for
// an exact reference) clears *verified instead of failing the run.
func (d *Driver) measure(a, b *matrix.Dense, s multiply.Strategy, threads int, out *Sample, verified *bool) (multiply.Result, error) {
	opts := append(append([]multiply.Option(nil), d.engine...),
		multiply.WithThreads(threads),
		multiply.WithTileSize(d.cfg.TileSize),
	)
	res, err := multiply.Multiply(a, b, s, opts...)
	if err != nil {
		return multiply.Result{}, err
	}
	*out = Sample{Algorithm: s, Workers: res.Workers, TileSize: res.TileSize, Elapsed: res.Elapsed}
	d.rep.Sample(*out)

	if d.cfg.Verify {
		switch err = verify.Product(a, b, res.C); {
		case errors.Is(err, verify.ErrUnverifiable):
			*verified = false
		case err != nil:
			return multiply.Result{}, err
		}
	}

	return res, nil
}
