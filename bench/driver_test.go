package bench_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
)

// stepClock returns a clock advancing by step on every reading.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

// recorder keeps the sequence of Reporter calls as short tags.
type recorder struct {
	events  []string
	samples []bench.Sample
	summary bench.Summary
}

func (r *recorder) Begin(bench.HostInfo, bench.Config) { r.events = append(r.events, "begin") }
func (r *recorder) Sample(s bench.Sample) {
	r.events = append(r.events, s.Algorithm.String())
	r.samples = append(r.samples, s)
}
func (r *recorder) Matrices(_, _, _ *matrix.Dense) { r.events = append(r.events, "matrices") }
func (r *recorder) Entry(bench.Entry) { r.events = append(r.events, "entry") }
func (r *recorder) End(s bench.Summary) {
	r.events = append(r.events, "end")
	r.summary = s
}

type DriverSuite struct {
	suite.Suite
	cfg bench.Config
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func (s *DriverSuite) SetupTest() {
	s.cfg = bench.Config{
		Exponent:     3,
		Threads:      []int{1, 2, 0, 16},
		Lower:        -5,
		Upper:        5,
		TileSize:     3,
		IncludeTiled: true,
		Verify:       true,
		Seed:         42,
	}
}

func (s *DriverSuite) run(rep bench.Reporter, opts ...multiply.Option) []bench.Entry {
	d, err := bench.NewDriver(s.cfg, rep, opts...)
	s.Require().NoError(err)
	entries, err := d.Run()
	s.Require().NoError(err)

	return entries
}

func (s *DriverSuite) TestOneEntryPerBudget() {
	entries := s.run(nil, multiply.WithClock(stepClock(time.Millisecond)))
	s.Require().Len(entries, len(s.cfg.Threads))

	n := s.cfg.Dimension()
	wantWorkers := []int{1, 2, min(runtime.GOMAXPROCS(0), n), n}
	for i, e := range entries {
		s.Equal(s.cfg.Threads[i], e.Threads)
		s.Equal(wantWorkers[i], e.Parallel.Workers)
		s.Equal(multiply.Sequential, e.Sequential.Algorithm)
		s.Equal(multiply.Parallel, e.Parallel.Algorithm)
		s.Require().NotNil(e.Tiled)
		s.Equal(3, e.Tiled.TileSize)
		s.True(e.Verified)
		s.InDelta(1.0, e.Speedup, 1e-12)
		s.InDelta(1.0, e.TiledSpeedup, 1e-12)
		s.Equal(entries[0].Checksum, e.Checksum, "inputs are fixed across entries")
	}
}

func (s *DriverSuite) TestTimingsNonNegative() {
	for _, e := range s.run(nil) {
		s.GreaterOrEqual(e.Sequential.Elapsed, time.Duration(0))
		s.GreaterOrEqual(e.Parallel.Elapsed, time.Duration(0))
		s.GreaterOrEqual(e.Tiled.Elapsed, time.Duration(0))
		s.GreaterOrEqual(e.Speedup, 0.0)
	}
}

func (s *DriverSuite) TestReporterOrder() {
	s.cfg.Threads = []int{1, 2}
	s.cfg.PrintMatrices = true
	rec := &recorder{}
	s.run(rec)

	entry := []string{"sequential", "tiled", "parallel", "matrices", "entry"}
	want := append([]string{"begin"}, entry...)
	want = append(want, entry...)
	want = append(want, "end")
	s.Equal(want, rec.events)
	s.Equal(2, rec.summary.Entries)
	s.Len(rec.samples, 6)
}

func (s *DriverSuite) TestWithoutTiled() {
	s.cfg.IncludeTiled = false
	rec := &recorder{}
	for _, e := range s.run(rec) {
		s.Nil(e.Tiled)
		s.Zero(e.TiledSpeedup)
	}
	s.NotContains(rec.events, "tiled")
}

func (s *DriverSuite) TestSeedReproducible() {
	first := s.run(nil)
	second := s.run(nil)
	s.Equal(first[0].Checksum, second[0].Checksum)
}

func (s *DriverSuite) TestRegenerate() {
	s.cfg.Regenerate = true
	s.cfg.Seed = 0
	entries := s.run(nil)
	s.Len(entries, len(s.cfg.Threads))
	for _, e := range entries {
		s.True(e.Verified)
	}
}

func (s *DriverSuite) TestVerifyDisabled() {
	s.cfg.Verify = false
	for _, e := range s.run(nil) {
		s.False(e.Verified)
	}
}

func (s *DriverSuite) TestUnverifiableIsNotFatal() {
	s.cfg.Exponent = 1
	s.cfg.Lower, s.cfg.Upper = -(1 << 40), 1<<40
	for _, e := range s.run(nil) {
		s.False(e.Verified)
	}
}

func (s *DriverSuite) TestSingleCell() {
	s.cfg.Exponent = 0
	s.cfg.Lower, s.cfg.Upper = 3, 3
	for _, e := range s.run(nil) {
		s.Equal(int64(9), e.Checksum)
		s.Equal(1, e.Parallel.Workers)
	}
}

func TestNewDriverRejectsInvalidConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Threads = nil
	d, err := bench.NewDriver(cfg, nil)
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
	require.Nil(t, d)
}

func TestNewDriverCopiesThreads(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Exponent = 2
	d, err := bench.NewDriver(cfg, nil)
	require.NoError(t, err)

	cfg.Threads[0] = 99
	entries, err := d.Run()
	require.NoError(t, err)
	require.Equal(t, 1, entries[0].Threads)
}
