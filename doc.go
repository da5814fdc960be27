// Package matbench measures how much a square integer matrix product gains
// from cache tiling and from splitting rows across goroutines.
//
// 🚀 What is matbench?
//
//	A small benchmark kit that brings together:
//		• Storage: flat row-major int64 matrices (matrix)
//		• Inputs: uniform random fill over a closed range (generator)
//		• Kernels: Sequential, Tiled and Parallel behind one Multiply call (multiply)
//		• Checking: an exact float64 reference product via gonum (verify)
//		• Sweeps: thread-budget sweeps, speedups and text reports (bench)
//
// ✨ Guarantees
//
//   - Every strategy returns bit-identical results for the same inputs.
//   - Parallel work is split into contiguous row ranges before any goroutine
//     starts; each output cell is written by exactly one worker.
//   - Parallel timings include goroutine spawn and join.
//   - No package-level mutable state: a run is described by bench.Config.
//
// Layout:
//
//	matrix/     — Dense storage, validators
//	generator/  — Fill/New with functional options (seed, custom rand)
//	multiply/   — strategies, static row partition, timing
//	verify/     — gonum-backed cross-check
//	bench/      — Config, Driver, Reporter, host detection
//	cmd/matbench — the runnable sweep
//
// Quick example:
//
//	a, _ := generator.New(512, 1, 100)
//	b, _ := generator.New(512, 1, 100)
//	res, _ := multiply.Multiply(a, b, multiply.Parallel, multiply.WithThreads(4))
//	fmt.Println(res.Workers, res.Elapsed)
//
//	go run github.com/katalvlaran/matbench/cmd/matbench
package matbench
