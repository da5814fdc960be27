// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine the sweep runs on. It goes into the report
// header so timings from different machines are not compared blindly.
type HostInfo struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // detected SIMD/ISA extensions, in a fixed order
}

type cpuFeature struct {
	name    string
	present bool
}

// Host snapshots the runtime and CPU feature flags.
func Host() HostInfo {
	return HostInfo{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   detectFeatures(runtime.GOARCH),
	}
}

// detectFeatures lists the extensions relevant to dense integer kernels.
// Unknown architectures report none.
func detectFeatures(goarch string) []string {
	var all []cpuFeature
	switch goarch {
	case "amd64", "386":
		all = []cpuFeature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
			{"avx512bw", cpu.X86.HasAVX512BW},
		}
	case "arm64":
		all = []cpuFeature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"asimddp", cpu.ARM64.HasASIMDDP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
			{"atomics", cpu.ARM64.HasATOMICS},
		}
	}

	return lo.FilterMap(all, func(f cpuFeature, _ int) (string, bool) {
		return f.name, f.present
	})
}
