// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package sparse

import "runtime"

// VectorLevel is the widest vector instruction set reported by the CPU.
// Benchmark results record it so timings from different hosts can be told
// apart; the kernels themselves are portable Go.
type VectorLevel int

const (
	// LevelScalar indicates no vector extension was detected.
	LevelScalar VectorLevel = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 with FMA.
	LevelAVX2

	// LevelAVX512 indicates AVX-512 F.
	LevelAVX512

	// LevelNEON indicates ARM Advanced SIMD.
	LevelNEON

	// LevelSVE indicates ARM SVE.
	LevelSVE
)

// String returns a human-readable name for the level.
func (l VectorLevel) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel VectorLevel

// CurrentLevel returns the detected vector level.
func CurrentLevel() VectorLevel {
	return currentLevel
}

// Host describes the machine a benchmark runs on.
type Host struct {
	GOOS   string
	GOARCH string
	CPUs   int
	Level  VectorLevel
}

// CurrentHost returns the description of the running machine.
func CurrentHost() Host {
	return Host{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		CPUs:   runtime.NumCPU(),
		Level:  CurrentLevel(),
	}
}
