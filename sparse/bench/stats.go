// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds statistics over run times in milliseconds.
type Summary struct {
	Runs   int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes the statistics of times. Empty input yields a zero
// Summary.
func Summarize(times []float64) Summary {
	if len(times) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(times)
	slices.Sort(sorted)

	s := Summary{
		Runs:   len(times),
		Min:    floats.Min(times),
		Max:    floats.Max(times),
		Mean:   stat.Mean(times, nil),
		Median: median(sorted),
	}
	if len(times) > 1 {
		s.StdDev = stat.StdDev(times, nil)
	}
	return s
}

// median returns the middle of sorted, averaging the two middle values
// when the length is even.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}

func (s Summary) String() string {
	return fmt.Sprintf("runs=%d min=%.6f ms max=%.6f ms mean=%.6f ms median=%.6f ms stddev=%.6f ms",
		s.Runs, s.Min, s.Max, s.Mean, s.Median, s.StdDev)
}
