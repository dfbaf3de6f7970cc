// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package spmv

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/ajroetker/spmvbench/sparse"
	"github.com/ajroetker/spmvbench/sparse/workerpool"
)

func checkDims(rows, cols int, y, x []float64) {
	if len(x) < cols {
		panic("spmv: x too short for matrix columns")
	}
	if len(y) < rows {
		panic("spmv: y too short for matrix rows")
	}
}

// Sequential computes y = A*x one row at a time on the calling goroutine.
func Sequential(a *sparse.CSR, x, y []float64) {
	checkDims(a.Rows(), a.Cols(), y, x)
	mulRows(a.RowPtr(), a.ColIndex(), a.Values(), x, y, 0, a.Rows())
}

// RowParallel computes y = A*x with CSR rows as parallel units.
// Each row is summed in column order by exactly one worker.
func RowParallel(pool *workerpool.Pool, sched workerpool.Schedule, a *sparse.CSR, x, y []float64) {
	checkDims(a.Rows(), a.Cols(), y, x)
	rowPtr, colIndex, values := a.RowPtr(), a.ColIndex(), a.Values()

	pool.For(a.Rows(), sched, func(start, end int) {
		mulRows(rowPtr, colIndex, values, x, y, start, end)
	})
}

func mulRows(rowPtr, colIndex []int, values, x, y []float64, start, end int) {
	for i := start; i < end; i++ {
		var sum float64
		for j := rowPtr[i]; j < rowPtr[i+1]; j++ {
			sum += values[j] * x[colIndex[j]]
		}
		y[i] = sum
	}
}

// AtomicElement computes y = A*x with CSR nonzeros as parallel units.
//
// y is zeroed in a first parallel pass. Then for every nonzero k the owning
// row is found with sparse.FindRow and values[k]*x[colIndex[k]] is added to
// that row atomically. Contributions are never lost, but their order, and
// therefore the rounding of y, depends on scheduling.
func AtomicElement(pool *workerpool.Pool, sched workerpool.Schedule, a *sparse.CSR, x, y []float64) {
	checkDims(a.Rows(), a.Cols(), y, x)
	rowPtr, colIndex, values := a.RowPtr(), a.ColIndex(), a.Values()

	pool.For(a.Rows(), sched, func(start, end int) {
		clear(y[start:end])
	})

	pool.For(a.NNZ(), sched, func(start, end int) {
		for k := start; k < end; k++ {
			row := sparse.FindRow(rowPtr, k)
			atomicAdd(&y[row], values[k]*x[colIndex[k]])
		}
	})
}

// atomicAdd adds delta to *addr with a compare-and-swap loop on its bits.
func atomicAdd(addr *float64, delta float64) {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		sum := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(bits, old, sum) {
			return
		}
	}
}

// SellSlice computes y = A*x over a SELL-C-σ layout with slices as
// parallel units.
//
// y is zeroed in one parallel pass, then each slice walks its padding
// levels k and accumulates into its own rows. Padding entries hold 0.0 and
// contribute nothing.
func SellSlice(pool *workerpool.Pool, sched workerpool.Schedule, s *sparse.SellCS, x, y []float64) {
	checkDims(s.Rows(), s.Cols(), y, x)
	c, rows := s.C(), s.Rows()
	slicePtr, sliceLengths := s.SlicePtr(), s.SliceLengths()
	colIdx, values := s.ColIdx(), s.Values()

	pool.For(rows, sched, func(start, end int) {
		clear(y[start:end])
	})

	pool.For(s.Slices(), sched, func(first, last int) {
		for sl := first; sl < last; sl++ {
			start := sl * c
			end := min(start+c, rows)
			for k := range sliceLengths[sl] {
				offset := slicePtr[sl] + k*c
				for r := start; r < end; r++ {
					idx := offset + (r - start)
					y[r] += values[idx] * x[colIdx[idx]]
				}
			}
		}
	})
}
