// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package sparse

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// SellCS is a SELL-C-σ matrix: rows are grouped into slices of height C and
// each slice is stored column-major, padded to the slice's length.
//
// Entry k of row r (slice s = r/C) lives at slicePtr[s] + k*C + r%C.
type SellCS struct {
	c, sigma     int
	rows, cols   int
	nnz          int
	slicePtr     []int
	sliceLengths []int
	colIdx       []int
	values       []float64
}

// BuildSell derives a SELL-C-σ layout from a CSR matrix.
//
// Row lengths are sorted in descending order within each block of sigma
// rows, and each slice is padded to the largest sorted length at its row
// positions. Only the length table is sorted: row r still lives in slice
// r/C with its own entries. When a sigma block straddles slices, a row can
// end up longer than its slice's padded length; BuildSell then returns a
// *SliceOverflowError rather than a layout that would spill into the next
// slice.
func BuildSell(a *CSR, c, sigma int) (*SellCS, error) {
	if c <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSliceHeight, c)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSigma, sigma)
	}

	rows := a.rows
	numSlices := (rows + c - 1) / c

	rowLen := make([]int, rows)
	for r := range rows {
		rowLen[r] = a.RowLen(r)
	}
	for b := 0; b < rows; b += sigma {
		slices.SortFunc(rowLen[b:min(b+sigma, rows)], func(x, y int) int {
			return cmp.Compare(y, x)
		})
	}

	sliceLengths := make([]int, numSlices)
	slicePtr := make([]int, numSlices+1)
	for s := range numSlices {
		start, end := s*c, min(s*c+c, rows)
		width := slices.Max(rowLen[start:end])

		for r := start; r < end; r++ {
			if n := a.RowLen(r); n > width {
				return nil, &SliceOverflowError{
					Row: r, Slice: s, RowLen: n, SliceLen: width, C: c, Sigma: sigma,
				}
			}
		}

		if width > 0 && (width > math.MaxInt/c || slicePtr[s] > math.MaxInt-width*c) {
			return nil, fmt.Errorf("%w: slice %d needs %d x %d entries", ErrTooLarge, s, width, c)
		}
		sliceLengths[s] = width
		slicePtr[s+1] = slicePtr[s] + width*c
	}

	total := slicePtr[numSlices]
	m := &SellCS{
		c:            c,
		sigma:        sigma,
		rows:         rows,
		cols:         a.cols,
		nnz:          a.NNZ(),
		slicePtr:     slicePtr,
		sliceLengths: sliceLengths,
		colIdx:       make([]int, total),
		values:       make([]float64, total),
	}

	// Positions past a row's last entry keep value 0 and column 0.
	for s := range numSlices {
		start, end := s*c, min(s*c+c, rows)
		base := slicePtr[s]
		for r := start; r < end; r++ {
			cols, vals := a.Row(r)
			for k := range vals {
				idx := base + k*c + (r - start)
				m.values[idx] = vals[k]
				m.colIdx[idx] = cols[k]
			}
		}
	}

	return m, nil
}

// C returns the slice height.
func (m *SellCS) C() int { return m.c }

// Sigma returns the sort-block size used to size the slices.
func (m *SellCS) Sigma() int { return m.sigma }

// Rows returns the number of rows.
func (m *SellCS) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *SellCS) Cols() int { return m.cols }

// NNZ returns the number of true (non-padding) entries.
func (m *SellCS) NNZ() int { return m.nnz }

// Slices returns the number of slices, ceil(rows/C).
func (m *SellCS) Slices() int { return len(m.sliceLengths) }

// SlicePtr returns the slices+1 offsets into the padded storage.
func (m *SellCS) SlicePtr() []int { return m.slicePtr }

// SliceLengths returns the padded row length of each slice.
func (m *SellCS) SliceLengths() []int { return m.sliceLengths }

// ColIdx returns the padded column index storage.
func (m *SellCS) ColIdx() []int { return m.colIdx }

// Values returns the padded value storage.
func (m *SellCS) Values() []float64 { return m.values }

// Len returns the padded storage size, SlicePtr()[Slices()].
func (m *SellCS) Len() int { return len(m.values) }

// SliceRows returns the row range [start, end) of slice s.
func (m *SellCS) SliceRows(s int) (start, end int) {
	start = s * m.c
	return start, min(start+m.c, m.rows)
}

// Fill returns the fraction of padded storage holding true entries.
// An empty layout reports 1.
func (m *SellCS) Fill() float64 {
	if len(m.values) == 0 {
		return 1
	}
	return float64(m.nnz) / float64(len(m.values))
}
