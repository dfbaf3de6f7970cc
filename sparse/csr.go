// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package sparse

import "fmt"

// CSR is a compressed sparse row matrix.
//
// Row r's entries occupy [rowPtr[r], rowPtr[r+1]) of values and colIndex.
// A CSR is immutable after BuildCSR returns; the slices returned by its
// accessors must not be modified.
type CSR struct {
	rows, cols int
	values     []float64
	colIndex   []int
	rowPtr     []int
}

// BuildCSR converts triplets into CSR form with a counting sort.
//
// Entries keep their input order within each row, so triplets sorted with
// SortTriplets yield ascending column indices per row. Duplicate (row, col)
// entries are stored separately.
//
// Returns ErrInvalidDims for non-positive dimensions and an *IndexError for
// any triplet outside the matrix. No partial CSR is ever returned.
func BuildCSR(triplets []Triplet, rows, cols int) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDims, rows, cols)
	}
	for i, t := range triplets {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, &IndexError{Entry: i, Row: t.Row, Col: t.Col, Rows: rows, Cols: cols}
		}
	}

	nnz := len(triplets)
	m := &CSR{
		rows:     rows,
		cols:     cols,
		values:   make([]float64, nnz),
		colIndex: make([]int, nnz),
		rowPtr:   make([]int, rows+1),
	}

	// Histogram, then prefix sum into row start offsets.
	for _, t := range triplets {
		m.rowPtr[t.Row+1]++
	}
	for r := range rows {
		m.rowPtr[r+1] += m.rowPtr[r]
	}

	// Scatter through a copy so rowPtr stays the boundary table.
	cursor := make([]int, rows)
	copy(cursor, m.rowPtr[:rows])
	for _, t := range triplets {
		dest := cursor[t.Row]
		m.values[dest] = t.Val
		m.colIndex[dest] = t.Col
		cursor[t.Row]++
	}

	return m, nil
}

// FromTriplets sorts triplets in place and builds a CSR from them.
func FromTriplets(triplets []Triplet, rows, cols int) (*CSR, error) {
	SortTriplets(triplets)
	return BuildCSR(triplets, rows, cols)
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.values) }

// Values returns the entry values in row order.
func (m *CSR) Values() []float64 { return m.values }

// ColIndex returns the column index of each entry.
func (m *CSR) ColIndex() []int { return m.colIndex }

// RowPtr returns the rows+1 row-boundary offsets.
func (m *CSR) RowPtr() []int { return m.rowPtr }

// RowLen returns the number of entries stored for row r.
func (m *CSR) RowLen(r int) int {
	return m.rowPtr[r+1] - m.rowPtr[r]
}

// Row returns the column indices and values of row r.
func (m *CSR) Row(r int) ([]int, []float64) {
	lo, hi := m.rowPtr[r], m.rowPtr[r+1]
	return m.colIndex[lo:hi], m.values[lo:hi]
}

// FindRow returns the row r such that rowPtr[r] <= k < rowPtr[r+1].
//
// rowPtr must be a non-decreasing boundary table with rowPtr[0] == 0, and k
// must lie in [0, rowPtr[len(rowPtr)-1]). Empty rows are skipped because
// the search finds the last row whose start is not past k. FindRow does not
// modify rowPtr and is safe for concurrent use.
func FindRow(rowPtr []int, k int) int {
	lo, hi := 0, len(rowPtr)-2
	for lo < hi {
		mid := int(uint(lo+hi+1) >> 1)
		if rowPtr[mid] <= k {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
