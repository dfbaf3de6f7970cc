// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDims is returned when a matrix has a non-positive row or column count.
	ErrInvalidDims = errors.New("sparse: matrix dimensions must be positive")

	// ErrIndexOutOfRange is returned when a triplet lies outside the matrix.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrSliceHeight is returned for a non-positive SELL slice height C.
	ErrSliceHeight = errors.New("sparse: slice height must be positive")

	// ErrSigma is returned for a non-positive SELL sort-block size.
	ErrSigma = errors.New("sparse: sigma must be positive")

	// ErrSliceOverflow is returned when a row does not fit the padded length
	// chosen for its slice.
	ErrSliceOverflow = errors.New("sparse: row longer than its slice")

	// ErrTooLarge is returned when a layout would not be addressable.
	ErrTooLarge = errors.New("sparse: layout too large")
)

// IndexError reports a triplet outside [0,rows)x[0,cols).
//
// Entry is the zero-based position of the triplet in its input list.
type IndexError struct {
	Entry      int
	Row, Col   int
	Rows, Cols int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid indices at entry %d (row=%d, col=%d) for %dx%d matrix",
		e.Entry+1, e.Row, e.Col, e.Rows, e.Cols)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// SliceOverflowError reports a row whose true length exceeds the padded
// length its slice received from the sigma-sorted length table.
type SliceOverflowError struct {
	Row      int
	Slice    int
	RowLen   int
	SliceLen int
	C, Sigma int
}

func (e *SliceOverflowError) Error() string {
	return fmt.Sprintf("row %d has %d nonzeros but slice %d is padded to %d (C=%d, sigma=%d)",
		e.Row, e.RowLen, e.Slice, e.SliceLen, e.C, e.Sigma)
}

func (e *SliceOverflowError) Unwrap() error { return ErrSliceOverflow }
