// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package spmv

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/spmvbench/sparse"
)

// ErrMismatch is returned by Verify when a kernel disagrees with the
// sequential product.
var ErrMismatch = errors.New("spmv: result mismatch")

// MismatchError reports the first row outside tolerance.
type MismatchError struct {
	Method    Method
	Row       int
	Got, Want float64
	Tolerance float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: y[%d] = %g, want %g (tolerance %g)",
		e.Method, e.Row, e.Got, e.Want, e.Tolerance)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// Verify runs k on x and compares the result with the sequential product
// of a, which must be the matrix k was built from.
//
// Row i passes when |got - want| <= tol * sum_j |a_ij * x_j|, with tol from
// k.Method().Tolerance().
func Verify(k Kernel, a *sparse.CSR, x []float64) error {
	got := make([]float64, a.Rows())
	k.MulVec(got, x)

	want := make([]float64, a.Rows())
	Sequential(a, x, want)

	tol := k.Method().Tolerance()
	for i := range want {
		if got[i] == want[i] {
			continue
		}
		cols, vals := a.Row(i)
		var scale float64
		for j, v := range vals {
			scale += math.Abs(v * x[cols[j]])
		}
		if d := math.Abs(got[i] - want[i]); !(d <= tol*scale) {
			return &MismatchError{Method: k.Method(), Row: i, Got: got[i], Want: want[i], Tolerance: tol}
		}
	}
	return nil
}
