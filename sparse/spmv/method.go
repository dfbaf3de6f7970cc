// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package spmv

import (
	"fmt"

	"github.com/ajroetker/spmvbench/sparse"
	"github.com/ajroetker/spmvbench/sparse/workerpool"
)

// Method identifies an SpMV strategy by the number used in result files.
type Method int

const (
	MethodSequential Method = iota
	MethodRowParallel
	MethodAtomic
	MethodSell
)

// String returns the human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodSequential:
		return "Sequential"
	case MethodRowParallel:
		return "Row Parallel"
	case MethodAtomic:
		return "Atomic Operations"
	case MethodSell:
		return "SELL-C-sigma"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Tolerance returns the relative error a method is allowed against the
// sequential product. Only the atomic method reorders row sums.
func (m Method) Tolerance() float64 {
	if m == MethodAtomic {
		return 1e-6
	}
	return 1e-9
}

// Kernel is a matrix bound to one SpMV strategy.
type Kernel interface {
	// Method reports the strategy.
	Method() Method
	// Rows and Cols report the matrix shape; MulVec needs len(x) >= Cols
	// and len(y) >= Rows.
	Rows() int
	Cols() int
	// MulVec overwrites y with A*x.
	MulVec(y, x []float64)
}

type sequentialKernel struct{ a *sparse.CSR }

// NewSequential binds a CSR matrix to method 0.
func NewSequential(a *sparse.CSR) Kernel { return sequentialKernel{a} }

func (k sequentialKernel) Method() Method        { return MethodSequential }
func (k sequentialKernel) Rows() int             { return k.a.Rows() }
func (k sequentialKernel) Cols() int             { return k.a.Cols() }
func (k sequentialKernel) MulVec(y, x []float64) { Sequential(k.a, x, y) }

type csrKernel struct {
	method Method
	a      *sparse.CSR
	pool   *workerpool.Pool
	sched  workerpool.Schedule
}

// NewRowParallel binds a CSR matrix to method 1.
func NewRowParallel(pool *workerpool.Pool, sched workerpool.Schedule, a *sparse.CSR) Kernel {
	return &csrKernel{method: MethodRowParallel, a: a, pool: pool, sched: sched}
}

// NewAtomicElement binds a CSR matrix to method 2.
func NewAtomicElement(pool *workerpool.Pool, sched workerpool.Schedule, a *sparse.CSR) Kernel {
	return &csrKernel{method: MethodAtomic, a: a, pool: pool, sched: sched}
}

func (k *csrKernel) Method() Method { return k.method }
func (k *csrKernel) Rows() int      { return k.a.Rows() }
func (k *csrKernel) Cols() int      { return k.a.Cols() }

func (k *csrKernel) MulVec(y, x []float64) {
	if k.method == MethodAtomic {
		AtomicElement(k.pool, k.sched, k.a, x, y)
		return
	}
	RowParallel(k.pool, k.sched, k.a, x, y)
}

type sellKernel struct {
	s     *sparse.SellCS
	pool  *workerpool.Pool
	sched workerpool.Schedule
}

// NewSellSlice binds a SELL-C-σ matrix to method 3.
func NewSellSlice(pool *workerpool.Pool, sched workerpool.Schedule, s *sparse.SellCS) Kernel {
	return &sellKernel{s: s, pool: pool, sched: sched}
}

func (k *sellKernel) Method() Method        { return MethodSell }
func (k *sellKernel) Rows() int             { return k.s.Rows() }
func (k *sellKernel) Cols() int             { return k.s.Cols() }
func (k *sellKernel) MulVec(y, x []float64) { SellSlice(k.pool, k.sched, k.s, x, y) }
