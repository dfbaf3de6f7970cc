// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

// Package spmv implements sparse matrix times dense vector products,
// y = A*x, under four execution strategies:
//
//   - Method 0, Sequential: one CSR row after another on the caller.
//   - Method 1, RowParallel: CSR rows are independent parallel units.
//   - Method 2, AtomicElement: every CSR nonzero is a parallel unit; its
//     row is found by binary search and its product is added to y with an
//     atomic fetch-and-add.
//   - Method 3, SellSlice: SELL-C-σ slices are independent parallel units.
//
// Methods 0, 1 and 3 are bitwise deterministic for a given input. Method 2
// sums each row in scheduling order and is only accurate to rounding.
//
// The parallel methods take a *workerpool.Pool and a workerpool.Schedule;
// the schedule changes how units are handed out, never the result.
//
// Kernels check vector lengths once on entry and panic on a mismatch, like
// dense matvec routines. Inside the loops they trust the layout.
package spmv
