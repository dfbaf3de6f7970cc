// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

// Package bench times repeated SpMV runs.
//
// A Runner draws a fresh random x for every run, times one Kernel.MulVec
// call, and collects the elapsed milliseconds. Runs are strictly
// sequential; parallelism lives inside the kernel.
//
//	r := bench.NewRunner(bench.WithRuns(20), bench.WithSeed(1))
//	res := r.Run(kernel)
//	fmt.Println(res.Summary())
//	err := bench.SaveResults("all_runs.txt", res)
package bench
