// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ajroetker/spmvbench/sparse"
	"github.com/ajroetker/spmvbench/sparse/bench"
	"github.com/ajroetker/spmvbench/sparse/mmio"
	"github.com/ajroetker/spmvbench/sparse/spmv"
	"github.com/ajroetker/spmvbench/sparse/workerpool"
)

func runBenchmark(cmd *cobra.Command, cfg *config, method spmv.Method, path string) error {
	out := cmd.OutOrStdout()
	log, err := newLogger(cfg.logLevel, cfg.logFormat)
	if err != nil {
		return err
	}
	if cfg.runs <= 0 {
		cfg.runs = bench.DefaultRuns
	}
	if cfg.chunk < 0 {
		cfg.chunk = 0
	}

	var sched workerpool.Schedule
	if method != spmv.MethodSequential {
		kind, err := workerpool.ParseKind(cfg.schedule)
		if err != nil {
			return err
		}
		sched = workerpool.Schedule{Kind: kind, Chunk: cfg.chunk}
	}

	color.New(color.Bold).Fprintf(out, "=== Sparse Matrix Program (METHOD %d: %s) ===\n", int(method), method)
	fmt.Fprintf(out, "Attempting to open file: %s\n", path)

	m, err := mmio.Load(path, mmio.WithParallelism(cfg.threads))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Skipped %d comment line(s).\n", m.Comments)
	fmt.Fprintf(out, "Matrix dimensions: %d x %d with %d non-zero elements\n", m.Rows, m.Cols, m.NNZ())
	if m.OneBased {
		fmt.Fprintln(out, "Detected 1-based indexing, converted to 0-based.")
	}
	log.Info("matrix loaded", "path", path, "rows", m.Rows, "cols", m.Cols, "nnz", m.NNZ(), "one_based", m.OneBased)

	fmt.Fprintln(out, "Converting to CSR format...")
	a, err := m.CSR()
	if err != nil {
		return fmt.Errorf("convert to CSR: %w", err)
	}
	m.Entries = nil

	pool := workerpool.New(cfg.threads)
	defer pool.Close()

	var kernel spmv.Kernel
	switch method {
	case spmv.MethodSequential:
		kernel = spmv.NewSequential(a)
	case spmv.MethodRowParallel:
		kernel = spmv.NewRowParallel(pool, sched, a)
	case spmv.MethodAtomic:
		kernel = spmv.NewAtomicElement(pool, sched, a)
	case spmv.MethodSell:
		fmt.Fprintln(out, "Converting CSR to SELL-C-sigma...")
		s, err := sparse.BuildSell(a, cfg.sliceHeight, cfg.sigma)
		if err != nil {
			return fmt.Errorf("convert to SELL-C-sigma: %w", err)
		}
		fmt.Fprintf(out, "SELL-C-sigma: C=%d sigma=%d slices=%d padded=%d fill=%.2f%%\n",
			s.C(), s.Sigma(), s.Slices(), s.Len(), 100*s.Fill())
		kernel = spmv.NewSellSlice(pool, sched, s)
	default:
		return fmt.Errorf("unsupported method %d", int(method))
	}

	runner := bench.NewRunner(
		bench.WithRuns(cfg.runs),
		bench.WithSeed(cfg.seed),
		bench.WithLogger(log),
		bench.WithProgress(func(run int, ms float64) {
			fmt.Fprintf(out, "Run %d: %.6f ms\n", run, ms)
		}),
	)

	printConfig(out, cfg, method, pool, sched)
	log.Info("benchmark starting", "method", method.String(), "runs", runner.Runs(), "seed", runner.Seed(),
		"threads", pool.NumWorkers(), "host", sparse.CurrentHost().Level.String())

	fmt.Fprintf(out, "\nRunning %d matrix-vector multiplications...\n", runner.Runs())
	res := runner.Run(kernel)

	if cfg.verify {
		if err := spmv.Verify(kernel, a, res.X); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(out, "Verified against the sequential product (tolerance %g).\n", method.Tolerance())
	}

	fmt.Fprintf(out, "Summary: %s\n", res.Summary())
	fmt.Fprintf(out, "Saving all %d runs to file...\n", runner.Runs())
	if err := bench.SaveResults(cfg.out, res); err != nil {
		return err
	}
	log.Info("results saved", "id", res.ID.String(), "file", cfg.out)

	color.New(color.FgGreen, color.Bold).Fprintln(out, "\n=== Success! ===")
	fmt.Fprintf(out, "All %d runs saved to %s\n", runner.Runs(), cfg.out)
	return nil
}

func printConfig(out io.Writer, cfg *config, method spmv.Method, pool *workerpool.Pool, sched workerpool.Schedule) {
	host := sparse.CurrentHost()
	fmt.Fprintln(out, "\nRuntime configuration:")
	fmt.Fprintf(out, "  Method: %d (%s)\n", int(method), method)
	fmt.Fprintf(out, "  Runs: %d\n", cfg.runs)
	fmt.Fprintf(out, "  Host: %s/%s, %d CPUs, %s\n", host.GOOS, host.GOARCH, host.CPUs, host.Level)
	switch method {
	case spmv.MethodSequential:
		fmt.Fprintln(out, "  Threads: 1")
	case spmv.MethodSell:
		fmt.Fprintf(out, "  Threads: %d\n", pool.NumWorkers())
		fmt.Fprintf(out, "  Slice height C=%d  sigma=%d  schedule: %s\n", cfg.sliceHeight, cfg.sigma, sched)
	default:
		fmt.Fprintf(out, "  Threads: %d\n", pool.NumWorkers())
		fmt.Fprintf(out, "  Schedule: %s\n", sched)
	}
}
