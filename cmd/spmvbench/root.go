// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/spmvbench/sparse/bench"
	"github.com/ajroetker/spmvbench/sparse/spmv"
	"github.com/ajroetker/spmvbench/sparse/workerpool"
)

// config holds every flag value of a benchmark invocation. The
// per-method fields are filled from the running subcommand's methodFlags.
type config struct {
	threads   int
	runs      int
	seed      uint64
	out       string
	verify    bool
	logLevel  string
	logFormat string

	schedule    string
	chunk       int
	sliceHeight int
	sigma       int
}

// envThreads returns SPMV_THREADS, or 0 (all CPUs) when unset or invalid.
func envThreads() int {
	n, err := strconv.Atoi(os.Getenv("SPMV_THREADS"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func scheduleNames() string {
	return strings.Join(lo.Map(workerpool.Kinds(), func(k workerpool.Kind, _ int) string {
		return k.String()
	}), " | ")
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "spmvbench",
		Short:         "Benchmark sparse matrix-vector multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&cfg.runs, "runs", "r", bench.DefaultRuns, "number of runs")
	pf.IntVarP(&cfg.threads, "threads", "t", envThreads(), "number of worker threads (0 = all CPUs, env SPMV_THREADS)")
	pf.Uint64Var(&cfg.seed, "seed", 0, "seed for the random input vectors (0 = time based)")
	pf.StringVar(&cfg.out, "out", bench.DefaultResultsFile, "file receiving the run times")
	pf.BoolVar(&cfg.verify, "verify", false, "check the last product against the sequential kernel")
	pf.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug | info | warn | error")
	pf.StringVar(&cfg.logFormat, "log-format", "text", "log format: text | json")

	root.AddCommand(
		newMethodCmd(cfg, spmv.MethodSequential, "seq <matrix_file>", "METHOD 0: single-threaded CSR"),
		newMethodCmd(cfg, spmv.MethodRowParallel, "rows <matrix_file>", "METHOD 1: parallel over CSR rows"),
		newMethodCmd(cfg, spmv.MethodAtomic, "atomic <matrix_file>", "METHOD 2: parallel over nonzeros with atomic updates"),
		newMethodCmd(cfg, spmv.MethodSell, "sell <matrix_file>", "METHOD 3: SELL-C-sigma, parallel over slices"),
	)
	return root
}

// methodFlags holds the flags owned by one subcommand.
type methodFlags struct {
	schedule    string
	chunk       int
	sliceHeight int
	sigma       int
}

func newMethodCmd(cfg *config, method spmv.Method, use, short string) *cobra.Command {
	mf := &methodFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.schedule, cfg.chunk = mf.schedule, mf.chunk
			cfg.sliceHeight, cfg.sigma = mf.sliceHeight, mf.sigma
			return runBenchmark(cmd, cfg, method, args[0])
		},
	}

	f := cmd.Flags()
	switch method {
	case spmv.MethodSequential:
	case spmv.MethodSell:
		f.IntVarP(&mf.sliceHeight, "chunk", "c", 8, "slice height C")
		f.IntVarP(&mf.sigma, "sigma", "s", 1, "sort-block size sigma")
		f.StringVar(&mf.schedule, "schedule", "static", "loop schedule: "+scheduleNames())
	default:
		f.StringVarP(&mf.schedule, "schedule", "s", "guided", "loop schedule: "+scheduleNames())
		f.IntVarP(&mf.chunk, "chunk", "c", 0, "chunk size for the schedule")
	}
	return cmd
}
