// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rs/xid"

	"github.com/ajroetker/spmvbench/sparse/spmv"
)

// DefaultRuns is the number of timed runs when none is configured.
const DefaultRuns = 10

type options struct {
	runs   int
	seed   uint64
	logger *slog.Logger
	onRun  func(run int, ms float64)
}

// Option configures a Runner.
type Option func(*options)

// WithRuns sets the number of timed runs. Values <= 0 select DefaultRuns.
func WithRuns(n int) Option {
	return func(o *options) {
		o.runs = n
	}
}

// WithSeed fixes the seed of the input vector generator. A zero seed uses
// the current time.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger sets the logger receiving one debug record per run.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithProgress registers a callback invoked after each run with its
// 1-based number and elapsed milliseconds.
func WithProgress(fn func(run int, ms float64)) Option {
	return func(o *options) {
		o.onRun = fn
	}
}

// Runner executes timed SpMV runs.
type Runner struct {
	opts options
	rng  *rand.Rand
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runs <= 0 {
		o.runs = DefaultRuns
	}
	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{
		opts: o,
		rng:  rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
	}
}

// Runs returns the configured number of runs.
func (r *Runner) Runs() int { return r.opts.runs }

// Seed returns the generator seed.
func (r *Runner) Seed() uint64 { return r.opts.seed }

// Result holds the timings of one benchmark.
type Result struct {
	ID     xid.ID
	Method spmv.Method
	// Times holds the elapsed milliseconds of each run.
	Times []float64
	// X and Y are the input and output of the last run.
	X, Y []float64
}

// Summary returns the statistics of the run times.
func (res *Result) Summary() Summary {
	return Summarize(res.Times)
}

// Run times k.MulVec once per configured run. Each run gets a new x with
// entries uniform in [0, 1).
func (r *Runner) Run(k spmv.Kernel) *Result {
	ctx := context.Background()
	res := &Result{
		ID:     xid.New(),
		Method: k.Method(),
		Times:  make([]float64, r.opts.runs),
		X:      make([]float64, k.Cols()),
		Y:      make([]float64, k.Rows()),
	}
	log := r.opts.logger.With("id", res.ID.String(), "method", res.Method.String())

	for i := range r.opts.runs {
		r.fill(res.X)

		start := time.Now()
		k.MulVec(res.Y, res.X)
		ms := float64(time.Since(start).Nanoseconds()) / 1e6

		res.Times[i] = ms
		log.DebugContext(ctx, "run completed", "run", i+1, "ms", ms)
		if r.opts.onRun != nil {
			r.opts.onRun(i+1, ms)
		}
	}
	return res
}

func (r *Runner) fill(x []float64) {
	for j := range x {
		x[j] = r.rng.Float64()
	}
}
