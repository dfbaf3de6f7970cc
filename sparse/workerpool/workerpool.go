// Copyright 2026 The spmvbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent fork-join worker pool for the
// SpMV kernels. A Pool is created once with a fixed number of workers and
// reused for every kernel call, so goroutine spawn cost stays out of the
// timed region.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	sched := workerpool.Schedule{Kind: workerpool.Guided}
//	for range runs {
//	    pool.For(rows, sched, func(start, end int) {
//	        processRows(start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// loops. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents one worker's share of a parallel loop.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// For executes fn over [0, n) split according to sched and blocks until
// every range has been processed. Ranges passed to fn are disjoint and
// cover [0, n) exactly once.
func (p *Pool) For(n int, sched Schedule, fn func(start, end int)) {
	switch sched.Kind {
	case Dynamic:
		p.ParallelForDynamic(n, sched.Chunk, fn)
	case Guided:
		p.ParallelForGuided(n, sched.Chunk, fn)
	default:
		if sched.Chunk > 0 {
			p.ParallelForStrided(n, sched.Chunk, fn)
			return
		}
		p.ParallelFor(n, fn)
	}
}

// sequential reports whether a loop of the given units should run on the caller.
func (p *Pool) sequential(units int) bool {
	return p.closed.Load() || min(p.numWorkers, units) <= 1
}

// run hands one closure to each of workers and waits for all of them.
func (p *Pool) run(workers int, body func(w int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{
			fn: func() {
				body(w)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes one contiguous range of indices.
// Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunkSize := (n + workers - 1) / workers

	p.run(workers, func(w int) {
		start := w * chunkSize
		if start >= n {
			return
		}
		fn(start, min(start+chunkSize, n))
	})
}

// ParallelForStrided splits [0, n) into chunks of chunkSize and deals them
// to workers round-robin: worker w gets chunks w, w+workers, ...
func (p *Pool) ParallelForStrided(n, chunkSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunkSize = max(chunkSize, 1)
	numChunks := (n + chunkSize - 1) / chunkSize
	if p.sequential(numChunks) {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, numChunks)
	p.run(workers, func(w int) {
		for c := w; c < numChunks; c += workers {
			start := c * chunkSize
			fn(start, min(start+chunkSize, n))
		}
	})
}

// ParallelForDynamic executes fn for batches of indices using atomic work
// stealing. Each grab takes chunkSize items (1 if chunkSize <= 0).
func (p *Pool) ParallelForDynamic(n, chunkSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunkSize = max(chunkSize, 1)
	numChunks := (n + chunkSize - 1) / chunkSize
	if p.sequential(numChunks) {
		fn(0, n)
		return
	}

	var nextChunk atomic.Int64
	p.run(min(p.numWorkers, numChunks), func(int) {
		for {
			start := int(nextChunk.Add(1)-1) * chunkSize
			if start >= n {
				return
			}
			fn(start, min(start+chunkSize, n))
		}
	})
}

// ParallelForGuided executes fn using atomic work stealing with shrinking
// grabs: each grab takes the remaining count divided by the number of
// workers, but never fewer than minChunk items (1 if minChunk <= 0).
func (p *Pool) ParallelForGuided(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	minChunk = max(minChunk, 1)
	if p.sequential((n + minChunk - 1) / minChunk) {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			start := int(next.Load())
			if start >= n {
				return
			}
			size := max((n-start+workers-1)/workers, minChunk)
			end := min(start+size, n)
			if next.CompareAndSwap(int64(start), int64(end)) {
				fn(start, end)
			}
		}
	})
}
