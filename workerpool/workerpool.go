// Copyright 2025 The go-sortstats Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for running
// independent jobs, such as benchmark trials, on a fixed set of goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ForEach(ctx, len(jobs), func(i int) error {
//	    return jobs[i].Run()
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many batches.
// Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents one worker's share of a batch.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

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

// Close shuts down the worker pool. Pending batches complete first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach calls fn for every index in [0, n), handing out indices through an
// atomic counter so slow jobs don't hold back the others. It blocks until all
// started jobs return.
//
// No new job starts once ctx is done or a job has failed. The first job error
// is returned; otherwise ctx.Err() is returned if the batch was cut short.
//
// With a single worker, or after Close, jobs run sequentially on the calling
// goroutine in index order.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		nextIdx  atomic.Int64
		failed   atomic.Bool
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !failed.Load() && ctx.Err() == nil {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					if err := fn(idx); err != nil {
						errOnce.Do(func() {
							firstErr = err
						})
						failed.Store(true)
						return
					}
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	if nextIdx.Load() < int64(n) {
		return ctx.Err()
	}
	return nil
}
