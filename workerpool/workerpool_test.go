// Copyright 2025 The go-sortstats Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestForEach(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 16} {
		pool := New(workers)

		n := 100
		results := make([]int, n)
		err := pool.ForEach(context.Background(), n, func(i int) error {
			results[i] = i * 2
			return nil
		})
		pool.Close()

		if err != nil {
			t.Fatalf("workers=%d: ForEach() error = %v", workers, err)
		}
		for i := 0; i < n; i++ {
			if results[i] != i*2 {
				t.Errorf("workers=%d: results[%d] = %d, want %d", workers, i, results[i], i*2)
			}
		}
	}
}

func TestForEachZero(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	if err := pool.ForEach(context.Background(), 0, func(int) error {
		called = true
		return nil
	}); err != nil {
		t.Errorf("ForEach(0) error = %v", err)
	}
	if called {
		t.Error("ForEach(0) should not call fn")
	}
}

func TestForEachError(t *testing.T) {
	errBoom := errors.New("boom")
	for _, workers := range []int{1, 4} {
		pool := New(workers)

		var calls atomic.Int32
		err := pool.ForEach(context.Background(), 1000, func(i int) error {
			calls.Add(1)
			if i == 10 {
				return errBoom
			}
			return nil
		})
		pool.Close()

		if !errors.Is(err, errBoom) {
			t.Errorf("workers=%d: ForEach() error = %v, want %v", workers, err, errBoom)
		}
		if workers == 1 && calls.Load() != 11 {
			t.Errorf("sequential ForEach() made %d calls, want 11", calls.Load())
		}
	}
}

func TestForEachCanceled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	err := pool.ForEach(ctx, 10000, func(i int) error {
		if calls.Add(1) == 5 {
			cancel()
		}
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("ForEach() error = %v, want context.Canceled", err)
	}
	if calls.Load() == 10000 {
		t.Error("ForEach() did not stop after cancellation")
	}
}

func TestForEachAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Double close should be safe

	var order []int
	err := pool.ForEach(context.Background(), 5, func(i int) error {
		order = append(order, i)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("sequential fallback order = %v", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("ForEach() after Close ran %d jobs, want 5", len(order))
	}
}

func TestReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for iter := range 100 {
		var sum atomic.Int64
		if err := pool.ForEach(context.Background(), 50, func(i int) error {
			sum.Add(int64(i))
			return nil
		}); err != nil {
			t.Fatal(err)
		}
		if sum.Load() != 1225 {
			t.Fatalf("iteration %d: sum = %d, want 1225", iter, sum.Load())
		}
	}
}
