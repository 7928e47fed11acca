// Copyright 2025 go-sortstats Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"slices"

	"github.com/ajroetker/go-sortstats/stats"
)

// Integer is a constraint for the element types that can be sorted.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Option configures a single sort call.
type Option func(*options)

type options struct {
	tracer stats.Tracer
}

// WithTracer forwards every comparison, swap, move and settle of the call to
// t. Event indices refer to positions in the working copy.
func WithTracer(t stats.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// sortFunc sorts data in place, reporting to rec.
type sortFunc[T Integer] func(data []T, rec *stats.Recorder)

// run resets a fresh recorder, sorts a copy of data with fn and returns the
// copy with the recorder's snapshot.
func run[T Integer](data []T, fn sortFunc[T], opts []Option) ([]T, stats.Snapshot) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var recOpts []stats.Option
	if o.tracer != nil {
		recOpts = append(recOpts, stats.WithTracer(o.tracer))
	}
	rec := stats.New(recOpts...)

	out := slices.Clone(data)
	fn(out, rec)
	return out, rec.Snapshot()
}

// Bubble sorts a copy of data with bubble sort.
//
// Every pass compares each adjacent pair of the unsorted prefix (one
// comparison each, no early exit) and exchanges the pair when the left
// element is greater (one swap each). A slice of n elements always costs
// n(n-1)/2 comparisons.
func Bubble[T Integer](data []T, opts ...Option) ([]T, stats.Snapshot) {
	return run(data, bubbleSort[T], opts)
}

// Selection sorts a copy of data with selection sort.
//
// Each candidate is compared against the current minimum (one comparison
// each). One swap is counted per pass, and only when the minimum was not
// already in place.
func Selection[T Integer](data []T, opts ...Option) ([]T, stats.Snapshot) {
	return run(data, selectionSort[T], opts)
}

// Insertion sorts a copy of data with insertion sort.
//
// While scanning left, the key is compared with its left neighbour (one
// comparison each, stopping at the first neighbour that is not greater) and
// every greater neighbour shifted right counts as one swap.
func Insertion[T Integer](data []T, opts ...Option) ([]T, stats.Snapshot) {
	return run(data, insertionSort[T], opts)
}

// Merge sorts a copy of data with top-down merge sort.
//
// The slice is split at len/2, both halves are sorted recursively and then
// merged. Each head-vs-head test during a merge is one comparison and the
// element it places is one swap; ties take the left run, so the sort is
// stable.
//
// Elements copied from a run after the other one is exhausted are not
// counted as swaps, because no comparison placed them. Swaps therefore equal
// comparisons and undercount the writes merge sort really performs.
func Merge[T Integer](data []T, opts ...Option) ([]T, stats.Snapshot) {
	return run(data, mergeSort[T], opts)
}

// Quick sorts a copy of data with quicksort using Lomuto partitioning.
//
// The pivot is the last element of the range. Each element is compared
// against the pivot (one comparison each); each element smaller than the
// pivot is exchanged with the boundary (one swap each, even when both
// positions coincide) and the final pivot placement is one more swap.
func Quick[T Integer](data []T, opts ...Option) ([]T, stats.Snapshot) {
	return run(data, quickSort[T], opts)
}

// Heap sorts a copy of data with heapsort.
//
// Each child-vs-largest test while sifting down is one comparison. Each
// parent/child exchange while sifting down and each root extraction is one
// swap.
func Heap[T Integer](data []T, opts ...Option) ([]T, stats.Snapshot) {
	return run(data, heapSort[T], opts)
}
