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

// Package stats counts the work done by an instrumented sorting algorithm.
//
// A Recorder accumulates element comparisons and element swaps/moves and
// measures wall-clock time from its last Reset. Sorting routines create one
// Recorder per call and return its Snapshot by value, so statistics never leak
// from one call into the next and concurrent calls share no state.
//
// # Basic Usage
//
//	rec := stats.New()
//	for j := 0; j < n-1; j++ {
//	    rec.Compare(j, j+1)
//	    if data[j] > data[j+1] {
//	        data[j], data[j+1] = data[j+1], data[j]
//	        rec.Swap(j, j+1)
//	    }
//	}
//	snap := rec.Snapshot()
//
// # Tracing
//
// A Recorder can forward every instrumentation point to a Tracer. Event
// indices refer to positions in the slice being sorted, which lets a caller
// replay an algorithm step by step:
//
//	var log stats.Log
//	rec := stats.New(stats.WithTracer(&log))
//
// A Recorder is not safe for concurrent use.
package stats
