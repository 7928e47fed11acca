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

// Package sort provides instrumented implementations of classic comparison
// sorts over integer slices.
//
// Every function sorts a copy of its input and returns it together with a
// stats.Snapshot holding the number of comparisons, the number of swaps/moves
// and the wall-clock time of that call. The input slice is never modified.
//
// # Algorithms
//
//   - Bubble: adjacent exchanges, O(n²)
//   - Selection: one exchange per pass, O(n²)
//   - Insertion: leftward shifts, O(n²), O(n) on sorted input
//   - Merge: top-down merge sort, O(n log n), O(n) extra space, stable
//   - Quick: Lomuto partition with the last element as pivot, O(n log n)
//     average, O(n²) worst case
//   - Heap: max-heap extraction, O(n log n)
//
// # Instrumentation
//
// A comparison is counted once per order decision between two elements. A
// swap is counted once per data movement: an exchange of two positions or a
// shift/placement of a single element. The exact points are documented on
// each function, and are stable so counts can be compared across algorithms
// and across runs.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortstats/sort"
//
//	sorted, snap := sort.Quick([]int{64, 34, 25, 12, 22, 11, 90})
//	fmt.Println(sorted, snap.Comparisons, snap.Swaps)
//
// Algorithms can also be selected at runtime:
//
//	alg, err := sort.ParseAlgorithm("merge")
//	sorted, snap, err := sort.Run(alg, data)
//
// Every call owns its statistics, so functions in this package are safe to
// call from multiple goroutines.
package sort
