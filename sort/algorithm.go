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
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-sortstats/stats"
)

// ErrUnknownAlgorithm is returned for an algorithm name or value that is not
// implemented by this package.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Algorithm identifies one of the sorting strategies.
type Algorithm int

const (
	// AlgoBubble selects Bubble.
	AlgoBubble Algorithm = iota

	// AlgoSelection selects Selection.
	AlgoSelection

	// AlgoInsertion selects Insertion.
	AlgoInsertion

	// AlgoMerge selects Merge.
	AlgoMerge

	// AlgoQuick selects Quick.
	AlgoQuick

	// AlgoHeap selects Heap.
	AlgoHeap
)

// Algorithms returns every algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBubble, AlgoSelection, AlgoInsertion, AlgoMerge, AlgoQuick, AlgoHeap}
}

// String returns the short name of the algorithm, as accepted by
// ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoBubble:
		return "bubble"
	case AlgoSelection:
		return "selection"
	case AlgoInsertion:
		return "insertion"
	case AlgoMerge:
		return "merge"
	case AlgoQuick:
		return "quick"
	case AlgoHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a.Info().Name == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// ParseAlgorithm resolves an algorithm by name. Matching is case-insensitive
// and accepts the short name ("quick"), the display name ("Quick Sort") and
// separated forms ("quick-sort", "quick_sort", "quicksort").
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, sep := range []string{" ", "-", "_"} {
		key = strings.ReplaceAll(key, sep, "")
	}
	key = strings.TrimSuffix(key, "sort")

	for _, alg := range Algorithms() {
		if alg.String() == key {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Info describes an algorithm's characteristics.
type Info struct {
	Name        string
	Description string
	Best        string
	Average     string
	Worst       string
	Space       string
	Stable      bool
}

var algorithmInfo = map[Algorithm]Info{
	AlgoBubble: {
		Name:        "Bubble Sort",
		Description: "Repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.",
		Best:        "O(n²)",
		Average:     "O(n²)",
		Worst:       "O(n²)",
		Space:       "O(1)",
		Stable:      true,
	},
	AlgoSelection: {
		Name:        "Selection Sort",
		Description: "Finds the minimum element of the unsorted part and places it at its beginning, then repeats for the remainder.",
		Best:        "O(n²)",
		Average:     "O(n²)",
		Worst:       "O(n²)",
		Space:       "O(1)",
		Stable:      false,
	},
	AlgoInsertion: {
		Name:        "Insertion Sort",
		Description: "Builds the sorted result one element at a time, shifting larger elements right to insert each one.",
		Best:        "O(n)",
		Average:     "O(n²)",
		Worst:       "O(n²)",
		Space:       "O(1)",
		Stable:      true,
	},
	AlgoMerge: {
		Name:        "Merge Sort",
		Description: "Divides the list into halves, sorts them recursively, then merges the sorted halves.",
		Best:        "O(n log n)",
		Average:     "O(n log n)",
		Worst:       "O(n log n)",
		Space:       "O(n)",
		Stable:      true,
	},
	AlgoQuick: {
		Name:        "Quick Sort",
		Description: "Partitions the list around its last element as pivot, then sorts both partitions recursively.",
		Best:        "O(n log n)",
		Average:     "O(n log n)",
		Worst:       "O(n²)",
		Space:       "O(log n)",
		Stable:      false,
	},
	AlgoHeap: {
		Name:        "Heap Sort",
		Description: "Builds a max heap, then repeatedly moves the maximum to the end of the unsorted part.",
		Best:        "O(n log n)",
		Average:     "O(n log n)",
		Worst:       "O(n log n)",
		Space:       "O(1)",
		Stable:      false,
	},
}

// Info returns the description of a. The zero Info is returned for an
// unknown algorithm.
func (a Algorithm) Info() Info {
	return algorithmInfo[a]
}

// Run sorts a copy of data with the selected algorithm.
func Run[T Integer](alg Algorithm, data []T, opts ...Option) ([]T, stats.Snapshot, error) {
	fn, err := sorterFor[T](alg)
	if err != nil {
		return nil, stats.Snapshot{}, err
	}
	out, snap := run(data, fn, opts)
	return out, snap, nil
}

func sorterFor[T Integer](alg Algorithm) (sortFunc[T], error) {
	switch alg {
	case AlgoBubble:
		return bubbleSort[T], nil
	case AlgoSelection:
		return selectionSort[T], nil
	case AlgoInsertion:
		return insertionSort[T], nil
	case AlgoMerge:
		return mergeSort[T], nil
	case AlgoQuick:
		return quickSort[T], nil
	case AlgoHeap:
		return heapSort[T], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}
