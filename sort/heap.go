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

import "github.com/ajroetker/go-sortstats/stats"

func heapSort[T Integer](data []T, rec *stats.Recorder) {
	n := len(data)
	if n <= 1 {
		settleAll(rec, n)
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, rec)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		rec.Swap(0, i)
		rec.Settle(i)
		siftDown(data, 0, i, rec)
	}
	rec.Settle(0)
}

func siftDown[T Integer](data []T, i, n int, rec *stats.Recorder) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n {
			rec.Compare(left, largest)
			if data[left] > data[largest] {
				largest = left
			}
		}
		if right < n {
			rec.Compare(right, largest)
			if data[right] > data[largest] {
				largest = right
			}
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		rec.Swap(i, largest)
		i = largest
	}
}
