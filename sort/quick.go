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

func quickSort[T Integer](data []T, rec *stats.Recorder) {
	quickSortRange(data, 0, len(data)-1, rec)
}

// quickSortRange sorts data[low:high+1]. It recurses into the smaller
// partition and loops on the larger one, which bounds the stack depth to
// O(log n) even when partitions are maximally unbalanced.
func quickSortRange[T Integer](data []T, low, high int, rec *stats.Recorder) {
	for low < high {
		p := partition(data, low, high, rec)
		rec.Settle(p)

		if p-low < high-p {
			quickSortRange(data, low, p-1, rec)
			low = p + 1
		} else {
			quickSortRange(data, p+1, high, rec)
			high = p - 1
		}
	}
	if low == high {
		rec.Settle(low)
	}
}

// partition rearranges data[low:high+1] around the pivot data[high] and
// returns the pivot's final index.
func partition[T Integer](data []T, low, high int, rec *stats.Recorder) int {
	pivot := data[high]
	boundary := low - 1

	for j := low; j < high; j++ {
		rec.Compare(j, high)
		if data[j] < pivot {
			boundary++
			data[boundary], data[j] = data[j], data[boundary]
			rec.Swap(boundary, j)
		}
	}

	data[boundary+1], data[high] = data[high], data[boundary+1]
	rec.Swap(boundary+1, high)
	return boundary + 1
}
