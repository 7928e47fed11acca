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

// O(n²) sorts. All three work in place with O(1) extra space.

func bubbleSort[T Integer](data []T, rec *stats.Recorder) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			rec.Compare(j, j+1)
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				rec.Swap(j, j+1)
			}
		}
		rec.Settle(n - i - 1)
	}
	if n > 0 {
		rec.Settle(0)
	}
}

func selectionSort[T Integer](data []T, rec *stats.Recorder) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			rec.Compare(j, minIdx)
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}

		if minIdx != i {
			data[i], data[minIdx] = data[minIdx], data[i]
			rec.Swap(i, minIdx)
		}
		rec.Settle(i)
	}
	if n > 0 {
		rec.Settle(n - 1)
	}
}

func insertionSort[T Integer](data []T, rec *stats.Recorder) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1

		// The key logically sits at j+1 while the hole moves left.
		for j >= 0 {
			rec.Compare(j, j+1)
			if data[j] <= key {
				break
			}
			data[j+1] = data[j]
			rec.Move(j+1, j)
			j--
		}
		data[j+1] = key
	}
	settleAll(rec, len(data))
}
