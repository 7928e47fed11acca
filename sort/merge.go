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

func mergeSort[T Integer](data []T, rec *stats.Recorder) {
	n := len(data)
	if n <= 1 {
		return
	}

	buf := make([]T, n)
	mergeSortRange(data, buf, 0, n, rec)
	settleAll(rec, n)
}

// mergeSortRange sorts data[lo:hi], using buf[lo:hi] as scratch space.
func mergeSortRange[T Integer](data, buf []T, lo, hi int, rec *stats.Recorder) {
	if hi-lo <= 1 {
		return
	}

	mid := lo + (hi-lo)/2
	mergeSortRange(data, buf, lo, mid, rec)
	mergeSortRange(data, buf, mid, hi, rec)
	mergeRuns(data, buf, lo, mid, hi, rec)
}

// mergeRuns merges the sorted runs data[lo:mid] and data[mid:hi].
// Event indices for the runs are their positions before the merge.
func mergeRuns[T Integer](data, buf []T, lo, mid, hi int, rec *stats.Recorder) {
	copy(buf[lo:hi], data[lo:hi])

	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		rec.Compare(i, j)
		if buf[i] <= buf[j] {
			data[k] = buf[i]
			rec.Move(k, i)
			i++
		} else {
			data[k] = buf[j]
			rec.Move(k, j)
			j++
		}
		k++
	}

	// Tails are placed without a comparison and are not counted.
	k += copy(data[k:], buf[i:mid])
	copy(data[k:hi], buf[j:hi])
}
