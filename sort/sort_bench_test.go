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
	"fmt"
	"math/rand"
	"testing"
)

var benchSizes = []int{100, 1000, 10000}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	for _, alg := range Algorithms() {
		for _, n := range benchSizes {
			if n > 1000 && alg.Info().Average == "O(n²)" {
				continue
			}
			data := generateInts(rng, n, 10000)
			b.Run(fmt.Sprintf("%s/%d", alg, n), func(b *testing.B) {
				var comparisons, swaps int64
				for i := 0; i < b.N; i++ {
					_, snap, _ := Run(alg, data)
					comparisons += snap.Comparisons
					swaps += snap.Swaps
				}
				b.ReportMetric(float64(comparisons)/float64(b.N), "cmp/op")
				b.ReportMetric(float64(swaps)/float64(b.N), "swaps/op")
			})
		}
	}
}
