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

package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-sortstats/sort"
	"github.com/ajroetker/go-sortstats/stats"
	"github.com/ajroetker/go-sortstats/workerpool"
)

var (
	ErrNoAlgorithms = errors.New("no algorithms selected")
	ErrNoPatterns   = errors.New("no input patterns selected")
	ErrNoSizes      = errors.New("no input sizes selected")
	ErrInvalidSize  = errors.New("input size must not be negative")
	ErrInvalidTrial = errors.New("trials must be at least 1")
	ErrInvalidPool  = errors.New("workers must not be negative")

	// ErrUnsorted means an algorithm returned a result out of order.
	ErrUnsorted = errors.New("algorithm returned an unsorted result")

	// ErrDisagreement means two algorithms sorted the same input differently.
	ErrDisagreement = errors.New("algorithms disagree on the sorted result")
)

// Suite describes a benchmark: every algorithm runs on Trials inputs for each
// (pattern, size) pair. Within a trial all algorithms see the same input.
type Suite struct {
	Algorithms []sort.Algorithm
	Patterns   []Pattern
	Sizes      []int
	Trials     int

	// Seed makes inputs reproducible. Each trial derives its own generator
	// from Seed and its position, so results don't depend on Workers.
	Seed int64

	// Workers is the number of trials run concurrently. Zero means one.
	// Elapsed times of concurrent trials include scheduling noise.
	Workers int

	// Progress, if set, is called after each trial with the number of
	// finished and total trials. It may be called from several goroutines.
	Progress func(done, total int)
}

// Measurement is the outcome of one algorithm on one trial input.
type Measurement struct {
	Algorithm sort.Algorithm `json:"algorithm" yaml:"algorithm"`
	Pattern   Pattern        `json:"pattern" yaml:"pattern"`
	Size      int            `json:"size" yaml:"size"`
	Trial     int            `json:"trial" yaml:"trial"`
	Stats     stats.Snapshot `json:"stats" yaml:"stats"`
}

// Range aggregates a counter over trials.
type Range struct {
	Min  int64   `json:"min" yaml:"min"`
	Max  int64   `json:"max" yaml:"max"`
	Mean float64 `json:"mean" yaml:"mean"`
}

// DurationRange aggregates elapsed times over trials.
type DurationRange struct {
	Min  time.Duration `json:"min" yaml:"min"`
	Max  time.Duration `json:"max" yaml:"max"`
	Mean time.Duration `json:"mean" yaml:"mean"`
}

// Summary aggregates every trial of one algorithm on one (pattern, size).
type Summary struct {
	Algorithm   sort.Algorithm `json:"algorithm" yaml:"algorithm"`
	Pattern     Pattern        `json:"pattern" yaml:"pattern"`
	Size        int            `json:"size" yaml:"size"`
	Trials      int            `json:"trials" yaml:"trials"`
	Comparisons Range          `json:"comparisons" yaml:"comparisons"`
	Swaps       Range          `json:"swaps" yaml:"swaps"`
	Elapsed     DurationRange  `json:"elapsed" yaml:"elapsed"`
}

// Result holds the raw measurements and their summaries. Summaries are
// ordered by pattern, then size, then algorithm, following the Suite.
type Result struct {
	Measurements []Measurement
	Summaries    []Summary
}

// Validate reports the first problem with s.
func (s Suite) Validate() error {
	switch {
	case len(s.Algorithms) == 0:
		return ErrNoAlgorithms
	case len(s.Patterns) == 0:
		return ErrNoPatterns
	case len(s.Sizes) == 0:
		return ErrNoSizes
	case s.Trials < 1:
		return fmt.Errorf("%w: %d", ErrInvalidTrial, s.Trials)
	case s.Workers < 0:
		return fmt.Errorf("%w: %d", ErrInvalidPool, s.Workers)
	}

	for _, n := range s.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, n)
		}
	}
	for _, alg := range s.Algorithms {
		if alg.Info().Name == "" {
			return fmt.Errorf("%w: %d", sort.ErrUnknownAlgorithm, int(alg))
		}
	}
	for _, p := range s.Patterns {
		if !slices.Contains(Patterns(), p) {
			return fmt.Errorf("%w: %s", ErrNotGenerated, p)
		}
	}
	return nil
}

type benchCase struct {
	pattern Pattern
	size    int
}

// Run executes the suite. It stops early, returning the error, when ctx is
// canceled or an algorithm produces a wrong result.
func (s Suite) Run(ctx context.Context) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cases := make([]benchCase, 0, len(s.Patterns)*len(s.Sizes))
	for _, p := range s.Patterns {
		for _, n := range s.Sizes {
			cases = append(cases, benchCase{pattern: p, size: n})
		}
	}

	numAlgs := len(s.Algorithms)
	total := len(cases) * s.Trials
	measurements := make([]Measurement, total*numAlgs)

	pool := workerpool.New(max(s.Workers, 1))
	defer pool.Close()

	var done atomic.Int64
	err := pool.ForEach(ctx, total, func(job int) error {
		c := cases[job/s.Trials]
		trial := job % s.Trials

		rng := rand.New(rand.NewSource(s.Seed + int64(job)*0x9E3779B9))
		data, err := Generate(c.pattern, c.size, rng)
		if err != nil {
			return err
		}

		// Each job owns its slice of measurements, so no locking is needed.
		out := measurements[job*numAlgs : (job+1)*numAlgs]
		if err := runTrial(s.Algorithms, data, out); err != nil {
			return fmt.Errorf("%s/%d trial %d: %w", c.pattern, c.size, trial, err)
		}
		for i := range out {
			out[i].Pattern = c.pattern
			out[i].Size = c.size
			out[i].Trial = trial
		}

		if s.Progress != nil {
			s.Progress(int(done.Add(1)), total)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Measurements: measurements,
		Summaries:    summarize(measurements, numAlgs, s.Trials),
	}, nil
}

// RunInput runs every algorithm once on data.
func RunInput(ctx context.Context, algs []sort.Algorithm, data []int) (*Result, error) {
	if len(algs) == 0 {
		return nil, ErrNoAlgorithms
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	measurements := make([]Measurement, len(algs))
	if err := runTrial(algs, data, measurements); err != nil {
		return nil, err
	}
	for i := range measurements {
		measurements[i].Pattern = Custom
		measurements[i].Size = len(data)
	}

	return &Result{
		Measurements: measurements,
		Summaries:    summarize(measurements, len(algs), 1),
	}, nil
}

// runTrial sorts data with each algorithm, checks the results and stores
// the statistics in out[i] for algs[i].
func runTrial(algs []sort.Algorithm, data []int, out []Measurement) error {
	var reference []int
	for i, alg := range algs {
		sorted, snap, err := sort.Run(alg, data)
		if err != nil {
			return err
		}
		if !sort.IsSorted(sorted) {
			return fmt.Errorf("%w: %s", ErrUnsorted, alg)
		}
		if reference == nil {
			reference = sorted
		} else if !slices.Equal(reference, sorted) {
			return fmt.Errorf("%w: %s vs %s", ErrDisagreement, algs[0], alg)
		}
		out[i] = Measurement{Algorithm: alg, Stats: snap}
	}
	return nil
}

// summarize folds measurements, laid out as consecutive groups of numAlgs
// per trial and consecutive groups of trials per case, into one Summary per
// case and algorithm.
func summarize(measurements []Measurement, numAlgs, trials int) []Summary {
	perCase := numAlgs * trials
	summaries := make([]Summary, 0, len(measurements)/trials)

	for start := 0; start < len(measurements); start += perCase {
		group := measurements[start : start+perCase]
		for a := range numAlgs {
			first := group[a]
			sum := Summary{
				Algorithm: first.Algorithm,
				Pattern:   first.Pattern,
				Size:      first.Size,
				Trials:    trials,
			}

			var cmpTotal, swapTotal int64
			var elapsedTotal time.Duration
			for t := range trials {
				snap := group[t*numAlgs+a].Stats
				if t == 0 {
					sum.Comparisons = Range{Min: snap.Comparisons, Max: snap.Comparisons}
					sum.Swaps = Range{Min: snap.Swaps, Max: snap.Swaps}
					sum.Elapsed = DurationRange{Min: snap.Elapsed, Max: snap.Elapsed}
				}
				sum.Comparisons.Min = min(sum.Comparisons.Min, snap.Comparisons)
				sum.Comparisons.Max = max(sum.Comparisons.Max, snap.Comparisons)
				sum.Swaps.Min = min(sum.Swaps.Min, snap.Swaps)
				sum.Swaps.Max = max(sum.Swaps.Max, snap.Swaps)
				sum.Elapsed.Min = min(sum.Elapsed.Min, snap.Elapsed)
				sum.Elapsed.Max = max(sum.Elapsed.Max, snap.Elapsed)

				cmpTotal += snap.Comparisons
				swapTotal += snap.Swaps
				elapsedTotal += snap.Elapsed
			}
			sum.Comparisons.Mean = float64(cmpTotal) / float64(trials)
			sum.Swaps.Mean = float64(swapTotal) / float64(trials)
			sum.Elapsed.Mean = elapsedTotal / time.Duration(trials)

			summaries = append(summaries, sum)
		}
	}
	return summaries
}
