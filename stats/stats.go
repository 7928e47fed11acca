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

package stats

import (
	"fmt"
	"time"
)

// Snapshot is the statistics of a single sort invocation.
type Snapshot struct {
	// Comparisons is the number of element-vs-element order decisions.
	Comparisons int64 `json:"comparisons" yaml:"comparisons"`

	// Swaps is the number of data movements: exchanges of two positions or
	// single-element shifts/placements, as defined by each algorithm.
	Swaps int64 `json:"swaps" yaml:"swaps"`

	// Elapsed is the wall-clock time between Reset and Snapshot.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Seconds returns the elapsed time in seconds.
func (s Snapshot) Seconds() float64 {
	return s.Elapsed.Seconds()
}

// String formats the snapshot with microsecond precision.
func (s Snapshot) String() string {
	return fmt.Sprintf("comparisons=%d swaps=%d time=%.6fs", s.Comparisons, s.Swaps, s.Seconds())
}

// Recorder accumulates comparison and swap counts for one sort invocation.
type Recorder struct {
	comparisons int64
	swaps       int64
	start       time.Time
	tracer      Tracer
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithTracer forwards every instrumentation point to t.
func WithTracer(t Tracer) Option {
	return func(r *Recorder) {
		r.tracer = t
	}
}

// New returns a Recorder that has already been Reset.
func New(opts ...Option) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}
	r.Reset()
	return r
}

// Reset zeroes the counters and restarts the clock.
func (r *Recorder) Reset() {
	r.comparisons = 0
	r.swaps = 0
	r.start = time.Now()
}

// Compare records one order decision between positions i and j.
func (r *Recorder) Compare(i, j int) {
	r.comparisons++
	if r.tracer != nil {
		r.tracer.Trace(Event{Kind: EventCompare, I: i, J: j})
	}
}

// Swap records an exchange of positions i and j.
// Exchanging a position with itself still counts.
func (r *Recorder) Swap(i, j int) {
	r.swaps++
	if r.tracer != nil {
		r.tracer.Trace(Event{Kind: EventSwap, I: i, J: j})
	}
}

// Move records a single element written to dst. src is the position it came
// from, or -1 when it came from outside the slice (e.g. a merge buffer).
// A move counts as a swap.
func (r *Recorder) Move(dst, src int) {
	r.swaps++
	if r.tracer != nil {
		r.tracer.Trace(Event{Kind: EventMove, I: dst, J: src})
	}
}

// Settle marks position i as holding its final value. It is not counted.
func (r *Recorder) Settle(i int) {
	if r.tracer != nil {
		r.tracer.Trace(Event{Kind: EventSettle, I: i, J: -1})
	}
}

// Comparisons returns the comparisons recorded since the last Reset.
func (r *Recorder) Comparisons() int64 {
	return r.comparisons
}

// Swaps returns the swaps recorded since the last Reset.
func (r *Recorder) Swaps() int64 {
	return r.swaps
}

// Elapsed returns the time since the last Reset.
func (r *Recorder) Elapsed() time.Duration {
	// time.Since uses the monotonic clock reading, so it never goes negative.
	return time.Since(r.start)
}

// Snapshot returns the current counters and elapsed time.
func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{
		Comparisons: r.comparisons,
		Swaps:       r.swaps,
		Elapsed:     r.Elapsed(),
	}
}
