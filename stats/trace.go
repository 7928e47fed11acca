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

// EventKind identifies an instrumentation point.
type EventKind uint8

const (
	// EventCompare is an order decision between I and J.
	EventCompare EventKind = iota

	// EventSwap is an exchange of I and J.
	EventSwap

	// EventMove is a single element written to I from J (J is -1 for an
	// element coming from a scratch buffer).
	EventMove

	// EventSettle marks I as final. J is always -1.
	EventSettle
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCompare:
		return "compare"
	case EventSwap:
		return "swap"
	case EventMove:
		return "move"
	case EventSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// Event is a single instrumentation point emitted by a Recorder.
type Event struct {
	Kind EventKind
	I, J int
}

// Tracer receives events from a Recorder.
type Tracer interface {
	Trace(e Event)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(e Event)

// Trace calls f(e).
func (f TracerFunc) Trace(e Event) {
	f(e)
}

// Log is a Tracer that keeps every event in order.
type Log struct {
	Events []Event
}

// Trace appends e.
func (l *Log) Trace(e Event) {
	l.Events = append(l.Events, e)
}

// Count returns the number of events of the given kind.
func (l *Log) Count(kind EventKind) int {
	n := 0
	for _, e := range l.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
