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

// Package bench runs the instrumented sorts over generated or user-supplied
// inputs and aggregates their statistics.
package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// Value range of generated inputs.
const (
	MinValue = 20
	MaxValue = 400
)

// fewUniqueValues is the number of distinct values in a FewUnique input.
const fewUniqueValues = 5

var (
	// ErrUnknownPattern is returned for an unrecognized pattern name.
	ErrUnknownPattern = errors.New("unknown input pattern")

	// ErrNotGenerated is returned when asked to generate a Custom input.
	ErrNotGenerated = errors.New("pattern cannot be generated")
)

// Pattern is the shape of a generated input.
type Pattern int

const (
	// Random values drawn uniformly from [MinValue, MaxValue).
	Random Pattern = iota

	// Sorted is Random in ascending order.
	Sorted

	// Reversed is Random in descending order.
	Reversed

	// FewUnique draws from only a handful of distinct values.
	FewUnique

	// NearlySorted is Sorted with about a tenth of the elements displaced
	// by one position.
	NearlySorted

	// Custom marks an input supplied by the caller.
	Custom
)

// Patterns returns every generated pattern.
func Patterns() []Pattern {
	return []Pattern{Random, Sorted, Reversed, FewUnique, NearlySorted}
}

func (p Pattern) String() string {
	switch p {
	case Random:
		return "random"
	case Sorted:
		return "sorted"
	case Reversed:
		return "reversed"
	case FewUnique:
		return "few-unique"
	case NearlySorted:
		return "nearly-sorted"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	v, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePattern resolves a pattern by name. "_" and "-" are interchangeable.
func ParsePattern(name string) (Pattern, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, p := range append(Patterns(), Custom) {
		if p.String() == key {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Generate returns n values shaped by p.
func Generate(p Pattern, n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	data := make([]int, n)
	switch p {
	case Random, Sorted, Reversed, NearlySorted:
		for i := range data {
			data[i] = MinValue + rng.Intn(MaxValue-MinValue)
		}
	case FewUnique:
		step := (MaxValue - MinValue) / fewUniqueValues
		for i := range data {
			data[i] = MinValue + rng.Intn(fewUniqueValues)*step
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotGenerated, p)
	}

	switch p {
	case Sorted:
		slices.Sort(data)
	case Reversed:
		slices.Sort(data)
		slices.Reverse(data)
	case NearlySorted:
		slices.Sort(data)
		for range max(n/10, 1) {
			if n < 2 {
				break
			}
			i := rng.Intn(n - 1)
			data[i], data[i+1] = data[i+1], data[i]
		}
	}
	return data, nil
}
