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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxCustomValues is the largest custom sequence ParseSequence accepts.
const MaxCustomValues = 100

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrTooFewValues  = errors.New("input must contain at least 2 values")
	ErrTooManyValues = fmt.Errorf("input cannot contain more than %d values", MaxCustomValues)
	ErrInvalidValue  = errors.New("invalid value")
)

// ParseSequence parses a comma-separated list of integers such as
// "64, 34, 25". Surrounding whitespace is ignored.
func ParseSequence(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	fields := strings.Split(s, ",")
	if len(fields) < 2 {
		return nil, ErrTooFewValues
	}
	if len(fields) > MaxCustomValues {
		return nil, ErrTooManyValues
	}

	out := make([]int, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("%w: empty value at position %d", ErrInvalidValue, i+1)
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatSequence is the inverse of ParseSequence.
func FormatSequence(data []int) string {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
