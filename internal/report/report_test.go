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

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortstats/bench"
	"github.com/ajroetker/go-sortstats/internal/hostinfo"
	"github.com/ajroetker/go-sortstats/sort"
)

var testHost = hostinfo.Info{GOOS: "linux", GOARCH: "amd64", NumCPU: 8, GoVersion: "go1.24.0"}

func newTestReport(t *testing.T) *Report {
	res, err := bench.RunInput(context.Background(), sort.Algorithms(), []int{64, 34, 25, 12, 22, 11, 90})
	require.NoError(t, err)
	return New(res, testHost)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]struct {
		in          string
		expect      Format
		expectError bool
	}{
		"table":       {in: "table", expect: FormatTable},
		"empty":       {in: "", expect: FormatTable},
		"json":        {in: "JSON", expect: FormatJSON},
		"yaml":        {in: "yaml", expect: FormatYAML},
		"yml":         {in: " yml ", expect: FormatYAML},
		"unsupported": {in: "csv", expectError: true},
	}

	for n, c := range cases {
		t.Run(n, func(t *testing.T) {
			got, err := ParseFormat(c.in)
			if c.expectError {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.expect, got)
			require.Equal(t, c.expect.String(), got.String())
		})
	}
}

func TestNew(t *testing.T) {
	r := newTestReport(t)

	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	require.False(t, r.CreatedAt.IsZero())
	require.Equal(t, testHost, r.Host)
	require.Len(t, r.Rows, len(sort.Algorithms()))

	bubble := r.Rows[0]
	require.Equal(t, "Bubble Sort", bubble.Algorithm)
	require.Equal(t, "custom", bubble.Pattern)
	require.Equal(t, 7, bubble.Size)
	require.Equal(t, 1, bubble.Trials)
	require.EqualValues(t, 21, bubble.Comparisons.Min)
	require.EqualValues(t, 14, bubble.Swaps.Max)
	require.GreaterOrEqual(t, bubble.Seconds.Mean, 0.0)
}

func TestWriteTable(t *testing.T) {
	r := newTestReport(t)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, FormatTable))

	out := buf.String()
	require.Contains(t, out, r.ID)
	require.Contains(t, out, "linux/amd64")
	require.Contains(t, out, "COMPARISONS")
	for _, alg := range sort.Algorithms() {
		require.Contains(t, out, alg.Info().Name)
	}
	require.Contains(t, out, "21")
}

func TestWriteJSON(t *testing.T) {
	r := newTestReport(t)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, r.ID, decoded.ID)
	require.Equal(t, r.Rows, decoded.Rows)
}

func TestWriteYAML(t *testing.T) {
	r := newTestReport(t)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, FormatYAML))
	require.Contains(t, buf.String(), "algorithm: Quick Sort")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, r.ID, decoded.ID)
	require.Len(t, decoded.Rows, len(r.Rows))
	require.Equal(t, r.Rows[4].Comparisons, decoded.Rows[4].Comparisons)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, newTestReport(t).Write(&buf, Format(9)), ErrUnknownFormat)
}

func TestFormatRange(t *testing.T) {
	require.Equal(t, "1,234", formatRange(bench.Range{Min: 1234, Max: 1234, Mean: 1234}))
	require.Equal(t, "1,500 (1,000..2,000)", formatRange(bench.Range{Min: 1000, Max: 2000, Mean: 1500.2}))
}

func TestWriteAlgorithms(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAlgorithms(&buf, sort.Algorithms()))

	out := buf.String()
	require.Contains(t, out, "Heap Sort")
	require.Contains(t, out, "O(n log n)")
	require.Contains(t, out, "Merge Sort: Divides the list")
}
