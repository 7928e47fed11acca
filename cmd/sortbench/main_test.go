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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortstats/bench"
	"github.com/ajroetker/go-sortstats/internal/config"
	"github.com/ajroetker/go-sortstats/internal/report"
	"github.com/ajroetker/go-sortstats/sort"
)

func testConfig() *config.Config {
	return &config.Config{
		Algorithms: []string{"bubble", "merge", "quick"},
		Patterns:   []string{"random", "reversed"},
		Sizes:      []int{0, 8, 32},
		Trials:     2,
		Seed:       1,
		Workers:    1,
		Format:     "json",
	}
}

func TestRun(t *testing.T) {
	cases := map[string]struct {
		mutate      func(cfg *config.Config)
		expectError error
		expect      func(t *testing.T, out string, logs string)
	}{
		"should run suite": {
			mutate: func(cfg *config.Config) {},
			expect: func(t *testing.T, out, logs string) {
				var r report.Report
				require.NoError(t, json.Unmarshal([]byte(out), &r))
				require.Len(t, r.Rows, 2*3*3)
				require.Contains(t, logs, "benchmark finished")
			},
		},
		"should sort custom input": {
			mutate: func(cfg *config.Config) {
				cfg.Input = "64, 34, 25, 12, 22, 11, 90"
				cfg.Format = "yaml"
			},
			expect: func(t *testing.T, out, logs string) {
				require.Contains(t, out, "pattern: custom")
				require.Contains(t, logs, "sorting custom input")
			},
		},
		"should trace custom input": {
			mutate: func(cfg *config.Config) {
				cfg.Input = "3, 1, 2"
				cfg.Trace = true
				cfg.Format = "table"
			},
			expect: func(t *testing.T, out, logs string) {
				require.Contains(t, out, "Merge Sort")
				require.Contains(t, logs, `"event":"compare"`)
				require.Contains(t, logs, "trace finished")
			},
		},
		"should warn about concurrent trials": {
			mutate: func(cfg *config.Config) {
				cfg.Workers = 3
			},
			expect: func(t *testing.T, out, logs string) {
				require.Contains(t, logs, "scheduling noise")
			},
		},
		"should list algorithms": {
			mutate: func(cfg *config.Config) {
				cfg.List = true
				cfg.Format = "bogus"
			},
			expect: func(t *testing.T, out, logs string) {
				require.Contains(t, out, "Heap Sort")
				require.Empty(t, logs)
			},
		},
		"should reject format": {
			mutate:      func(cfg *config.Config) { cfg.Format = "xml" },
			expectError: report.ErrUnknownFormat,
		},
		"should reject custom input": {
			mutate:      func(cfg *config.Config) { cfg.Input = "1" },
			expectError: bench.ErrTooFewValues,
		},
		"should reject algorithm": {
			mutate: func(cfg *config.Config) {
				cfg.Input = "2, 1"
				cfg.Algorithms = []string{"shell"}
			},
			expectError: sort.ErrUnknownAlgorithm,
		},
	}

	for n, c := range cases {
		t.Run(n, func(t *testing.T) {
			cfg := testConfig()
			c.mutate(cfg)

			var out, logs bytes.Buffer
			logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
			err := run(context.Background(), logger, cfg, &out)
			if c.expectError != nil {
				require.ErrorIs(t, err, c.expectError)
				return
			}

			require.NoError(t, err)
			c.expect(t, out.String(), logs.String())
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := run(ctx, zerolog.Nop(), testConfig(), &out)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, out.Len())
}

func TestAlgorithmNames(t *testing.T) {
	got := algorithmNames(sort.Algorithms())
	require.Equal(t, "bubble,selection,insertion,merge,quick,heap", strings.Join(got, ","))
}
