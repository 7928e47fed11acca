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

// Package report renders benchmark results as a table, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortstats/bench"
	"github.com/ajroetker/go-sortstats/internal/hostinfo"
	"github.com/ajroetker/go-sortstats/sort"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown report format")

// Format is an output encoding.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat resolves a format by name ("yml" is accepted for YAML).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Report is a rendered benchmark run.
type Report struct {
	ID        string        `json:"id" yaml:"id"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
	Host      hostinfo.Info `json:"host" yaml:"host"`
	Rows      []Row         `json:"results" yaml:"results"`
}

// Row is the summary of one algorithm on one input case.
type Row struct {
	Algorithm   string      `json:"algorithm" yaml:"algorithm"`
	Pattern     string      `json:"pattern" yaml:"pattern"`
	Size        int         `json:"size" yaml:"size"`
	Trials      int         `json:"trials" yaml:"trials"`
	Comparisons bench.Range `json:"comparisons" yaml:"comparisons"`
	Swaps       bench.Range `json:"swaps" yaml:"swaps"`
	Seconds     Seconds     `json:"seconds" yaml:"seconds"`
}

// Seconds is an elapsed-time range in seconds.
type Seconds struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Mean float64 `json:"mean" yaml:"mean"`
}

// New builds a report from res.
func New(res *bench.Result, host hostinfo.Info) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Host:      host,
		Rows:      make([]Row, 0, len(res.Summaries)),
	}
	for _, s := range res.Summaries {
		r.Rows = append(r.Rows, Row{
			Algorithm:   s.Algorithm.Info().Name,
			Pattern:     s.Pattern.String(),
			Size:        s.Size,
			Trials:      s.Trials,
			Comparisons: s.Comparisons,
			Swaps:       s.Swaps,
			Seconds: Seconds{
				Min:  s.Elapsed.Min.Seconds(),
				Max:  s.Elapsed.Max.Seconds(),
				Mean: s.Elapsed.Mean.Seconds(),
			},
		})
	}
	return r
}

// Write encodes r to w in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatTable:
		return r.writeTable(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

func (r *Report) writeTable(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ALGORITHM", "PATTERN", "SIZE", "TRIALS", "COMPARISONS", "SWAPS", "TIME (s)").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, row := range r.Rows {
		t.Row(
			row.Algorithm,
			row.Pattern,
			humanize.Comma(int64(row.Size)),
			fmt.Sprint(row.Trials),
			formatRange(row.Comparisons),
			formatRange(row.Swaps),
			fmt.Sprintf("%.6f", row.Seconds.Mean),
		)
	}

	_, err := fmt.Fprintf(w, "run %s on %s/%s (%d CPUs, %s)\n%s\n",
		r.ID, r.Host.GOOS, r.Host.GOARCH, r.Host.NumCPU, r.Host.GoVersion, t.Render())
	return err
}

// formatRange prints a single value when every trial agreed, and the mean
// followed by the spread otherwise.
func formatRange(rg bench.Range) string {
	if rg.Min == rg.Max {
		return humanize.Comma(rg.Min)
	}
	return fmt.Sprintf("%s (%s..%s)",
		humanize.Comma(int64(math.Round(rg.Mean))), humanize.Comma(rg.Min), humanize.Comma(rg.Max))
}

// WriteAlgorithms describes algs as a table followed by their descriptions.
func WriteAlgorithms(w io.Writer, algs []sort.Algorithm) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "KEY", "BEST", "AVERAGE", "WORST", "SPACE", "STABLE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	var desc strings.Builder
	for _, alg := range algs {
		info := alg.Info()
		stable := "no"
		if info.Stable {
			stable = "yes"
		}
		t.Row(info.Name, alg.String(), info.Best, info.Average, info.Worst, info.Space, stable)
		fmt.Fprintf(&desc, "%s: %s\n", info.Name, info.Description)
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s", t.Render(), desc.String())
	return err
}
