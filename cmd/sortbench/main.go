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

// Command sortbench compares the instrumented sorting algorithms on generated
// or custom inputs and prints a report.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ajroetker/go-sortstats/bench"
	"github.com/ajroetker/go-sortstats/internal/config"
	"github.com/ajroetker/go-sortstats/internal/hostinfo"
	"github.com/ajroetker/go-sortstats/internal/report"
	"github.com/ajroetker/go-sortstats/sort"
	"github.com/ajroetker/go-sortstats/stats"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, closer, err := cfg.Log.NewLogger()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger")
	}

	defer closer.Close()
	log.Logger = logger

	ctx, cancel := config.NewApplicationContext()
	defer cancel()

	if err := run(ctx, logger, cfg, os.Stdout); err != nil {
		cancel()
		_ = closer.Close()
		logger.Fatal().Err(err).Msg("benchmark failed")
	}
}

func run(ctx context.Context, logger zerolog.Logger, cfg *config.Config, out io.Writer) error {
	if cfg.List {
		return report.WriteAlgorithms(out, sort.Algorithms())
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	data, custom, err := cfg.CustomInput()
	if err != nil {
		return err
	}

	var res *bench.Result
	if custom {
		res, err = runCustom(ctx, logger, cfg, data)
	} else {
		res, err = runSuite(ctx, logger, cfg)
	}
	if err != nil {
		return err
	}

	return report.New(res, hostinfo.Get()).Write(out, format)
}

func runCustom(ctx context.Context, logger zerolog.Logger, cfg *config.Config, data []int) (*bench.Result, error) {
	algs, err := cfg.ParseAlgorithms()
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("input", bench.FormatSequence(data)).
		Strs("algorithms", algorithmNames(algs)).
		Msg("sorting custom input")

	if cfg.Trace {
		traceInput(logger, algs, data)
	}

	return bench.RunInput(ctx, algs, data)
}

func runSuite(ctx context.Context, logger zerolog.Logger, cfg *config.Config) (*bench.Result, error) {
	suite, err := cfg.Suite()
	if err != nil {
		return nil, err
	}

	if suite.Workers > 1 {
		logger.Warn().
			Int("workers", suite.Workers).
			Msg("trials run concurrently, elapsed times include scheduling noise")
	}
	if cfg.Trace {
		logger.Warn().Msg("tracing only applies to a custom input, ignoring")
	}

	suite.Progress = func(done, total int) {
		logger.Debug().Int("done", done).Int("total", total).Msg("trial finished")
	}

	logger.Info().
		Strs("algorithms", algorithmNames(suite.Algorithms)).
		Ints("sizes", suite.Sizes).
		Int("trials", suite.Trials).
		Int64("seed", suite.Seed).
		Msg("running benchmark suite")

	start := time.Now()
	res, err := suite.Run(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Dur("took", time.Since(start)).
		Int("measurements", len(res.Measurements)).
		Msg("benchmark finished")
	return res, nil
}

// traceInput logs every instrumentation event of each algorithm on data.
func traceInput(logger zerolog.Logger, algs []sort.Algorithm, data []int) {
	for _, alg := range algs {
		l := logger.With().Str("algorithm", alg.String()).Logger()
		tracer := stats.TracerFunc(func(e stats.Event) {
			l.Debug().Stringer("event", e.Kind).Int("i", e.I).Int("j", e.J).Msg("step")
		})

		sorted, snap, err := sort.Run(alg, data, sort.WithTracer(tracer))
		if err != nil {
			l.Error().Err(err).Msg("trace failed")
			continue
		}
		l.Debug().
			Ints("sorted", sorted).
			Int64("comparisons", snap.Comparisons).
			Int64("swaps", snap.Swaps).
			Msg("trace finished")
	}
}

func algorithmNames(algs []sort.Algorithm) []string {
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = alg.String()
	}
	return names
}
