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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigdotenv"
	"github.com/cristalhq/aconfig/aconfigtoml"

	"github.com/ajroetker/go-sortstats/bench"
	"github.com/ajroetker/go-sortstats/sort"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SORTBENCH"

// ErrHelp is returned by Load when usage was requested with -h or -help.
var ErrHelp = errors.New("help requested")

type Config struct {
	Algorithms []string `env:"ALGORITHMS" flag:"algorithms" default:"bubble,selection,insertion,merge,quick,heap" usage:"Comma-separated algorithms to run"`
	Patterns   []string `env:"PATTERNS" flag:"patterns" default:"random" usage:"Comma-separated input patterns (random,sorted,reversed,few-unique,nearly-sorted)"`
	Sizes      []int    `env:"SIZES" flag:"sizes" default:"10,100,1000" usage:"Comma-separated input sizes"`
	Trials     int      `env:"TRIALS" flag:"trials" default:"3" usage:"Inputs generated per pattern and size"`
	Seed       int64    `env:"SEED" flag:"seed" default:"1" usage:"Seed for generated inputs"`
	Workers    int      `env:"WORKERS" flag:"workers" default:"1" usage:"Trials run concurrently"`
	Input      string   `env:"INPUT" flag:"input" usage:"Custom comma-separated sequence; replaces generated inputs"`
	Format     string   `env:"FORMAT" flag:"format" default:"table" usage:"Report format (table,json,yaml)"`
	Trace      bool     `env:"TRACE" flag:"trace" usage:"Log every comparison and swap of a custom input at debug level"`
	List       bool     `env:"LIST" flag:"list" usage:"Describe the algorithms and exit"`
	Log        LogConfig
}

// Load reads the configuration from defaults, an optional -config file
// (.conf as TOML, .env as dotenv), SORTBENCH_* environment variables and
// args, in increasing priority.
func Load(args []string) (*Config, error) {
	cfg := new(Config)

	loader := aconfig.LoaderFor(cfg, aconfig.Config{
		AllowUnknownFields: false,
		AllowUnknownEnvs:   true,
		AllowUnknownFlags:  false,
		EnvPrefix:          EnvPrefix,
		FlagDelimiter:      "-",
		DontGenerateTags:   false,
		FailOnFileNotFound: false,
		FileFlag:           "config",
		Args:               args,
		FileDecoders: map[string]aconfig.FileDecoder{
			".conf": aconfigtoml.New(),
			".env":  aconfigdotenv.New(),
		},
	})

	if err := loader.Load(); err != nil {
		if isHelpError(err) {
			return nil, ErrHelp
		}

		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

func isHelpError(err error) bool {
	if err == nil {
		return false
	}

	if u := errors.Unwrap(err); u != nil {
		err = u
	}

	return strings.HasSuffix(err.Error(), "help requested")
}

// ParseAlgorithms resolves the configured algorithm names.
func (cfg *Config) ParseAlgorithms() ([]sort.Algorithm, error) {
	algs := make([]sort.Algorithm, 0, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		if strings.TrimSpace(name) == "" {
			continue
		}
		alg, err := sort.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	if len(algs) == 0 {
		return nil, bench.ErrNoAlgorithms
	}
	return algs, nil
}

// Suite builds and validates the benchmark suite described by cfg.
func (cfg *Config) Suite() (bench.Suite, error) {
	algs, err := cfg.ParseAlgorithms()
	if err != nil {
		return bench.Suite{}, err
	}

	patterns := make([]bench.Pattern, 0, len(cfg.Patterns))
	for _, name := range cfg.Patterns {
		if strings.TrimSpace(name) == "" {
			continue
		}
		p, err := bench.ParsePattern(name)
		if err != nil {
			return bench.Suite{}, err
		}
		patterns = append(patterns, p)
	}

	suite := bench.Suite{
		Algorithms: algs,
		Patterns:   patterns,
		Sizes:      cfg.Sizes,
		Trials:     cfg.Trials,
		Seed:       cfg.Seed,
		Workers:    cfg.Workers,
	}
	if err := suite.Validate(); err != nil {
		return bench.Suite{}, fmt.Errorf("invalid benchmark settings: %w", err)
	}
	return suite, nil
}

// CustomInput parses Input. ok is false when no custom input was given.
func (cfg *Config) CustomInput() (data []int, ok bool, err error) {
	if strings.TrimSpace(cfg.Input) == "" {
		return nil, false, nil
	}

	data, err = bench.ParseSequence(cfg.Input)
	if err != nil {
		return nil, true, fmt.Errorf("invalid custom input: %w", err)
	}
	return data, true, nil
}
