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
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type LogConfig struct {
	Level zerolog.Level `env:"LEVEL" flag:"level" default:"info" usage:"Log level (debug,info,warn,error)"`
	File  string        `env:"FILE" flag:"file" usage:"Log file path"`
}

// NewLogger builds a console logger on stderr, teeing to File when set.
// Stdout is left to the report.
func (cfg LogConfig) NewLogger() (zerolog.Logger, io.Closer, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	conWriter := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
	})
	if cfg.File == "" {
		return buildLogger(cfg.Level, conWriter), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	w := io.MultiWriter(conWriter, f)
	return buildLogger(cfg.Level, w), f, nil
}

func buildLogger(level zerolog.Level, writer io.Writer) zerolog.Logger {
	return zerolog.New(writer).Level(level).With().Str("context", "sortbench").Timestamp().Logger()
}
