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

// Package hostinfo describes the machine a benchmark ran on.
package hostinfo

import (
	"os"
	"runtime"
	"strconv"
)

// Info identifies the benchmark host.
type Info struct {
	GOOS      string   `json:"goos" yaml:"goos"`
	GOARCH    string   `json:"goarch" yaml:"goarch"`
	NumCPU    int      `json:"num_cpu" yaml:"num_cpu"`
	GoVersion string   `json:"go_version" yaml:"go_version"`
	Features  []string `json:"cpu_features,omitempty" yaml:"cpu_features,omitempty"`
}

// Get returns the description of the current host.
//
// CPU feature detection can be disabled with SORTBENCH_NO_CPU_FEATURES,
// which keeps reports comparable across machines.
func Get() Info {
	info := Info{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
	if !noFeaturesEnv() {
		info.Features = cpuFeatures()
	}
	return info
}

func noFeaturesEnv() bool {
	val := os.Getenv("SORTBENCH_NO_CPU_FEATURES")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
