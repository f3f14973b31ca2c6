// Copyright 2022 Praetorian Security, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runner

import (
	"time"
)

type cliConfig struct {
	host      string
	community string
	port      int
	version   string
	timeout   time.Duration
	retries   int
	bulk      bool

	mount           string
	format          string
	outputFile      string
	overwriteOutput bool
	strict          bool

	configFile string
	verbose    bool
}

// fileConfig is the optional YAML file given with --config.
type fileConfig struct {
	Host      string        `yaml:"host"`
	Community string        `yaml:"community"`
	Port      int           `yaml:"port"`
	Version   string        `yaml:"version"`
	Timeout   time.Duration `yaml:"timeout"`
	Retries   *int          `yaml:"retries"`
	Bulk      *bool         `yaml:"bulk"`
	Mount     string        `yaml:"mount"`
	Format    string        `yaml:"format"`
}
