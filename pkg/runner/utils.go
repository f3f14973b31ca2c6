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
	"errors"
	"fmt"
	"os"

	"github.com/chrizzn/snmpdash/pkg/dashboard"
	"github.com/chrizzn/snmpdash/pkg/snmp"
)

func checkConfig(config cliConfig) error {
	if len(config.outputFile) > 0 && !config.overwriteOutput {
		if _, err := os.Stat(config.outputFile); err == nil {
			return fmt.Errorf("output file %s already exists (use --overwrite)", config.outputFile)
		}
	}
	if config.host == "" {
		return errors.New("host must not be empty")
	}
	if config.port < 1 || config.port > 65535 {
		return fmt.Errorf("port %d out of range", config.port)
	}
	if config.timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", config.timeout)
	}
	if config.retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", config.retries)
	}
	if _, err := snmp.ParseVersion(config.version); err != nil {
		return err
	}
	if _, err := dashboard.ParseFormat(config.format); err != nil {
		return err
	}
	return nil
}

func createSessionOptions(config cliConfig) snmp.Options {
	version, _ := snmp.ParseVersion(config.version)
	return snmp.Options{
		Host:      config.host,
		Port:      uint16(config.port),
		Community: config.community,
		Version:   version,
		Timeout:   config.timeout,
		Retries:   config.retries,
		Bulk:      config.bulk,
	}
}

// applyArgs fills host and community from the optional positional arguments.
func applyArgs(config *cliConfig, args []string) {
	if len(args) > 0 {
		config.host = args[0]
	}
	if len(args) > 1 {
		config.community = args[1]
	}
}
