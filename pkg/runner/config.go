package runner

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func loadConfigFile(filename string) (*fileConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// merge copies values from the file into config for every flag that was
// not set on the command line.
func (f *fileConfig) merge(config *cliConfig, flags *pflag.FlagSet) {
	unset := func(name string) bool {
		flag := flags.Lookup(name)
		return flag == nil || !flag.Changed
	}
	if f.Host != "" {
		config.host = f.Host
	}
	if f.Community != "" {
		config.community = f.Community
	}
	if f.Port != 0 && unset("port") {
		config.port = f.Port
	}
	if f.Version != "" && unset("version") {
		config.version = f.Version
	}
	if f.Timeout != 0 && unset("timeout") {
		config.timeout = f.Timeout
	}
	if f.Retries != nil && unset("retries") {
		config.retries = *f.Retries
	}
	if f.Bulk != nil && unset("bulk") {
		config.bulk = *f.Bulk
	}
	if f.Mount != "" && unset("mount") {
		config.mount = f.Mount
	}
	if f.Format != "" && unset("format") {
		config.format = f.Format
	}
}
