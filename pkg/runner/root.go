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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chrizzn/snmpdash/pkg/dashboard"
	"github.com/chrizzn/snmpdash/pkg/snmp"
)

var errNothingResolved = errors.New("no dashboard field could be resolved")

// session is the client surface the runner needs from snmp.Dial.
type session interface {
	snmp.Client
	Close() error
}

// Overridden in tests.
var dial = func(ctx context.Context, opts snmp.Options, logger *zap.Logger) (session, error) {
	s, err := snmp.Dial(ctx, opts, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type runner struct {
	config cliConfig
	logger *zap.Logger
}

// NewRootCommand builds the snmpdash command tree.
func NewRootCommand() *cobra.Command {
	r := &runner{}
	defaults := snmp.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "snmpdash [host] [community]",
		Short: "Render a mini dashboard of an SNMP agent",
		Long: `snmpdash queries an SNMP agent for its name, uptime, load averages,
memory and root filesystem usage, and prints them as a small report.

Every value is optional: lookups that fail are shown as n/a and never stop
the rest of the report.`,
		Example: `  snmpdash
  snmpdash 192.0.2.10 public
  snmpdash 192.0.2.10 public --format table --timeout 5s`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.logger != nil {
				_ = r.logger.Sync()
			}
		},
		RunE: r.runDashboard,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&r.config.port, "port", "p", int(defaults.Port), "agent UDP port")
	flags.StringVar(&r.config.version, "version", string(defaults.Version), "SNMP version (1 or 2c)")
	flags.DurationVarP(&r.config.timeout, "timeout", "t", defaults.Timeout, "timeout per request")
	flags.IntVarP(&r.config.retries, "retries", "r", defaults.Retries, "retries per request")
	flags.BoolVar(&r.config.bulk, "bulk", false, "walk tables with GETBULK (v2c only)")
	flags.StringVarP(&r.config.configFile, "config", "c", "", "YAML file with default settings")
	flags.BoolVarP(&r.config.verbose, "verbose", "v", false, "enable debug logging to stderr")

	rootCmd.Flags().StringVarP(&r.config.mount, "mount", "m", dashboard.DefaultMount, "filesystem path reported on the disk line")
	rootCmd.Flags().StringVarP(&r.config.format, "format", "f", string(dashboard.FormatText), "output format (text, table or json)")
	rootCmd.Flags().StringVarP(&r.config.outputFile, "output", "o", "", "write the report to a file")
	rootCmd.Flags().BoolVar(&r.config.overwriteOutput, "overwrite", false, "overwrite an existing output file")
	rootCmd.Flags().BoolVar(&r.config.strict, "strict", false, "exit non-zero when no field could be resolved")

	r.config.host = defaults.Host
	r.config.community = defaults.Community

	rootCmd.AddCommand(newGetCommand(r))
	rootCmd.AddCommand(newProbeCommand(r))
	return rootCmd
}

// setup builds the logger and layers the config file under the flags.
func (r *runner) setup(cmd *cobra.Command) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	config.DisableStacktrace = true
	if r.config.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	r.logger = logger

	if r.config.configFile != "" {
		file, err := loadConfigFile(r.config.configFile)
		if err != nil {
			return err
		}
		file.merge(&r.config, cmd.Flags())
		r.logger.Debug("config file loaded", zap.String("path", r.config.configFile))
	}
	return nil
}

// open dials the agent. A failed dial yields a client whose every lookup
// fails, so the report still renders.
func (r *runner) open(ctx context.Context) (snmp.Client, func()) {
	opts := createSessionOptions(r.config)
	client, err := dial(ctx, opts, r.logger)
	if err != nil {
		r.logger.Warn("could not open SNMP session", zap.String("host", opts.Host), zap.Error(err))
		return offlineClient{err: err}, func() {}
	}
	return client, func() {
		if err := client.Close(); err != nil {
			r.logger.Debug("closing SNMP session", zap.Error(err))
		}
	}
}

func (r *runner) runDashboard(cmd *cobra.Command, args []string) error {
	applyArgs(&r.config, args)
	if err := checkConfig(r.config); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, closeSession := r.open(ctx)
	defer closeSession()

	collector := &dashboard.Collector{
		Client: client,
		Host:   r.config.host,
		Mount:  r.config.mount,
		Logger: r.logger,
	}
	snap := collector.Collect(ctx)

	if err := Report(r.config, snap, cmd.OutOrStdout()); err != nil {
		return err
	}
	if r.config.strict && !snap.Available() {
		return errNothingResolved
	}
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
