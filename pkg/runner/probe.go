package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chrizzn/snmpdash/pkg/snmp"
)

// Overridden in tests.
var probe = snmp.Probe

func newProbeCommand(r *runner) *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   "probe [host] [community]",
		Short: "Detect the SNMP version an agent answers and print its system group",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyArgs(&r.config, args)
			if err := checkConfig(r.config); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info, err := probe(ctx, createSessionOptions(r.config), r.logger)
			if err != nil {
				r.logger.Debug("probe failed", zap.String("host", r.config.host), zap.Error(err))
				return fmt.Errorf("%s does not answer SNMP v1 or v2c: %w", r.config.host, err)
			}

			out := cmd.OutOrStdout()
			if outputJSON {
				return json.NewEncoder(out).Encode(info)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.SetTitle(r.config.host)
			tw.AppendRows([]table.Row{
				{"version", string(info.Version)},
				{"sysDescr", info.SysDescr},
				{"sysObjectID", info.SysObjectID},
				{"sysName", info.SysName},
				{"sysLocation", info.SysLocation},
				{"sysContact", info.SysContact},
			})
			tw.SetStyle(table.StyleLight)
			tw.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "print the result as JSON")
	return cmd
}
