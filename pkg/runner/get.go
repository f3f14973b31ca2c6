package runner

import (
	"fmt"
	"iter"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chrizzn/snmpdash/pkg/snmp"
	"github.com/chrizzn/snmpdash/pkg/value"
)

func newGetCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "get <oid> [host] [community]",
		Short: "Fetch a single OID and print it",
		Example: `  snmpdash get 1.3.6.1.2.1.1.5.0
  snmpdash get .1.3.6.1.2.1.1.3.0 192.0.2.10 public`,
		Args: cobra.RangeArgs(1, 3),
		RunE: r.runGet,
	}
}

func (r *runner) runGet(cmd *cobra.Command, args []string) error {
	oid, err := snmp.ParseOID(args[0])
	if err != nil {
		return err
	}
	applyArgs(&r.config, args[1:])
	r.config.outputFile = ""
	if err := checkConfig(r.config); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, closeSession := r.open(ctx)
	defer closeSession()

	out := cmd.OutOrStdout()
	cell, err := client.Get(oid)
	if err != nil {
		fmt.Fprintf(out, "SNMP error: %v\n", err)
		return err
	}
	if cell == nil {
		fmt.Fprintf(out, "Result: %s = No Such Object available on this agent at this OID\n", oid)
		return nil
	}
	text, _ := value.String(cell.Value)
	fmt.Fprintf(out, "Result: %s = %s: %s\n", cell.OID, cell.Type, text)
	return nil
}

// offlineClient stands in for a session that could not be opened.
type offlineClient struct {
	err error
}

func (c offlineClient) Get(oid string) (*snmp.Cell, error) {
	return nil, &snmp.RequestError{Op: "get", OID: oid, WrappedError: c.err}
}

func (c offlineClient) Walk(prefix string) iter.Seq2[snmp.Cell, error] {
	return func(yield func(snmp.Cell, error) bool) {
		yield(snmp.Cell{}, &snmp.RequestError{Op: "walk", OID: prefix, WrappedError: c.err})
	}
}
