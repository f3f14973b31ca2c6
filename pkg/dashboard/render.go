package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chrizzn/snmpdash/pkg/value"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected text, table or json)", s)
}

// RenderOptions tune the table format. Text and JSON ignore them.
type RenderOptions struct {
	Color bool
}

// Render writes snap to w in the requested format.
func Render(w io.Writer, snap Snapshot, format Format, opts RenderOptions) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, Text(snap))
		return err
	case FormatTable:
		_, err := io.WriteString(w, Table(snap, opts)+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Text renders the fixed-layout mini dashboard.
func Text(snap Snapshot) string {
	var b strings.Builder
	b.WriteString("\nSNMP MINI-DASHBOARD\n====================\n")
	fmt.Fprintf(&b, "Host:        %s\n", snap.Host)
	fmt.Fprintf(&b, "Device:      %s\n", snap.DeviceName())
	fmt.Fprintf(&b, "Uptime:      %s\n\n", snap.Uptime())
	fmt.Fprintf(&b, "Load avg:    %s\n", snap.Load)
	fmt.Fprintf(&b, "Memory:      %s\n", memoryText(snap.Memory))
	fmt.Fprintf(&b, "Disk:        %s\n\n", diskText(snap.Disk))
	return b.String()
}

func memoryText(m *Memory) string {
	if m == nil {
		return value.NotAvailable
	}
	return fmt.Sprintf("used: %.1f MiB / %.1f MiB (%.1f%%)",
		value.KibToMib(m.UsedKiB), value.KibToMib(m.TotalKiB), m.UsedPercent)
}

func diskText(d *Disk) string {
	if d == nil {
		return value.NotAvailable
	}
	return fmt.Sprintf("%s: %.1f / %.1f MiB (%d%%)",
		d.Mount, value.KibToMib(d.UsedKiB), value.KibToMib(d.TotalKiB), d.Percent)
}

// Table renders the snapshot as a two-column table with humanised sizes.
func Table(snap Snapshot, opts RenderOptions) string {
	tw := table.NewWriter()
	tw.SetTitle("SNMP MINI-DASHBOARD")
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRows([]table.Row{
		{"Host", snap.Host},
		{"Device", snap.DeviceName()},
		{"Uptime", snap.Uptime()},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Load 1m", loadCell(snap.Load.One)},
		{"Load 5m", loadCell(snap.Load.Five)},
		{"Load 15m", loadCell(snap.Load.Fifteen)},
	})
	tw.AppendSeparator()

	if m := snap.Memory; m != nil {
		tw.AppendRow(table.Row{"Memory", fmt.Sprintf("%s / %s (%.1f%%)",
			kibBytes(m.UsedKiB), kibBytes(m.TotalKiB), m.UsedPercent)})
	} else {
		tw.AppendRow(table.Row{"Memory", value.NotAvailable})
	}
	if d := snap.Disk; d != nil {
		tw.AppendRow(table.Row{"Disk " + d.Mount, fmt.Sprintf("%s / %s (%d%%)",
			kibBytes(d.UsedKiB), kibBytes(d.TotalKiB), d.Percent)})
	} else {
		tw.AppendRow(table.Row{"Disk", value.NotAvailable})
	}

	if opts.Color {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	return tw.Render()
}

func loadCell(v *float64) string {
	if v == nil {
		return value.NotAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}

func kibBytes(kib int64) string {
	if kib < 0 {
		return "-" + humanize.IBytes(uint64(-kib)*1024)
	}
	return humanize.IBytes(uint64(kib) * 1024)
}
