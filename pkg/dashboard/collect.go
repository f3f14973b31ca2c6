package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chrizzn/snmpdash/pkg/snmp"
	"github.com/chrizzn/snmpdash/pkg/table"
	"github.com/chrizzn/snmpdash/pkg/value"
)

// DefaultMount is the filesystem reported in the disk line.
const DefaultMount = "/"

// Collector gathers a Snapshot from one agent with sequential lookups.
type Collector struct {
	Client snmp.Client
	// Host is echoed in the report; it is not used to reach the agent.
	Host string
	// Mount is the dskPath value whose row is reported. Defaults to "/".
	Mount  string
	Logger *zap.Logger
	// Now stamps the snapshot. Defaults to time.Now.
	Now func() time.Time
}

// Collect runs every lookup in turn. Failed lookups leave their field nil;
// no failure stops the remaining lookups. Once ctx is done, outstanding
// lookups are skipped.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	mount := c.Mount
	if mount == "" {
		mount = DefaultMount
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	snap := Snapshot{Host: c.Host}

	if name, ok := value.String(c.get(ctx, snmp.OIDSysName)); ok {
		snap.Device = &name
	}
	snap.UptimeTicks = intPtr(c.get(ctx, snmp.OIDSysUpTime))

	snap.Load = LoadAverages{
		One:     floatPtr(c.get(ctx, snmp.JoinOID(snmp.OIDLaLoad, 1))),
		Five:    floatPtr(c.get(ctx, snmp.JoinOID(snmp.OIDLaLoad, 2))),
		Fifteen: floatPtr(c.get(ctx, snmp.JoinOID(snmp.OIDLaLoad, 3))),
	}

	snap.Memory = NewMemory(
		intPtr(c.get(ctx, snmp.OIDMemTotalReal)),
		intPtr(c.get(ctx, snmp.OIDMemAvailReal)),
	)

	if ctx.Err() == nil {
		if idx, ok := table.Lookup(c.Client, snmp.OIDDskPath, mount, c.Logger); ok {
			snap.Disk = c.disk(ctx, mount, idx)
		}
	}

	snap.CollectedAt = now()
	c.Logger.Debug("snapshot collected", zap.String("host", c.Host), zap.Bool("available", snap.Available()))
	return snap
}

func (c *Collector) disk(ctx context.Context, mount string, idx int) *Disk {
	total := intPtr(c.get(ctx, snmp.JoinOID(snmp.OIDDskTotal, idx)))
	used := intPtr(c.get(ctx, snmp.JoinOID(snmp.OIDDskUsed, idx)))
	percent := intPtr(c.get(ctx, snmp.JoinOID(snmp.OIDDskPercent, idx)))
	if total == nil || *total <= 0 || used == nil || percent == nil {
		return nil
	}
	return &Disk{
		Mount:    mount,
		Index:    idx,
		TotalKiB: *total,
		UsedKiB:  *used,
		Percent:  *percent,
	}
}

// get returns the raw payload at oid, or nil for any kind of failure.
func (c *Collector) get(ctx context.Context, oid string) any {
	if err := ctx.Err(); err != nil {
		c.Logger.Debug("lookup skipped", zap.String("oid", oid), zap.Error(err))
		return nil
	}
	cell, err := c.Client.Get(oid)
	if err != nil {
		c.Logger.Debug("lookup failed", zap.String("oid", oid), zap.Error(err))
		return nil
	}
	if cell == nil {
		c.Logger.Debug("no value", zap.String("oid", oid))
		return nil
	}
	return cell.Value
}

func intPtr(raw any) *int64 {
	n, ok := value.ToInt(raw)
	if !ok {
		return nil
	}
	return &n
}

func floatPtr(raw any) *float64 {
	f, ok := value.ToFloat(raw)
	if !ok {
		return nil
	}
	return &f
}
