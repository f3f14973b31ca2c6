package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrizzn/snmpdash/pkg/value"
)

// Snapshot is one fully resolved set of dashboard values. Nil fields could
// not be resolved and render as "n/a".
type Snapshot struct {
	Host        string       `json:"host"`
	Device      *string      `json:"device"`
	UptimeTicks *int64       `json:"uptime_ticks"`
	Load        LoadAverages `json:"load"`
	Memory      *Memory      `json:"memory"`
	Disk        *Disk        `json:"disk"`
	CollectedAt time.Time    `json:"collected_at"`
}

type LoadAverages struct {
	One     *float64 `json:"1m"`
	Five    *float64 `json:"5m"`
	Fifteen *float64 `json:"15m"`
}

// Memory holds real memory figures in KiB.
type Memory struct {
	TotalKiB     int64   `json:"total_kib"`
	AvailableKiB int64   `json:"available_kib"`
	UsedKiB      int64   `json:"used_kib"`
	UsedPercent  float64 `json:"used_percent"`
}

// Disk holds the usage of one mounted filesystem, in KiB.
type Disk struct {
	Mount    string `json:"mount"`
	Index    int    `json:"index"`
	TotalKiB int64  `json:"total_kib"`
	UsedKiB  int64  `json:"used_kib"`
	Percent  int64  `json:"percent"`
}

// NewMemory derives usage from total and available memory. It returns nil
// unless both are known and total is positive.
func NewMemory(total, available *int64) *Memory {
	if total == nil || available == nil || *total <= 0 {
		return nil
	}
	used := *total - *available
	return &Memory{
		TotalKiB:     *total,
		AvailableKiB: *available,
		UsedKiB:      used,
		UsedPercent:  float64(used) / float64(*total) * 100.0,
	}
}

func (s Snapshot) DeviceName() string {
	if s.Device == nil {
		return value.NotAvailable
	}
	return *s.Device
}

func (s Snapshot) Uptime() string {
	if s.UptimeTicks == nil {
		return value.NotAvailable
	}
	return value.FormatUptime(*s.UptimeTicks)
}

// Available reports whether at least one field was resolved.
func (s Snapshot) Available() bool {
	return s.Device != nil || s.UptimeTicks != nil ||
		s.Load.One != nil || s.Load.Five != nil || s.Load.Fifteen != nil ||
		s.Memory != nil || s.Disk != nil
}

func (l LoadAverages) String() string {
	return strings.Join([]string{
		formatLoad("1m", l.One),
		formatLoad("5m", l.Five),
		formatLoad("15m", l.Fifteen),
	}, " / ")
}

func formatLoad(label string, v *float64) string {
	if v == nil {
		return label + ": " + value.NotAvailable
	}
	return fmt.Sprintf("%s: %.2f", label, *v)
}
