package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/chrizzn/snmpdash/pkg/snmp"
	"github.com/chrizzn/snmpdash/pkg/test"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var collectedAt = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// fullAgent answers every OID the dashboard reads.
func fullAgent() *test.Agent {
	return &test.Agent{Values: map[string]any{
		snmp.OIDSysName:           "router1",
		snmp.OIDSysUpTime:         uint32(12345678),
		snmp.OIDLaLoad + ".1":     "0.15",
		snmp.OIDLaLoad + ".2":     "0.10",
		snmp.OIDLaLoad + ".3":     `"0.05"`,
		snmp.OIDMemTotalReal:      2000000,
		snmp.OIDMemAvailReal:      500000,
		snmp.OIDDskPath + ".1":    "/boot",
		snmp.OIDDskPath + ".2":    "/",
		snmp.OIDDskPath + ".3":    "/var",
		snmp.OIDDskTotal + ".1":   100000,
		snmp.OIDDskTotal + ".2":   2000000,
		snmp.OIDDskUsed + ".2":    1500000,
		snmp.OIDDskPercent + ".2": 75,
		snmp.OIDDskPercent + ".1": 3,
	}}
}

func collect(t *testing.T, client snmp.Client) Snapshot {
	t.Helper()
	c := &Collector{
		Client: client,
		Host:   "10.0.0.1",
		Logger: zaptest.NewLogger(t),
		Now:    func() time.Time { return collectedAt },
	}
	return c.Collect(context.Background())
}

func TestCollectFull(t *testing.T) {
	agent := fullAgent()
	snap := collect(t, agent)

	assert.True(t, snap.Available())
	assert.Equal(t, "10.0.0.1", snap.Host)
	assert.Equal(t, "router1", snap.DeviceName())
	assert.Equal(t, "1 day, 10:17:36", snap.Uptime())
	require.NotNil(t, snap.Load.One)
	require.NotNil(t, snap.Load.Five)
	require.NotNil(t, snap.Load.Fifteen)
	assert.Equal(t, 0.15, *snap.Load.One)
	assert.Equal(t, 0.10, *snap.Load.Five)
	assert.Equal(t, 0.05, *snap.Load.Fifteen)

	require.NotNil(t, snap.Memory)
	assert.Equal(t, int64(1500000), snap.Memory.UsedKiB)
	assert.Equal(t, 75.0, snap.Memory.UsedPercent)

	require.NotNil(t, snap.Disk)
	assert.Equal(t, Disk{Mount: "/", Index: 2, TotalKiB: 2000000, UsedKiB: 1500000, Percent: 75}, *snap.Disk)
	assert.Equal(t, collectedAt, snap.CollectedAt)

	assert.Equal(t, []string{
		snmp.OIDSysName,
		snmp.OIDSysUpTime,
		snmp.OIDLaLoad + ".1",
		snmp.OIDLaLoad + ".2",
		snmp.OIDLaLoad + ".3",
		snmp.OIDMemTotalReal,
		snmp.OIDMemAvailReal,
		snmp.OIDDskTotal + ".2",
		snmp.OIDDskUsed + ".2",
		snmp.OIDDskPercent + ".2",
	}, agent.Gets())
	// The walk stops at the "/" row.
	assert.Equal(t, 2, agent.Consumed())
}

func TestCollectNothingAvailable(t *testing.T) {
	agent := &test.Agent{}
	snap := collect(t, agent)

	assert.False(t, snap.Available())
	assert.Nil(t, snap.Device)
	assert.Nil(t, snap.UptimeTicks)
	assert.Nil(t, snap.Memory)
	assert.Nil(t, snap.Disk)
	// No row found, so no per-row lookups.
	assert.Len(t, agent.Gets(), 7)
}

func TestCollectTransportFailures(t *testing.T) {
	timeout := errors.New("request timeout (after 2 retries)")
	agent := &test.Agent{Errors: map[string]error{
		snmp.OIDSysName:        timeout,
		snmp.OIDSysUpTime:      timeout,
		snmp.OIDLaLoad + ".1":  timeout,
		snmp.OIDLaLoad + ".2":  timeout,
		snmp.OIDLaLoad + ".3":  timeout,
		snmp.OIDMemTotalReal:   timeout,
		snmp.OIDMemAvailReal:   timeout,
		snmp.OIDDskPath + ".1": timeout,
	}}
	snap := collect(t, agent)
	assert.False(t, snap.Available())
}

func TestCollectPartial(t *testing.T) {
	agent := fullAgent()
	agent.Errors = map[string]error{snmp.OIDLaLoad + ".2": errors.New("request timeout")}
	delete(agent.Values, snmp.OIDMemAvailReal)
	delete(agent.Values, snmp.OIDDskPercent+".2")
	agent.Values[snmp.OIDLaLoad+".3"] = "garbage"

	snap := collect(t, agent)

	require.NotNil(t, snap.Load.One)
	assert.Nil(t, snap.Load.Five)
	assert.Nil(t, snap.Load.Fifteen)
	assert.Nil(t, snap.Memory)
	assert.Nil(t, snap.Disk)
	assert.Equal(t, "router1", snap.DeviceName())
	assert.True(t, snap.Available())
}

func TestCollectZeroDiskTotal(t *testing.T) {
	agent := fullAgent()
	agent.Values[snmp.OIDDskTotal+".2"] = 0
	snap := collect(t, agent)
	assert.Nil(t, snap.Disk)
}

func TestCollectCustomMount(t *testing.T) {
	agent := fullAgent()
	agent.Values[snmp.OIDDskUsed+".1"] = 50000
	c := &Collector{Client: agent, Host: "10.0.0.1", Mount: "/boot"}
	snap := c.Collect(context.Background())
	require.NotNil(t, snap.Disk)
	assert.Equal(t, "/boot", snap.Disk.Mount)
	assert.Equal(t, 1, snap.Disk.Index)
	assert.Equal(t, int64(3), snap.Disk.Percent)
}

func TestCollectCancelled(t *testing.T) {
	agent := fullAgent()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Collector{Client: agent, Host: "10.0.0.1", Logger: zaptest.NewLogger(t)}
	snap := c.Collect(ctx)
	assert.False(t, snap.Available())
	assert.Empty(t, agent.Gets())
	assert.Zero(t, agent.Consumed())
}

func TestNewMemory(t *testing.T) {
	total, avail := int64(2000000), int64(500000)
	m := NewMemory(&total, &avail)
	require.NotNil(t, m)
	assert.Equal(t, int64(1500000), m.UsedKiB)
	assert.Equal(t, 75.0, m.UsedPercent)

	assert.Nil(t, NewMemory(nil, &avail))
	assert.Nil(t, NewMemory(&total, nil))
	zero := int64(0)
	assert.Nil(t, NewMemory(&zero, &avail))

	m = NewMemory(&total, &zero)
	require.NotNil(t, m)
	assert.Equal(t, 100.0, m.UsedPercent)
}
