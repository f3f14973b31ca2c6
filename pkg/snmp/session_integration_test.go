//go:build integration

package snmp_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/chrizzn/snmpdash/pkg/dashboard"
	"github.com/chrizzn/snmpdash/pkg/snmp"
	"github.com/chrizzn/snmpdash/pkg/test"
)

func TestSessionAgainstNetSNMP(t *testing.T) {
	opts := test.RunAgent(t, test.DefaultAgent)

	for _, bulk := range []bool{false, true} {
		bulk := bulk
		name := "getnext"
		if bulk {
			name = "getbulk"
		}
		t.Run(name, func(t *testing.T) {
			opts.Bulk = bulk
			session, err := snmp.Dial(context.Background(), opts, zaptest.NewLogger(t))
			require.NoError(t, err)
			defer session.Close()

			cell, err := session.Get(snmp.OIDSysName)
			require.NoError(t, err)
			require.NotNil(t, cell)
			assert.NotEmpty(t, cell.Value)

			var walked int
			for cell, err := range session.Walk("1.3.6.1.2.1.1") {
				require.NoError(t, err)
				assert.True(t, snmp.HasOIDPrefix(cell.OID, "1.3.6.1.2.1.1"), cell.OID)
				walked++
			}
			assert.Greater(t, walked, 1)

			collector := &dashboard.Collector{Client: session, Host: opts.Host, Logger: zaptest.NewLogger(t)}
			snap := collector.Collect(context.Background())
			assert.True(t, snap.Available())
			assert.NotEqual(t, "n/a", snap.DeviceName())
			assert.True(t, strings.HasPrefix(dashboard.Text(snap), "\nSNMP MINI-DASHBOARD\n"))
		})
	}
}
