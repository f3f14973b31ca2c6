package snmp

import (
	"fmt"
	"iter"
	"time"
)

// Well-known identifiers queried by the dashboard.
const (
	OIDSysName   = "1.3.6.1.2.1.1.5.0" // sysName.0
	OIDSysUpTime = "1.3.6.1.2.1.1.3.0" // sysUpTime.0

	// UCD-SNMP-MIB
	OIDLaLoad       = "1.3.6.1.4.1.2021.10.1.3" // laLoad.{1,2,3}
	OIDMemTotalReal = "1.3.6.1.4.1.2021.4.5.0"
	OIDMemAvailReal = "1.3.6.1.4.1.2021.4.6.0"
	OIDDskPath      = "1.3.6.1.4.1.2021.9.1.2"
	OIDDskTotal     = "1.3.6.1.4.1.2021.9.1.6"
	OIDDskUsed      = "1.3.6.1.4.1.2021.9.1.8"
	OIDDskPercent   = "1.3.6.1.4.1.2021.9.1.9"
)

// Cell is a single OID/value pair returned by a lookup or a walk.
type Cell struct {
	OID   string `json:"oid"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Client performs scalar lookups and subtree walks against one agent.
//
// Get returns (nil, nil) when the agent answers but holds no value for the OID.
// Walk yields cells in the order the agent returns them and yields a single
// non-nil error if the walk fails part way.
type Client interface {
	Get(oid string) (*Cell, error)
	Walk(prefix string) iter.Seq2[Cell, error]
}

type Version string

const (
	Version1  Version = "1"
	Version2c Version = "2c"
)

func ParseVersion(v string) (Version, error) {
	switch Version(v) {
	case Version1, Version2c:
		return Version(v), nil
	case "2":
		return Version2c, nil
	}
	return "", fmt.Errorf("unsupported SNMP version %q (expected 1 or 2c)", v)
}

// Options binds the per-invocation transport settings of a Session.
type Options struct {
	Host      string
	Port      uint16
	Community string
	Version   Version
	Timeout   time.Duration
	Retries   int
	// Bulk walks with GETBULK instead of GETNEXT. Ignored for SNMPv1.
	Bulk bool
}

// DefaultOptions targets a local agent with the public community over v2c.
func DefaultOptions() Options {
	return Options{
		Host:      "127.0.0.1",
		Port:      161,
		Community: "public",
		Version:   Version2c,
		Timeout:   2 * time.Second,
		Retries:   2,
	}
}
