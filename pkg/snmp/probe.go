package snmp

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// MIB-II system group.
const (
	OIDSysDescr    = "1.3.6.1.2.1.1.1.0"
	OIDSysObjectID = "1.3.6.1.2.1.1.2.0"
	OIDSysContact  = "1.3.6.1.2.1.1.4.0"
	OIDSysLocation = "1.3.6.1.2.1.1.6.0"
)

// SystemInfo describes an agent by its system group.
type SystemInfo struct {
	Version     Version `json:"version"`
	SysDescr    string  `json:"sysDescr,omitempty"`    // 1.3.6.1.2.1.1.1.0
	SysObjectID string  `json:"sysObjectID,omitempty"` // 1.3.6.1.2.1.1.2.0
	SysName     string  `json:"sysName,omitempty"`     // 1.3.6.1.2.1.1.5.0
	SysLocation string  `json:"sysLocation,omitempty"` // 1.3.6.1.2.1.1.6.0
	SysContact  string  `json:"sysContact,omitempty"`  // 1.3.6.1.2.1.1.4.0
}

// ReadSystem reads the system group. It fails only when the agent does not
// answer the first request; missing objects are left empty.
func ReadSystem(client Client) (*SystemInfo, error) {
	info := &SystemInfo{}
	fields := []struct {
		oid string
		dst *string
	}{
		{OIDSysDescr, &info.SysDescr},
		{OIDSysObjectID, &info.SysObjectID},
		{OIDSysName, &info.SysName},
		{OIDSysLocation, &info.SysLocation},
		{OIDSysContact, &info.SysContact},
	}
	for i, f := range fields {
		cell, err := client.Get(f.oid)
		var reqErr *RequestError
		if i == 0 && errors.As(err, &reqErr) {
			return nil, err
		}
		if err != nil || cell == nil {
			continue
		}
		if s, ok := cell.Value.(string); ok {
			*f.dst = s
		} else {
			*f.dst = cell.Type
		}
	}
	return info, nil
}

// Probe finds the protocol version the agent answers to, trying
// opts.Version first and then the other supported version.
func Probe(ctx context.Context, opts Options, logger *zap.Logger) (*SystemInfo, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	order := []Version{Version2c, Version1}
	if opts.Version == Version1 {
		order = []Version{Version1, Version2c}
	}

	var lastErr error
	for _, version := range order {
		o := opts
		o.Version = version
		session, err := Dial(ctx, o, logger)
		if err != nil {
			return nil, err
		}
		info, err := ReadSystem(session)
		_ = session.Close()
		if err == nil {
			info.Version = version
			return info, nil
		}
		logger.Debug("no answer", zap.String("version", string(version)), zap.Error(err))
		lastErr = err
	}
	return nil, lastErr
}
