package snmp

import (
	"context"
	"errors"
	"iter"
	"strings"

	"github.com/gosnmp/gosnmp"
	"go.uber.org/zap"
)

var errWalkStopped = errors.New("walk stopped by consumer")

// Session is a Client backed by a single gosnmp connection.
type Session struct {
	conn   *gosnmp.GoSNMP
	bulk   bool
	logger *zap.Logger
}

// Dial opens a UDP session to the agent described by opts. The context is kept
// by gosnmp and aborts outstanding requests when cancelled.
func Dial(ctx context.Context, opts Options, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn := newGoSNMP(ctx, opts, logger)
	if err := conn.Connect(); err != nil {
		return nil, &RequestError{Op: "connect", WrappedError: err}
	}
	logger.Debug("snmp session opened",
		zap.String("target", opts.Host),
		zap.Uint16("port", opts.Port),
		zap.String("version", string(opts.Version)),
		zap.Duration("timeout", opts.Timeout),
		zap.Int("retries", opts.Retries))

	return &Session{
		conn:   conn,
		bulk:   opts.Bulk && opts.Version != Version1,
		logger: logger,
	}, nil
}

func newGoSNMP(ctx context.Context, opts Options, logger *zap.Logger) *gosnmp.GoSNMP {
	version := gosnmp.Version2c
	if opts.Version == Version1 {
		version = gosnmp.Version1
	}
	conn := &gosnmp.GoSNMP{
		Context:   ctx,
		Target:    opts.Host,
		Port:      opts.Port,
		Transport: "udp",
		Community: opts.Community,
		Version:   version,
		Timeout:   opts.Timeout,
		Retries:   opts.Retries,
		MaxOids:   gosnmp.MaxOids,
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		conn.Logger = gosnmp.NewLogger(packetLogger{logger.Sugar().Named("gosnmp")})
	}
	return conn
}

// Get fetches a single scalar.
func (s *Session) Get(oid string) (*Cell, error) {
	packet, err := s.conn.Get([]string{oid})
	if err != nil {
		return nil, &RequestError{Op: "get", OID: oid, WrappedError: err}
	}
	if packet.Error != gosnmp.NoError {
		return nil, &StatusError{OID: oid, Status: int(packet.Error), Index: int(packet.ErrorIndex)}
	}
	if len(packet.Variables) == 0 {
		return nil, nil
	}
	return cellFromPDU(packet.Variables[0]), nil
}

// Walk lazily traverses the subtree under prefix. Stopping the iteration
// early aborts the walk without issuing further requests.
func (s *Session) Walk(prefix string) iter.Seq2[Cell, error] {
	return func(yield func(Cell, error) bool) {
		walk := s.conn.Walk
		if s.bulk {
			walk = s.conn.BulkWalk
		}
		stopped := false
		err := walk(prefix, func(pdu gosnmp.SnmpPDU) error {
			cell := cellFromPDU(pdu)
			if cell == nil {
				return nil
			}
			if !yield(*cell, nil) {
				stopped = true
				return errWalkStopped
			}
			return nil
		})
		if err != nil && !stopped {
			s.logger.Debug("walk aborted", zap.String("prefix", prefix), zap.Error(err))
			yield(Cell{}, &RequestError{Op: "walk", OID: prefix, WrappedError: err})
		}
	}
}

// Close releases the underlying socket.
func (s *Session) Close() error {
	if s.conn.Conn == nil {
		return nil
	}
	return s.conn.Conn.Close()
}

// cellFromPDU converts a varbind into a Cell, returning nil for the
// exception types that mean "no value here".
func cellFromPDU(pdu gosnmp.SnmpPDU) *Cell {
	switch pdu.Type {
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView, gosnmp.Null:
		return nil
	}
	if pdu.Value == nil {
		return nil
	}
	cell := &Cell{
		OID:   strings.TrimPrefix(pdu.Name, "."),
		Type:  pdu.Type.String(),
		Value: pdu.Value,
	}
	if b, ok := pdu.Value.([]byte); ok {
		cell.Value = string(b)
	}
	return cell
}

// packetLogger forwards gosnmp's packet trace to zap at debug level.
type packetLogger struct {
	sugar *zap.SugaredLogger
}

func (l packetLogger) Print(v ...interface{}) {
	l.sugar.Debug(v...)
}

func (l packetLogger) Printf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}
