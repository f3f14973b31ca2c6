package test

import (
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/chrizzn/snmpdash/pkg/snmp"
)

// Agent is an in-memory snmp.Client. The zero value answers every lookup
// with "no such object".
type Agent struct {
	// Values maps OID to the payload returned for it.
	Values map[string]any
	// Errors maps OID to a transport error returned by Get, or by Walk
	// when the walk reaches that OID.
	Errors map[string]error

	mu       sync.Mutex
	gets     []string
	consumed int
}

var _ snmp.Client = (*Agent)(nil)

func (a *Agent) Get(oid string) (*snmp.Cell, error) {
	a.mu.Lock()
	a.gets = append(a.gets, oid)
	a.mu.Unlock()

	if err, ok := a.Errors[oid]; ok {
		return nil, &snmp.RequestError{Op: "get", OID: oid, WrappedError: err}
	}
	v, ok := a.Values[oid]
	if !ok || v == nil {
		return nil, nil
	}
	return &snmp.Cell{OID: oid, Type: "Stub", Value: v}, nil
}

// Walk yields every value or error at or under prefix, in OID order.
func (a *Agent) Walk(prefix string) iter.Seq2[snmp.Cell, error] {
	return func(yield func(snmp.Cell, error) bool) {
		keys := slices.Collect(maps.Keys(a.Values))
		keys = append(keys, slices.Collect(maps.Keys(a.Errors))...)
		slices.SortFunc(keys, snmp.CompareOIDs)
		keys = slices.Compact(keys)

		for _, oid := range keys {
			if !snmp.HasOIDPrefix(oid, prefix) {
				continue
			}
			a.mu.Lock()
			a.consumed++
			a.mu.Unlock()

			if err, ok := a.Errors[oid]; ok {
				yield(snmp.Cell{}, &snmp.RequestError{Op: "walk", OID: prefix, WrappedError: err})
				return
			}
			if !yield(snmp.Cell{OID: oid, Type: "Stub", Value: a.Values[oid]}, nil) {
				return
			}
		}
	}
}

// Gets returns the OIDs passed to Get so far.
func (a *Agent) Gets() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.gets)
}

// Consumed returns how many cells Walk has produced so far.
func (a *Agent) Consumed() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.consumed
}
