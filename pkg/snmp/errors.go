package snmp

import "fmt"

// RequestError is returned when a request could not complete at the transport level.
type RequestError struct {
	Op           string
	OID          string
	WrappedError error
}

func (e *RequestError) Error() string {
	if e.OID == "" {
		return fmt.Sprintf("snmp %s: %v", e.Op, e.WrappedError)
	}
	return fmt.Sprintf("snmp %s %s: %v", e.Op, e.OID, e.WrappedError)
}

func (e *RequestError) Unwrap() error {
	return e.WrappedError
}

// StatusError is returned when the agent answers with a non-zero error-status.
type StatusError struct {
	OID    string
	Status int
	Index  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("snmp get %s: agent returned error-status %d at index %d", e.OID, e.Status, e.Index)
}
