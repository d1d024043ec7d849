// Package errors holds the sentinel and structured errors shared across the
// ariflow runtime packages.
package errors

import (
	sterrors "errors"
	"fmt"
)

var (
	ErrClientRequired      = sterrors.New("ariflow: client is required")
	ErrHandlerRequired     = sterrors.New("ariflow: handler function is required")
	ErrEventTypeRequired   = sterrors.New("ariflow: event type name is required")
	ErrAlreadyStarted      = sterrors.New("ariflow: client already started")
	ErrApplicationRequired = sterrors.New("ariflow: application name is required")
	ErrConfigRequired      = sterrors.New("ariflow: config is required")
)

// RequestError is returned by every REST call that receives a non-2xx
// response. The raw response body is preserved verbatim so callers can parse
// the ARI error message themselves.
type RequestError struct {
	// StatusCode is the HTTP status returned by Asterisk.
	StatusCode int
	// Body is the raw response body.
	Body string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ariflow: request failed with status %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps a connection-level failure of the event stream. It is
// fatal for the session that observed it; Client.Start returns it to the
// caller.
type TransportError struct {
	// Op names the stage that failed: "dial", "read", or "close".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ariflow: transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
