// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import "fmt"

// RequestError reports a failed call to an E-utilities endpoint: either a
// transport failure or a non-success HTTP status. It is fatal; the caller
// aborts the run.
type RequestError struct {
	// Endpoint names the failing endpoint ("esearch" or "efetch").
	Endpoint string

	// StatusCode is the HTTP status, or 0 on transport failure.
	StatusCode int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RequestError) Unwrap() error { return e.Err }
