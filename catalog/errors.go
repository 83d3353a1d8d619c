package catalog

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrBadURL indicates the catalog endpoint URL is malformed
	ErrBadURL = errors.New("invalid catalog URL")
	// ErrTimeout indicates the request exceeded the configured timeout
	ErrTimeout = errors.New("catalog request timed out")
	// ErrNetwork indicates the request failed before a response arrived
	ErrNetwork = errors.New("failed to reach catalog endpoint")
)

// StatusError represents a non-success HTTP response from the catalog endpoint
type StatusError struct {
	Code int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog request failed with status %d", e.Code)
}

// DecodeError represents a response body that could not be decoded into movies
type DecodeError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("bad catalog response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
