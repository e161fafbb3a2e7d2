package api

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates a response body that is not a valid
// envelope. It propagates exactly like a remote API error.
var ErrMalformedResponse = errors.New("malformed API response")

// APIError is an error reported inside a response envelope.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cont.ar said: %s", e.Message)
}

// AuthError is a rejected credential exchange.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// CallError annotates a failed resource fetch with the path and resource
// id that were being requested.
type CallError struct {
	Path string
	ID   string
	Err  error
}

func (e *CallError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("fetch %s (id %s): %v", e.Path, e.ID, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
