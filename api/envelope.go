// Package api implements the authenticated client for the cont.ar catalog API.
package api

import (
	"encoding/json"
	"sort"
	"strings"
)

// Envelope is the uniform response wrapper used by every API endpoint.
// Regular resources carry their payload in data; the authenticate endpoint
// carries the bearer token as a top-level sibling instead.
type Envelope struct {
	Data  json.RawMessage `json:"data"`
	Token string          `json:"token"`
	Error *RemoteError    `json:"error"`
}

// Err returns the remote error carried by the envelope, if any.
// It must be consulted before data is trusted.
func (e *Envelope) Err() error {
	if e.Error != nil && e.Error.Message != "" {
		return &APIError{Message: e.Error.Message}
	}
	return nil
}

// RemoteError is the error field of an envelope. Its message is either a
// plain string or a mapping of named sub-errors; the mapping form is
// flattened into a single comma-joined string in sorted-key order so the
// result is deterministic.
type RemoteError struct {
	Message string
}

func (r *RemoteError) UnmarshalJSON(b []byte) error {
	var wrapped struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	if len(wrapped.Message) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(wrapped.Message, &single); err == nil {
		r.Message = single
		return nil
	}

	var many map[string]string
	if err := json.Unmarshal(wrapped.Message, &many); err != nil {
		return err
	}

	keys := make([]string, 0, len(many))
	for k := range many {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, many[k])
	}
	r.Message = strings.Join(values, ", ")
	return nil
}
