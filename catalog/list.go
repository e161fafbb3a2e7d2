package catalog

import "encoding/json"

// List decodes the API's collection wrapper: nested listings are returned
// as {"data": [...]}. A missing wrapper, a bare array, or null all decode
// to a usable (possibly empty) list rather than an error.
type List[T any] struct {
	Data []T `json:"data"`
}

// UnmarshalJSON accepts both the wrapped {"data": [...]} shape and a bare
// JSON array, which some endpoints return for top-level collections.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		l.Data = nil
		return nil
	}

	if b[0] == '[' {
		return json.Unmarshal(b, &l.Data)
	}

	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	l.Data = wrapped.Data
	return nil
}
