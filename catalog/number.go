package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Number is an optional integer that tolerates the API's inconsistent
// numeric encodings: a JSON number, a numeric string, null, or garbage.
// Anything that does not coerce to an integer yields an absent value,
// never a decode error.
type Number struct {
	value mo.Option[int]
}

// NumberOf wraps a known integer value, mostly for tests.
func NumberOf(v int) Number {
	return Number{value: mo.Some(v)}
}

// Int returns the numeric value and whether one is present.
func (n Number) Int() (int, bool) {
	return n.value.Get()
}

// Ptr returns the value as a nullable pointer for JSON output.
func (n Number) Ptr() *int {
	if v, ok := n.value.Get(); ok {
		return &v
	}
	return nil
}

// String returns the decimal representation, or the empty string when absent.
func (n Number) String() string {
	v, ok := n.value.Get()
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		n.value = mo.None[int]()
		return nil
	}

	s = strings.Trim(s, `"`)

	if v, err := strconv.Atoi(s); err == nil {
		n.value = mo.Some(v)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.value = mo.Some(int(f))
		return nil
	}

	// Non-numeric values are an absence, not an error.
	n.value = mo.None[int]()
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if v, ok := n.value.Get(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}
