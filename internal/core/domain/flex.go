package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a numeric field as the backend actually sends it: sometimes a
// JSON number, sometimes a numeric string, sometimes absent or null.
//
// Set reports whether the field carried any value at all; Valid reports
// whether that value parsed as a number. A present-but-unparseable value
// (Set && !Valid) renders as "N/A" instead of propagating an error.
type FlexFloat struct {
	Value float64
	Set   bool
	Valid bool
}

// Float returns a FlexFloat holding a known numeric value.
func Float(v float64) FlexFloat {
	return FlexFloat{Value: v, Set: true, Valid: true}
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = FlexFloat{}
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat{Value: num, Set: true, Valid: true}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			*f = FlexFloat{}
			return nil
		}
		if num, err := strconv.ParseFloat(str, 64); err == nil {
			*f = FlexFloat{Value: num, Set: true, Valid: true}
			return nil
		}
		// Present but not a number: remember that, never error.
		*f = FlexFloat{Set: true}
		return nil
	}

	// Some other JSON shape entirely; treat as absent.
	*f = FlexFloat{}
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Set || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Or returns the parsed value, or fallback when the field is absent or
// unparseable.
func (f FlexFloat) Or(fallback float64) float64 {
	if f.Set && f.Valid {
		return f.Value
	}
	return fallback
}

// FlexInt is the integer cousin of FlexFloat, for fields like bedroom_count
// that arrive as numbers or numeric strings depending on the endpoint.
type FlexInt struct {
	Value int
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = FlexInt{}
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexInt{Value: int(num), Set: true}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if i, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			*f = FlexInt{Value: i, Set: true}
			return nil
		}
	}

	*f = FlexInt{}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Or returns the value, or fallback when the field is absent.
func (f FlexInt) Or(fallback int) int {
	if f.Set {
		return f.Value
	}
	return fallback
}
