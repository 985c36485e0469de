package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OptionalFloat is a JSON number that remembers whether the field was
// present in the decoded document at all.
//
//   - absent field:   Set == false
//   - null or "":     Set == true, Valid == false
//   - number or "12": Set == true, Valid == true
//
// Numeric strings are accepted for compatibility with form-encoded clients.
type OptionalFloat struct {
	Set   bool
	Valid bool
	Value float64
}

// NewOptionalFloat returns a present, non-null value.
func NewOptionalFloat(v float64) OptionalFloat {
	return OptionalFloat{Set: true, Valid: true, Value: v}
}

// UnmarshalJSON implements [json.Unmarshaler]. It is invoked only when the
// field exists in the document, which is what sets Set.
func (o *OptionalFloat) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Valid = false
	o.Value = 0

	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", raw, err)
	}

	o.Valid = true
	o.Value = v
	return nil
}

// MarshalJSON implements [json.Marshaler]; missing or null values encode as null.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer.
func (o OptionalFloat) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
