package models

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned by ParseDate for values in an unsupported format.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// ParseDate accepts a calendar date ("2025-09-10") or a full RFC 3339
// timestamp. Calendar dates are interpreted as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.UTC(), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, ErrInvalidDate
}
