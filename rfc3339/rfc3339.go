// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package rfc3339 provides a timestamp wrapper that converts between
// [time.Time] and JSON string values in the RFC 3339 profile.
package rfc3339

import (
	"fmt"
	"time"

	"github.com/creachadair/jview/value"
)

// A Time is a time.Time that converts to and from JSON value trees as an
// RFC 3339 timestamp string.
type Time struct{ time.Time }

// New constructs a Time wrapping t.
func New(t time.Time) Time { return Time{Time: t} }

// Value returns the value-tree representation of t, an RFC 3339 string.
// Fractional seconds are included only when nonzero.
func (t Time) Value() value.Value {
	return value.ToValue(t.Format(time.RFC3339Nano))
}

// FromValue decodes an RFC 3339 timestamp from a string value.
func FromValue(v value.Value) (Time, error) {
	s, ok := v.(value.String)
	if !ok {
		return Time{}, fmt.Errorf("rfc3339: value is %T, not a string", v)
	}
	t, err := time.Parse(time.RFC3339, s.Value())
	if err != nil {
		return Time{}, fmt.Errorf("rfc3339: %w", err)
	}
	return Time{Time: t}, nil
}
