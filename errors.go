// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"errors"
	"fmt"
)

// SyntaxError is the concrete type of lexical errors reported by an Iter:
// malformed UTF-8, invalid escapes, bad number syntax, unterminated strings
// and containers, and unexpected input bytes. The Offset is the byte
// position in the input where the problem was found.
type SyntaxError struct {
	Offset  int
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// UnsupportedError reports a lexically valid JSON construct that the value
// model does not represent, such as an integer too large for int64 or a
// token kind the builder does not recognize. It is always a distinct,
// catchable failure, never a silent substitution.
type UnsupportedError struct {
	Offset int
	Shape  string
}

// Error satisfies the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("at offset %d: unsupported %s", e.Offset, e.Shape)
}

// DefectError reports a contract violation between the cursor and its
// caller, for example consuming a known string when the cursor is not
// positioned at one. A DefectError indicates a bug in the calling code, not
// in the input.
type DefectError struct {
	Offset  int
	Message string
}

// Error satisfies the error interface.
func (e *DefectError) Error() string {
	return fmt.Sprintf("protocol defect at offset %d: %s", e.Offset, e.Message)
}

// ErrNotInteger is reported by the Int method of an Iter when the pending
// number has a fraction or exponent part. The cursor does not advance, so
// the caller may consume the same token with Float.
var ErrNotInteger = errors.New("number is not an integer")
