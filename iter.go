// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/creachadair/jview/internal/escape"

	"go4.org/mem"
)

// An Iter is a pull-style cursor over a single JSON document in an immutable
// input buffer. The caller drives it by peeking the kind of the next token
// and then consuming the token with the matching Known method. All methods
// report lexical problems as a [*SyntaxError] carrying a byte offset.
//
// Peek classifies the next token without consuming it, with one exception:
// the literal constants null, true, false and, with extensions enabled,
// Infinity and NaN are validated and consumed while peeking, since their
// Kind fully determines their value and no further consumption is needed.
//
// A leading minus sign is always resolved while peeking: a well-formed
// negative number classifies as Number, and a bare or misplaced sign is a
// lexical error. The Minus kind is never produced.
type Iter struct {
	src mem.RO
	pos int
	ext bool // allow Infinity and NaN constants
}

// NewIter constructs a cursor reading the contents of src.
func NewIter(src mem.RO) *Iter { return &Iter{src: src} }

// NewIterBytes constructs a cursor reading data. The buffer must not be
// modified while the cursor or any borrowed [Text] from it is in use.
func NewIterBytes(data []byte) *Iter { return NewIter(mem.B(data)) }

// NewIterString constructs a cursor reading s.
func NewIterString(s string) *Iter { return NewIter(mem.S(s)) }

// AllowExtensions configures the cursor to accept (true) or reject (false)
// the Infinity and NaN constants, a non-standard extension of the JSON
// grammar.
func (it *Iter) AllowExtensions(ok bool) { it.ext = ok }

// Offset reports the current byte offset of the cursor in its input.
func (it *Iter) Offset() int { return it.pos }

// Peek classifies the next token of the input. See the type comment for the
// treatment of literal constants and number signs.
func (it *Iter) Peek() (Kind, error) {
	it.skipSpace()
	if it.pos >= it.src.Len() {
		return Invalid, it.failf("unexpected end of input")
	}
	switch b := it.src.At(it.pos); {
	case b == 'n':
		return it.constant(Null, "null")
	case b == 't':
		return it.constant(True, "true")
	case b == 'f':
		return it.constant(False, "false")
	case b == '"':
		return String, nil
	case b == '[':
		return Array, nil
	case b == '{':
		return Object, nil
	case isDigit(b):
		return Number, nil
	case b == '-':
		if it.pos+1 >= it.src.Len() || !isDigit(it.src.At(it.pos+1)) {
			return Invalid, it.failAt(it.pos+1, "want digit after minus sign")
		}
		return Number, nil
	case b == 'I' && it.ext:
		return it.constant(Infinity, "Infinity")
	case b == 'N' && it.ext:
		return it.constant(NaN, "NaN")
	default:
		return Invalid, it.failf("unexpected %q", rune(b))
	}
}

// constant consumes a named literal constant and returns its kind.
func (it *Iter) constant(kind Kind, name string) (Kind, error) {
	end := it.pos
	for end < it.src.Len() && isNameByte(it.src.At(end)) {
		end++
	}
	got := roSlice(it.src, it.pos, end)
	if !got.Equal(mem.S(name)) {
		return Invalid, it.failf("unknown constant %q", got.StringCopy())
	}
	it.pos = end
	return kind, nil
}

// KnownString consumes a string token and returns its decoded text. The
// text is a borrowed view of the input when the string contains no escape
// sequences, and an owned copy otherwise. The caller must have peeked a
// String kind.
func (it *Iter) KnownString() (Text, error) {
	it.skipSpace()
	if it.pos >= it.src.Len() || it.src.At(it.pos) != '"' {
		return Text{}, &DefectError{Offset: it.pos, Message: "cursor is not at a string"}
	}
	start := it.pos + 1
	hasEsc := false
	i := start
	for {
		if i >= it.src.Len() {
			return Text{}, it.failAt(i, "unterminated string")
		}
		b := it.src.At(i)
		switch {
		case b == '"':
			raw := roSlice(it.src, start, i)
			it.pos = i + 1
			if !hasEsc {
				return borrow(raw), nil
			}
			dec, err := escape.Unquote(raw)
			if err != nil {
				return Text{}, &SyntaxError{Offset: start, Message: err.Error(), err: err}
			}
			return ownBytes(dec), nil
		case b == '\\':
			if i+1 >= it.src.Len() {
				return Text{}, it.failAt(i, "unterminated string")
			}
			hasEsc = true
			i += 2 // skip the escaped byte so a \" does not end the scan
		case b < ' ':
			return Text{}, it.failAt(i, "unescaped control %q", rune(b))
		case b < utf8.RuneSelf:
			i++
		default:
			r, n := mem.DecodeRune(it.src.SliceFrom(i))
			if r == utf8.RuneError && n <= 1 {
				return Text{}, it.failAt(i, "invalid UTF-8 sequence")
			}
			i += n
		}
	}
}

// KnownArray consumes an array opening and reports the kind of the first
// element. The flag is false for an empty array. The caller must have
// peeked an Array kind.
func (it *Iter) KnownArray() (Kind, bool, error) {
	if err := it.known('['); err != nil {
		return Invalid, false, err
	}
	it.skipSpace()
	if it.pos < it.src.Len() && it.src.At(it.pos) == ']' {
		it.pos++
		return Invalid, false, nil
	}
	kind, err := it.Peek()
	if err != nil {
		return Invalid, false, err
	}
	return kind, true, nil
}

// ArrayStep advances past the current array element and reports the kind of
// the next one. The flag is false when the closing bracket is reached.
func (it *Iter) ArrayStep() (Kind, bool, error) {
	it.skipSpace()
	if it.pos >= it.src.Len() {
		return Invalid, false, it.failf("unterminated array")
	}
	switch b := it.src.At(it.pos); b {
	case ']':
		it.pos++
		return Invalid, false, nil
	case ',':
		it.pos++
		kind, err := it.Peek()
		if err != nil {
			return Invalid, false, err
		}
		return kind, true, nil
	default:
		return Invalid, false, it.failf(`expected "," or "]" in array, got %q`, rune(b))
	}
}

// KnownObject consumes an object opening and returns the first member key,
// leaving the cursor at the start of its value. The flag is false for an
// empty object. The caller must have peeked an Object kind.
func (it *Iter) KnownObject() (Text, bool, error) {
	if err := it.known('{'); err != nil {
		return Text{}, false, err
	}
	it.skipSpace()
	if it.pos < it.src.Len() && it.src.At(it.pos) == '}' {
		it.pos++
		return Text{}, false, nil
	}
	return it.memberKey()
}

// NextKey advances past the current object member and returns the next
// member key. The flag is false when the closing brace is reached.
func (it *Iter) NextKey() (Text, bool, error) {
	it.skipSpace()
	if it.pos >= it.src.Len() {
		return Text{}, false, it.failf("unterminated object")
	}
	switch b := it.src.At(it.pos); b {
	case '}':
		it.pos++
		return Text{}, false, nil
	case ',':
		it.pos++
		return it.memberKey()
	default:
		return Text{}, false, it.failf(`expected "," or "}" in object, got %q`, rune(b))
	}
}

// memberKey consumes a member key and its separating colon.
func (it *Iter) memberKey() (Text, bool, error) {
	it.skipSpace()
	if it.pos >= it.src.Len() || it.src.At(it.pos) != '"' {
		return Text{}, false, it.failf("expected object key")
	}
	key, err := it.KnownString()
	if err != nil {
		return Text{}, false, err
	}
	it.skipSpace()
	if it.pos >= it.src.Len() || it.src.At(it.pos) != ':' {
		return Text{}, false, it.failf(`expected ":" after object key`)
	}
	it.pos++
	return key, true, nil
}

// Int consumes a number token as an int64. If the pending number has a
// fraction or exponent part, Int reports [ErrNotInteger] without consuming
// it. An integer-shaped number outside the int64 range reports a
// [*UnsupportedError]: arbitrary-precision integers are not represented and
// are never truncated or widened.
func (it *Iter) Int() (int64, error) {
	it.skipSpace()
	end, isFloat, err := it.scanNumber()
	if err != nil {
		return 0, err
	}
	if isFloat {
		return 0, fmt.Errorf("at offset %d: %w", it.pos, ErrNotInteger)
	}
	span := roSlice(it.src, it.pos, end)
	v, err := mem.ParseInt(span, 10, 64)
	if err != nil {
		return 0, &UnsupportedError{
			Offset: it.pos,
			Shape:  fmt.Sprintf("arbitrary-precision integer %q", span.StringCopy()),
		}
	}
	it.pos = end
	return v, nil
}

// Float consumes a number token of any shape as a float64.
func (it *Iter) Float() (float64, error) {
	it.skipSpace()
	end, _, err := it.scanNumber()
	if err != nil {
		return 0, err
	}
	span := roSlice(it.src, it.pos, end)
	v, err := strconv.ParseFloat(span.StringCopy(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Syntax was already checked; out-of-range values saturate to
		// 0 or an infinity, which ParseFloat reports alongside ErrRange.
		return 0, it.failf("invalid number %q", span.StringCopy())
	}
	it.pos = end
	return v, nil
}

// Finish verifies that only whitespace remains in the input.
func (it *Iter) Finish() error {
	it.skipSpace()
	if it.pos < it.src.Len() {
		return it.failf("unexpected %q after top-level value", rune(it.src.At(it.pos)))
	}
	return nil
}

// scanNumber scans the number beginning at the cursor and returns its end
// offset and whether it has a fraction or exponent part. The cursor does
// not advance.
func (it *Iter) scanNumber() (end int, isFloat bool, err error) {
	i, n := it.pos, it.src.Len()
	if i < n && it.src.At(i) == '-' {
		i++
	}
	digStart := i
	for i < n && isDigit(it.src.At(i)) {
		i++
	}
	if i == digStart {
		return 0, false, it.failAt(i, "want digit in number")
	}
	// Extra leading zeroes are disallowed: 0.12 is OK, 01.2 is not.
	if it.src.At(digStart) == '0' && i-digStart > 1 {
		return 0, false, it.failAt(digStart, "extra leading zeroes")
	}

	if i < n && it.src.At(i) == '.' {
		i++
		fracStart := i
		for i < n && isDigit(it.src.At(i)) {
			i++
		}
		if i == fracStart {
			return 0, false, it.failAt(i, "no digits after decimal point")
		}
		isFloat = true
	}

	if i < n && (it.src.At(i) == 'e' || it.src.At(i) == 'E') {
		i++
		if i < n && (it.src.At(i) == '+' || it.src.At(i) == '-') {
			i++
		}
		expStart := i
		for i < n && isDigit(it.src.At(i)) {
			i++
		}
		if i == expStart {
			return 0, false, it.failAt(i, "missing exponent digits")
		}
		isFloat = true
	}
	return i, isFloat, nil
}

// known consumes the single opening byte b, which the caller has already
// peeked. A mismatch is a protocol defect, not an input error.
func (it *Iter) known(b byte) error {
	it.skipSpace()
	if it.pos >= it.src.Len() || it.src.At(it.pos) != b {
		return &DefectError{Offset: it.pos, Message: fmt.Sprintf("cursor is not at %q", rune(b))}
	}
	it.pos++
	return nil
}

func (it *Iter) skipSpace() {
	for it.pos < it.src.Len() && isSpace(it.src.At(it.pos)) {
		it.pos++
	}
}

func (it *Iter) failf(msg string, args ...any) error { return it.failAt(it.pos, msg, args...) }

func (it *Iter) failAt(off int, msg string, args ...any) error {
	return &SyntaxError{Offset: off, Message: fmt.Sprintf(msg, args...)}
}

// roSlice returns the subrange [i, j) of ro without copying.
func roSlice(ro mem.RO, i, j int) mem.RO { return ro.SliceFrom(i).SliceTo(j - i) }

func isSpace(b byte) bool    { return b == ' ' || b == '\r' || b == '\n' || b == '\t' }
func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isNameByte(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
