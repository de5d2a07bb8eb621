// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles encoding and decoding of JSON string escapes.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte sequence containing the JSON encoding of a string,
// with the enclosing double quotation marks already removed, into a freshly
// allocated buffer.
//
// Escape sequences are replaced with their unescaped equivalents, with
// surrogate pairs of \u escapes combined into a single rune. Unlike the
// unquoters of the permissive variety, Unquote reports an error for any
// malformed escape rather than substituting a replacement rune: the caller
// treats decoding failures as lexical errors.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeHexRune(src)
			if err != nil {
				return nil, err
			}
			src = rest
			putRune(r)
		default:
			return nil, fmt.Errorf("invalid %q after escape", rune(b))
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeHexRune decodes the four hex digits of a \u escape, combining a
// surrogate pair with its required successor escape. It returns the decoded
// rune and the unconsumed remainder of src.
func decodeHexRune(src mem.RO) (rune, mem.RO, error) {
	v, err := parseHex4(src)
	if err != nil {
		return 0, src, err
	}
	src = src.SliceFrom(4)
	if !utf16.IsSurrogate(v) {
		return v, src, nil
	}

	// A high surrogate must be followed by \uXXXX encoding a low surrogate;
	// everything else is unpaired.
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, src, fmt.Errorf("unpaired surrogate %q", v)
	}
	v2, err := parseHex4(src.SliceFrom(2))
	if err != nil {
		return 0, src, err
	}
	r := utf16.DecodeRune(v, v2)
	if r == utf8.RuneError {
		return 0, src, fmt.Errorf("invalid surrogate pair %q, %q", v, v2)
	}
	return r, src.SliceFrom(6), nil
}

func parseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", rune(b))
		}
	}
	return v, nil
}

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src with the escapes required for inclusion in a JSON
// string. The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		if r < utf8.RuneSelf {
			switch {
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					buf = append(buf, '\\', b)
				} else {
					buf = append(buf, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			case r == '\\' || r == '"':
				buf = append(buf, '\\', byte(r))
			default:
				buf = append(buf, byte(r))
			}
			continue
		}

		switch r {
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			var rbuf [utf8.UTFMax]byte
			n := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:n]...)
		}
	}
	return buf
}
