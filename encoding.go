// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jview

import (
	"errors"
	"strings"

	"github.com/creachadair/jview/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return quoteRO(mem.S(src)) }

// QuoteText encodes the contents of t as a JSON string value without
// copying t into an intermediate string.
func QuoteText(t Text) string { return quoteRO(t.RO()) }

func quoteRO(src mem.RO) string {
	var sb strings.Builder
	sb.Grow(src.Len() + 2)
	sb.WriteByte('"')
	sb.Write(escape.Quote(src))
	sb.WriteByte('"')
	return sb.String()
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Malformed escape sequences are reported as errors.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
