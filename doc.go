// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jview implements a pull-style JSON cursor over an in-memory
// buffer, designed so that strings can be materialized as zero-copy views
// of the input.
//
// # Cursor
//
// The Iter type is a cursor over a single JSON document. The caller peeks
// the kind of the next token, then consumes the token with the matching
// Known method:
//
//	it := jview.NewIterBytes(data)
//	kind, err := it.Peek()
//	...
//	switch kind {
//	case jview.String:
//	   text, err := it.KnownString()
//	   ...
//	}
//
// Containers are consumed stepwise. KnownArray consumes the opening bracket
// and reports the kind of the first element, if any; after consuming an
// element, ArrayStep reports the kind of the next one or the end of the
// array. KnownObject and NextKey do the same for objects, yielding member
// keys; the member's value follows under the cursor, beginning with a fresh
// Peek.
//
// Numbers are disambiguated by the consumer: Int consumes an
// integer-shaped number, reporting ErrNotInteger (without consuming) when
// the token has a fraction or exponent part, in which case Float consumes
// it instead. Integers that do not fit in an int64 are unsupported and
// reported as such, never silently truncated or widened.
//
// All lexical errors carry the byte offset at which they were detected.
//
// # Text
//
// String tokens decode to a Text, which is either a borrowed zero-copy view
// of the input buffer (when the string needed no escape processing) or an
// owned copy (when unescaping forced an allocation). Borrowed texts alias
// the input: they are valid only while the input buffer is live and
// unmodified. Texts compare by content regardless of variant.
//
// # Values
//
// The value subpackage materializes complete JSON documents into dynamic
// value trees using this cursor, preserving the borrowed-or-owned split for
// every string in the tree.
package jview
