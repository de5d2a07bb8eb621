// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jview

import "go4.org/mem"

// A Text is the decoded content of a JSON string. A Text is either borrowed,
// meaning it is a zero-copy view of a contiguous range of the input buffer
// the cursor was reading, or owned, meaning it has independent backing
// storage.
//
// A borrowed Text can only be produced by an [Iter] slicing its own input;
// there is no way to construct one from unrelated storage. A Text obtained
// from a cursor is valid only as long as the cursor's input buffer, and the
// buffer must not be modified while any borrowed Text from it is in use.
//
// Equality of Texts is defined purely by content; the borrowed and owned
// variants are interchangeable for comparison.
type Text struct {
	ro       mem.RO
	borrowed bool
}

// OwnText constructs an owned Text with the contents of s.
func OwnText(s string) Text { return Text{ro: mem.S(s)} }

// ownBytes constructs an owned Text wrapping data. The caller must not
// retain data.
func ownBytes(data []byte) Text { return Text{ro: mem.B(data)} }

// borrow constructs a borrowed Text. The argument must be a slice of the
// cursor's input; it is the only constructor for the borrowed variant.
func borrow(ro mem.RO) Text { return Text{ro: ro, borrowed: true} }

// IsBorrowed reports whether t is a zero-copy view of a cursor's input
// buffer.
func (t Text) IsBorrowed() bool { return t.borrowed }

// Len reports the length of t in bytes.
func (t Text) Len() int { return t.ro.Len() }

// RO returns a read-only view of the contents of t without copying.
func (t Text) RO() mem.RO { return t.ro }

// String returns a copy of the contents of t as a plain string.
func (t Text) String() string { return t.ro.StringCopy() }

// Bytes returns a copy of the contents of t.
func (t Text) Bytes() []byte { return mem.Append(nil, t.ro) }

// Equal reports whether t and o have equal contents, regardless of variant.
func (t Text) Equal(o Text) bool { return t.ro.Equal(o.ro) }

// EqualString reports whether the contents of t equal s.
func (t Text) EqualString(s string) bool { return t.ro.Equal(mem.S(s)) }
