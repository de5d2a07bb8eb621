// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package value defines a dynamically-typed representation of JSON values,
// and a builder that materializes value trees from a jview cursor while
// borrowing string contents from the input buffer whenever possible.
package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jview"
)

// A Value is an arbitrary JSON value: Null, Bool, Int, Float, String, Array
// or *Object.
//
// A value tree built from an input buffer may share backing memory with
// that buffer (see [jview.Text]); it is valid only while the buffer is live
// and unmodified.
type Value interface {
	// JSON returns the JSON encoding of the value.
	JSON() string

	// Equal reports whether the value has the same content as other.
	// Borrowed and owned strings compare equal by content, and the member
	// order of objects is ignored.
	Equal(other Value) bool
}

// Null is the null constant.
type Null struct{}

func (Null) JSON() string { return "null" }

func (Null) Equal(other Value) bool { _, ok := other.(Null); return ok }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) Equal(other Value) bool { o, ok := other.(Bool); return ok && o == b }

// Value reports the truth value of b.
func (b Bool) Value() bool { return bool(b) }

// An Int is an integer value.
type Int int64

func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

func (z Int) Equal(other Value) bool { o, ok := other.(Int); return ok && o == z }

// Int64 reports the value of z as an int64.
func (z Int) Int64() int64 { return int64(z) }

// A Float is a floating-point value.
type Float float64

func (f Float) JSON() string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0" // keep the encoding float-shaped
	}
	return s
}

func (f Float) Equal(other Value) bool {
	o, ok := other.(Float)
	if !ok {
		return false
	}
	// NaN compares equal to itself so that content equality is reflexive.
	return o == f || (math.IsNaN(float64(o)) && math.IsNaN(float64(f)))
}

// Float64 reports the value of f as a float64.
func (f Float) Float64() float64 { return float64(f) }

// A String is a string value. Its Text is a borrowed view of the input
// buffer when the source string needed no escape processing, and an owned
// copy otherwise.
type String struct{ Text jview.Text }

func (s String) JSON() string { return jview.QuoteText(s.Text) }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o.Text.Equal(s.Text)
}

// Value reports the contents of s as a plain string.
func (s String) Value() string { return s.Text.String() }

// An Array is an ordered sequence of values.
type Array []Value

func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) Equal(other Value) bool {
	o, ok := other.(Array)
	if !ok || len(o) != len(a) {
		return false
	}
	for i, v := range a {
		if !v.Equal(o[i]) {
			return false
		}
	}
	return true
}

// An Object is a collection of key-value members with unique keys. Member
// order records insertion order, but is not part of content equality.
type Object struct {
	Members []Member
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   jview.Text
	Value Value
}

// Set inserts or replaces the member with the given key. A later Set of an
// equal key supersedes the earlier member in place.
func (o *Object) Set(key jview.Text, v Value) {
	for i, m := range o.Members {
		if m.Key.Equal(key) {
			o.Members[i].Value = v
			return
		}
	}
	o.Members = append(o.Members, Member{Key: key, Value: v})
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for i, m := range o.Members {
		if m.Key.EqualString(key) {
			return &o.Members[i]
		}
	}
	return nil
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(jview.QuoteText(m.Key))
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) Equal(other Value) bool {
	p, ok := other.(*Object)
	if !ok || p.Len() != o.Len() {
		return false
	}
	for _, m := range o.Members {
		pm := p.findText(m.Key)
		if pm == nil || !m.Value.Equal(pm.Value) {
			return false
		}
	}
	return true
}

func (o *Object) findText(key jview.Text) *Member {
	for i, m := range o.Members {
		if m.Key.Equal(key) {
			return &o.Members[i]
		}
	}
	return nil
}
