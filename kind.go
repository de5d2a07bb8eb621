// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jview

// Kind is the kind of a lexical token in the JSON grammar, as classified by
// the Peek method of an [Iter].
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid  Kind = iota // invalid or no token
	Null                 // constant: null
	True                 // constant: true
	False                // constant: false
	String               // quoted string
	Number               // number, integer or floating-point
	Array                // array opening "["
	Object               // object opening "{"
	Minus                // unresolved number sign (never produced by Peek)
	Infinity             // extension constant: Infinity
	NaN                  // extension constant: NaN
)

var kindStr = [...]string{
	Invalid:  "invalid token",
	Null:     "null",
	True:     "true",
	False:    "false",
	String:   "string",
	Number:   "number",
	Array:    `"["`,
	Object:   `"{"`,
	Minus:    `"-"`,
	Infinity: "Infinity",
	NaN:      "NaN",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}
