// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"errors"
	"fmt"
	"math"

	"github.com/creachadair/jview"
)

// maxDepth bounds container nesting so that a hostile document fails with a
// distinct error instead of exhausting the call stack.
const maxDepth = 10000

// ErrTooDeep is reported when a document nests containers beyond the depth
// limit.
var ErrTooDeep = errors.New("nesting too deep")

// Parse materializes the single JSON document in src into a value tree.
// Strings that appear verbatim in src are borrowed from it without copying;
// see the lifetime note on [Value]. Anything but whitespace after the top
// value is an error.
func Parse(src string) (Value, error) { return parse(jview.NewIterString(src)) }

// ParseBytes materializes the single JSON document in data into a value
// tree. The buffer must not be modified while the returned value is in use,
// since borrowed strings in the tree alias it.
func ParseBytes(data []byte) (Value, error) { return parse(jview.NewIterBytes(data)) }

// MustParse is Parse for known-good documents: it panics on any error.
// It simplifies static fixtures and tests.
func MustParse(src string) Value {
	v, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("value: parse: %v", err))
	}
	return v
}

func parse(it *jview.Iter) (Value, error) {
	v, err := Build(it)
	if err != nil {
		return nil, err
	}
	if err := it.Finish(); err != nil {
		return nil, err
	}
	return v, nil
}

// Build materializes one value from the cursor, leaving it positioned after
// the value. Use Build directly to configure the cursor first, for example
// to enable the Infinity and NaN extensions, or to read several
// concatenated values.
//
// The build is atomic: on any error no partial value is returned, and
// lexical errors from the cursor propagate unchanged.
func Build(it *jview.Iter) (Value, error) {
	kind, err := it.Peek()
	if err != nil {
		return nil, err
	}
	return build(it, kind, 0)
}

// build constructs the value whose first token the caller has already
// peeked as kind.
func build(it *jview.Iter, kind jview.Kind, depth int) (Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("at offset %d: %w", it.Offset(), ErrTooDeep)
	}
	switch kind {
	case jview.Null:
		return Null{}, nil

	case jview.True:
		return Bool(true), nil

	case jview.False:
		return Bool(false), nil

	case jview.Infinity:
		return Float(math.Inf(1)), nil

	case jview.NaN:
		return Float(math.NaN()), nil

	case jview.String:
		text, err := it.KnownString()
		if err != nil {
			return nil, err
		}
		return String{Text: text}, nil

	case jview.Array:
		next, ok, err := it.KnownArray()
		if err != nil {
			return nil, err
		}
		var arr Array
		for ok {
			elt, err := build(it, next, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, elt)
			next, ok, err = it.ArrayStep()
			if err != nil {
				return nil, err
			}
		}
		return arr, nil

	case jview.Object:
		obj := new(Object)
		key, ok, err := it.KnownObject()
		if err != nil {
			return nil, err
		}
		for ok {
			vk, err := it.Peek()
			if err != nil {
				return nil, err
			}
			mv, err := build(it, vk, depth+1)
			if err != nil {
				return nil, err
			}
			obj.Set(key, mv)
			key, ok, err = it.NextKey()
			if err != nil {
				return nil, err
			}
		}
		return obj, nil

	case jview.Number:
		z, err := it.Int()
		if err == nil {
			return Int(z), nil
		} else if !errors.Is(err, jview.ErrNotInteger) {
			return nil, err // includes oversized integers, which are unsupported
		}
		f, err := it.Float()
		if err != nil {
			return nil, err
		}
		return Float(f), nil

	case jview.Minus:
		// The cursor resolves number signs while peeking; observing one here
		// means the cursor and builder disagree about the protocol.
		return nil, &jview.DefectError{Offset: it.Offset(), Message: "unresolved minus token"}

	default:
		return nil, &jview.UnsupportedError{
			Offset: it.Offset(),
			Shape:  fmt.Sprintf("token kind %v", kind),
		}
	}
}
