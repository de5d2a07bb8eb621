// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"fmt"
	"slices"

	"github.com/creachadair/jview"
)

// ToValue converts a plain Go value into a Value. It accepts nil, booleans,
// signed integers, floats, strings, [jview.Text], values that are already a
// Value, []any and map[string]any. Map members are inserted in sorted key
// order so the conversion is deterministic. ToValue panics for any other
// type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case string:
		return String{Text: jview.OwnText(t)}
	case jview.Text:
		return String{Text: t}
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		obj := new(Object)
		for _, key := range keys {
			obj.Set(jview.OwnText(key), ToValue(t[key]))
		}
		return obj
	default:
		panic(fmt.Sprintf("value: cannot convert %T to a Value", v))
	}
}
