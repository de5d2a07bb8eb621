// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package value

import "fmt"

// Path traverses v by the given path elements and returns the value
// reached. A string element selects the member of an object by key; an int
// element selects an element of an array, with negative values counting
// backward from the end. An empty path returns v itself.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(*Object)
			if !ok {
				return nil, fmt.Errorf("cannot select key %q in %T", t, cur)
			}
			m := obj.Find(t)
			if m == nil {
				return nil, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return nil, fmt.Errorf("cannot index %T", cur)
			}
			idx := t
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return nil, fmt.Errorf("index %d out of range (%d elements)", t, len(arr))
			}
			cur = arr[idx]
		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}
