// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jview_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/jview"
	"github.com/google/go-cmp/cmp"
)

func TestPeek(t *testing.T) {
	tests := []struct {
		input string
		want  jview.Kind
	}{
		{"null", jview.Null},
		{"  true", jview.True},
		{"\n\t false", jview.False},
		{`"hello"`, jview.String},
		{"[1, 2]", jview.Array},
		{`{"a": 1}`, jview.Object},
		{"0", jview.Number},
		{"42", jview.Number},
		{"-15", jview.Number},
		{"3.25e-2", jview.Number},
	}
	for _, tc := range tests {
		it := jview.NewIterString(tc.input)
		got, err := it.Peek()
		if err != nil {
			t.Errorf("Peek %q: unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("Peek %q: got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestPeekErrors(t *testing.T) {
	tests := []string{
		"",          // empty input
		"   ",       // nothing but whitespace
		"nul",       // truncated constant
		"falsify",   // overlong constant
		"truth",     // misspelled constant
		"-",         // bare sign
		"-x",        // sign without digit
		"Infinity",  // extension, not enabled
		"NaN",       // extension, not enabled
		"%",         // unexpected byte
		"]",         // structural punctuation out of place
		",",         // structural punctuation out of place
		"'hello'",   // wrong quotation marks
		"\x00null",  // control byte
		"undefined", // not a JSON constant
	}
	for _, input := range tests {
		it := jview.NewIterString(input)
		kind, err := it.Peek()
		if err == nil {
			t.Errorf("Peek %q: got %v, want error", input, kind)
			continue
		}
		var serr *jview.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Peek %q: error %v is not a SyntaxError", input, err)
		}
	}
}

func TestPeekConsumesConstants(t *testing.T) {
	// After peeking a literal constant, the cursor must stand past it.
	it := jview.NewIterString("  null  ")
	if kind, err := it.Peek(); err != nil || kind != jview.Null {
		t.Fatalf("Peek: got %v, %v; want %v, nil", kind, err, jview.Null)
	}
	if err := it.Finish(); err != nil {
		t.Errorf("Finish: unexpected error: %v", err)
	}
}

func TestKnownString(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		borrowed bool
	}{
		{`""`, "", true},
		{`"a b c"`, "a b c", true},
		{`"pätörzs"`, "pätörzs", true},
		{`"a\nb"`, "a\nb", false},
		{`"\""`, `"`, false},
		{`"\\"`, `\`, false},
		{`"\u0041"`, "A", false},
		{`"\u00e9"`, "é", false},
		{`"\ud83d\ude00"`, "😀", false}, // surrogate pair
		{`"tail\t"`, "tail\t", false},
	}
	for _, tc := range tests {
		it := jview.NewIterString(tc.input)
		if kind, err := it.Peek(); err != nil || kind != jview.String {
			t.Errorf("Peek %q: got %v, %v; want %v, nil", tc.input, kind, err, jview.String)
			continue
		}
		text, err := it.KnownString()
		if err != nil {
			t.Errorf("KnownString %q: unexpected error: %v", tc.input, err)
			continue
		}
		if got := text.String(); got != tc.want {
			t.Errorf("KnownString %q: got %q, want %q", tc.input, got, tc.want)
		}
		if text.IsBorrowed() != tc.borrowed {
			t.Errorf("KnownString %q: borrowed=%v, want %v", tc.input, text.IsBorrowed(), tc.borrowed)
		}
		if err := it.Finish(); err != nil {
			t.Errorf("Finish %q: unexpected error: %v", tc.input, err)
		}
	}
}

func TestKnownStringErrors(t *testing.T) {
	tests := []string{
		`"abc`,        // unterminated
		`"abc\`,       // unterminated at escape
		`"a` + "\x01", // unescaped control
		`"a\x22"`,     // invalid escape letter
		`"\u12"`,      // truncated hex escape
		`"\uqqqq"`,    // non-hex digits
		`"\ud83d"`,    // unpaired surrogate
		`"\ud83d\n"`,  // surrogate followed by non-escape
		"\"a\xffz\"",  // invalid UTF-8
	}
	for _, input := range tests {
		it := jview.NewIterString(input)
		text, err := it.KnownString()
		if err == nil {
			t.Errorf("KnownString %q: got %q, want error", input, text.String())
			continue
		}
		var serr *jview.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("KnownString %q: error %v is not a SyntaxError", input, err)
		}
	}
}

func TestKnownStringDefect(t *testing.T) {
	it := jview.NewIterString("[1]")
	_, err := it.KnownString()
	var derr *jview.DefectError
	if !errors.As(err, &derr) {
		t.Errorf("KnownString on array: got error %v, want DefectError", err)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"-15", -15},
		{"9223372036854775807", 9223372036854775807},
		{"-9223372036854775808", -9223372036854775808},
	}
	for _, tc := range tests {
		it := jview.NewIterString(tc.input)
		got, err := it.Int()
		if err != nil {
			t.Errorf("Int %q: unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("Int %q: got %d, want %d", tc.input, got, tc.want)
		}
		if err := it.Finish(); err != nil {
			t.Errorf("Finish %q: unexpected error: %v", tc.input, err)
		}
	}
}

func TestIntNotInteger(t *testing.T) {
	// Float-shaped numbers report ErrNotInteger without moving the cursor,
	// so Float can consume the same token.
	for _, input := range []string{"42.5", "1e3", "-0.25", "6.02E+23"} {
		it := jview.NewIterString(input)
		if _, err := it.Int(); !errors.Is(err, jview.ErrNotInteger) {
			t.Errorf("Int %q: got error %v, want ErrNotInteger", input, err)
			continue
		}
		if _, err := it.Float(); err != nil {
			t.Errorf("Float %q after Int: unexpected error: %v", input, err)
		}
	}
}

func TestIntTooBig(t *testing.T) {
	// One beyond each end of the int64 range, and a much larger form.
	for _, input := range []string{
		"9223372036854775808",
		"-9223372036854775809",
		"340282366920938463463374607431768211456",
	} {
		it := jview.NewIterString(input)
		_, err := it.Int()
		var uerr *jview.UnsupportedError
		if !errors.As(err, &uerr) {
			t.Errorf("Int %q: got error %v, want UnsupportedError", input, err)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"42", 42},
		{"42.0", 42},
		{"-1.5", -1.5},
		{"5e+9", 5e+9},
		{"-0.001E-10", -0.001e-10},
	}
	for _, tc := range tests {
		it := jview.NewIterString(tc.input)
		got, err := it.Float()
		if err != nil {
			t.Errorf("Float %q: unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("Float %q: got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFloatRange(t *testing.T) {
	// Magnitudes outside the float64 range are still valid numbers; they
	// saturate to an infinity or to zero rather than failing.
	tests := []struct {
		input string
		want  float64
	}{
		{"1e999", math.Inf(1)},
		{"-1e999", math.Inf(-1)},
		{"1e-999", 0},
		{"-1e-999", 0},
	}
	for _, tc := range tests {
		it := jview.NewIterString(tc.input)
		got, err := it.Float()
		if err != nil {
			t.Errorf("Float %q: unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("Float %q: got %v, want %v", tc.input, got, tc.want)
		}
		if err := it.Finish(); err != nil {
			t.Errorf("Finish after %q: unexpected error: %v", tc.input, err)
		}
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []string{
		"01",    // extra leading zero
		"-01.5", // extra leading zero with sign
		"00.1",  // extra leading zeroes
		"1.",    // no digits after decimal point
		"1.e5",  // no digits after decimal point
		"2e",    // missing exponent digits
		"2e+",   // missing exponent digits after sign
	}
	for _, input := range tests {
		it := jview.NewIterString(input)
		if got, err := it.Float(); err == nil {
			t.Errorf("Float %q: got %v, want error", input, got)
		}
	}
}

func TestArrayWalk(t *testing.T) {
	it := jview.NewIterString(` [ 1 , "two" , null ] `)
	if kind, err := it.Peek(); err != nil || kind != jview.Array {
		t.Fatalf("Peek: got %v, %v; want %v, nil", kind, err, jview.Array)
	}

	var kinds []jview.Kind
	kind, ok, err := it.KnownArray()
	for ok {
		if err != nil {
			t.Fatalf("walk: unexpected error: %v", err)
		}
		kinds = append(kinds, kind)
		switch kind {
		case jview.Number:
			if _, err := it.Int(); err != nil {
				t.Fatalf("Int: unexpected error: %v", err)
			}
		case jview.String:
			if _, err := it.KnownString(); err != nil {
				t.Fatalf("KnownString: unexpected error: %v", err)
			}
		}
		kind, ok, err = it.ArrayStep()
	}
	if err != nil {
		t.Fatalf("ArrayStep: unexpected error: %v", err)
	}
	want := []jview.Kind{jview.Number, jview.String, jview.Null}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Element kinds (-want, +got):\n%s", diff)
	}
	if err := it.Finish(); err != nil {
		t.Errorf("Finish: unexpected error: %v", err)
	}
}

func TestEmptyContainers(t *testing.T) {
	t.Run("Array", func(t *testing.T) {
		it := jview.NewIterString("[]")
		if _, ok, err := it.KnownArray(); err != nil || ok {
			t.Errorf("KnownArray: got ok=%v, err=%v; want false, nil", ok, err)
		}
	})
	t.Run("Object", func(t *testing.T) {
		it := jview.NewIterString("{}")
		if _, ok, err := it.KnownObject(); err != nil || ok {
			t.Errorf("KnownObject: got ok=%v, err=%v; want false, nil", ok, err)
		}
	})
}

func TestObjectWalk(t *testing.T) {
	it := jview.NewIterString(`{"a": 1, "b!": true}`)

	var keys []string
	key, ok, err := it.KnownObject()
	for ok {
		if err != nil {
			t.Fatalf("walk: unexpected error: %v", err)
		}
		keys = append(keys, key.String())
		kind, err := it.Peek()
		if err != nil {
			t.Fatalf("Peek: unexpected error: %v", err)
		}
		if kind == jview.Number {
			if _, err := it.Int(); err != nil {
				t.Fatalf("Int: unexpected error: %v", err)
			}
		}
		key, ok, err = it.NextKey()
	}
	if err != nil {
		t.Fatalf("NextKey: unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b!"}, keys); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if err := it.Finish(); err != nil {
		t.Errorf("Finish: unexpected error: %v", err)
	}
}

func TestStructureErrors(t *testing.T) {
	t.Run("MissingColon", func(t *testing.T) {
		it := jview.NewIterString(`{"a" 1}`)
		if _, ok, err := it.KnownObject(); err == nil {
			t.Errorf("KnownObject: got ok=%v, want error", ok)
		}
	})
	t.Run("BareKey", func(t *testing.T) {
		it := jview.NewIterString(`{a: 1}`)
		if _, ok, err := it.KnownObject(); err == nil {
			t.Errorf("KnownObject: got ok=%v, want error", ok)
		}
	})
	t.Run("UnterminatedArray", func(t *testing.T) {
		it := jview.NewIterString(`[1`)
		if _, _, err := it.KnownArray(); err != nil {
			t.Fatalf("KnownArray: unexpected error: %v", err)
		}
		if _, err := it.Int(); err != nil {
			t.Fatalf("Int: unexpected error: %v", err)
		}
		if _, ok, err := it.ArrayStep(); err == nil {
			t.Errorf("ArrayStep: got ok=%v, want error", ok)
		}
	})
	t.Run("TrailingComma", func(t *testing.T) {
		it := jview.NewIterString(`[1,]`)
		if _, _, err := it.KnownArray(); err != nil {
			t.Fatalf("KnownArray: unexpected error: %v", err)
		}
		if _, err := it.Int(); err != nil {
			t.Fatalf("Int: unexpected error: %v", err)
		}
		if _, ok, err := it.ArrayStep(); err == nil {
			t.Errorf("ArrayStep: got ok=%v, want error", ok)
		}
	})
}

func TestExtensions(t *testing.T) {
	it := jview.NewIterString("Infinity")
	it.AllowExtensions(true)
	if kind, err := it.Peek(); err != nil || kind != jview.Infinity {
		t.Errorf("Peek Infinity: got %v, %v; want %v, nil", kind, err, jview.Infinity)
	}

	it = jview.NewIterString("NaN")
	it.AllowExtensions(true)
	if kind, err := it.Peek(); err != nil || kind != jview.NaN {
		t.Errorf("Peek NaN: got %v, %v; want %v, nil", kind, err, jview.NaN)
	}

	// A negative Infinity is not recognized even with extensions enabled.
	it = jview.NewIterString("-Infinity")
	it.AllowExtensions(true)
	if kind, err := it.Peek(); err == nil {
		t.Errorf("Peek -Infinity: got %v, want error", kind)
	}
}

func TestFinish(t *testing.T) {
	it := jview.NewIterString(`"done" x`)
	if _, err := it.KnownString(); err != nil {
		t.Fatalf("KnownString: unexpected error: %v", err)
	}
	if err := it.Finish(); err == nil {
		t.Error("Finish: got nil, want error for trailing garbage")
	}
}

func TestErrorOffsets(t *testing.T) {
	it := jview.NewIterString(`   %`)
	_, err := it.Peek()
	var serr *jview.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Peek: error %v is not a SyntaxError", err)
	}
	if serr.Offset != 3 {
		t.Errorf("Offset: got %d, want 3", serr.Offset)
	}
}
