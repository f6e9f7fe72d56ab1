package parse

import (
	"strings"
	"testing"
)

func TestDiagnosticRanges(t *testing.T) {
	tests := []struct {
		in   string
		code Code
		r    Range
		msg  string
	}{
		{
			in:   "name:\nage: 30",
			code: MissingValue,
			r:    Range{Start: 0, End: 4},
			msg:  `no value for key "name"`,
		},
		{
			in:   "a: 1\na: 2",
			code: DuplicateKey,
			r:    Range{Start: 5, End: 6},
			msg:  `duplicate key "a"`,
		},
		{
			in:   "a: 1\n   b: 2",
			code: UnexpectedIndentation,
			r:    Range{Start: 8, End: 12},
			msg:  "line indented 3 columns beyond its enclosing mapping",
		},
		{
			in:   "{a: }",
			code: MissingValue,
			r:    Range{Start: 1, End: 2},
			msg:  `no value for key "a"`,
		},
	}
	for _, tc := range tests {
		var diags Diagnostics
		ParseString(tc.in, &diags)
		if diags.Len() != 1 {
			t.Errorf("%q: %d diagnostics, want 1", tc.in, diags.Len())
			continue
		}
		dg := diags.Slice()[0]
		if dg.Code != tc.code {
			t.Errorf("%q: code %s, want %s", tc.in, dg.Code, tc.code)
		}
		if dg.Range != tc.r {
			t.Errorf("%q: range %v, want %v", tc.in, dg.Range, tc.r)
		}
		if dg.Message != tc.msg {
			t.Errorf("%q: message %q, want %q", tc.in, dg.Message, tc.msg)
		}
	}
}

func TestDiagnosticOrder(t *testing.T) {
	in := "name:\nname: 1\n    deep: 2"
	var diags Diagnostics
	ParseString(in, &diags)
	want := []Code{MissingValue, DuplicateKey, UnexpectedIndentation}
	got := diags.Slice()
	if len(got) != len(want) {
		t.Fatalf("%d diagnostics, want %d: %v", len(got), len(want), got)
	}
	last := -1
	for i, dg := range got {
		if dg.Code != want[i] {
			t.Errorf("diagnostic %d: code %s, want %s", i, dg.Code, want[i])
		}
		if dg.Range.Start < last {
			t.Errorf("diagnostic %d out of document order", i)
		}
		last = dg.Range.Start
	}
}

func TestDiagnosticError(t *testing.T) {
	d := &Diagnostic{
		Code:    MissingValue,
		Range:   Range{Start: 3, End: 7},
		Message: `no value for key "x"`,
	}
	if !strings.Contains(d.Error(), "missing-value") {
		t.Errorf("Error() = %q", d.Error())
	}
}
