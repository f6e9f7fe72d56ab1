package encode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/parse"
)

type encTest struct {
	in   string
	want string
}

var encTests = []encTest{
	{"a: 1\nb: 2", "a: 1\nb: 2\n"},
	{"a:\n  b: 1", "a:\n  b: 1\n"},
	{"a: {b: 1}", "a:\n  b: 1\n"},
	{"{}", "{}\n"},
	{"a: {}", "a: {}\n"},
	{"a: []", "a: []\n"},
	{"- x\n- y", "- x\n- y\n"},
	{"- a: 1\n  b: 2", "- a: 1\n  b: 2\n"},
	{"- - a", "- - a\n"},
	{"a:\n- x\n- y", "a:\n  - x\n  - y\n"},
	{"{a: 1, b: [x, y]}", "a: 1\nb:\n  - x\n  - y\n"},

	// Scalar normalization.
	{"a: 'x: y'", "a: \"x: y\"\n"},
	{`"k": v`, "k: v\n"},
	{"a:", "a: \"\"\n"},
	{"a: 1 # comment", "a: 1\n"},
	{"a: >-\n  x\n  y", "a: x y\n"},

	// Block literal style and chomping follow the trailing newlines.
	{"a: |-\n  x\n  y", "a: |-\n  x\n  y\n"},
	{"a: |\n  x", "a: |\n  x\n"},
	{"a: |+\n  x\n\n", "a: |+\n  x\n\n"},
	{"a: |+\n  x\n  y\n\n", "a: |+\n  x\n  y\n\n"},
	{"a: |\n  x\n\n  y", "a: |\n  x\n\n  y\n"},

	// Values a block literal cannot carry stay quoted.
	{`a: "\n"`, "a: \"\\n\"\n"},
	{`a: " x\ny"`, "a: \" x\\ny\"\n"},
}

func TestEncode(t *testing.T) {
	for _, tc := range encTests {
		node := parse.ParseString(tc.in, nil)
		buf := bytes.NewBuffer(nil)
		if err := Encode(node, buf); err != nil {
			t.Errorf("%q: %s", tc.in, err)
			continue
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("encode %q:\ngot  %q\nwant %q", tc.in, got, tc.want)
		}
	}
}

// Encoded output parses back to the same plain value, and a second
// encode of the re-parse is byte identical.
func TestEncodeRoundTrip(t *testing.T) {
	for _, tc := range encTests {
		node := parse.ParseString(tc.in, nil)
		buf := bytes.NewBuffer(nil)
		if err := Encode(node, buf); err != nil {
			t.Fatal(err)
		}
		var diags parse.Diagnostics
		back := parse.Parse(buf.Bytes(), &diags)
		if diags.Len() > 0 {
			t.Errorf("%q: re-parse produced diagnostics: %v", tc.in, diags)
			continue
		}
		if d := cmp.Diff(ast.Plain(node), ast.Plain(back)); d != "" {
			t.Errorf("%q: plain value changed (-orig +reparsed):\n%s", tc.in, d)
			continue
		}
		buf2 := bytes.NewBuffer(nil)
		if err := Encode(back, buf2); err != nil {
			t.Fatal(err)
		}
		if buf.String() != buf2.String() {
			t.Errorf("%q: not a fixpoint:\nfirst  %q\nsecond %q", tc.in, buf.String(), buf2.String())
		}
	}
}

func TestEncodeNil(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(nil, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("nil node wrote %q", buf.String())
	}
}

func TestEncodeIndent(t *testing.T) {
	node := parse.ParseString("a:\n  b: 1", nil)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeIndent(4)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a:\n    b: 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeColorEscapes(t *testing.T) {
	node := parse.ParseString("a: 100%", nil)
	buf := bytes.NewBuffer(nil)
	err := Encode(node, buf, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("100%")) {
		t.Errorf("percent sign mangled in %q", buf.String())
	}
}

func TestMustString(t *testing.T) {
	node := parse.ParseString("a: 1\nb: 2", nil)
	if got, want := MustString(node), "a: 1\nb: 2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
