package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"a", Path{{Field: "a"}}},
		{"a.b", Path{{Field: "a"}, {Field: "b"}}},
		{"[0]", Path{{Index: 0, IsIndex: true}}},
		{"a[3]", Path{{Field: "a"}, {Index: 3, IsIndex: true}}},
		{
			"spec.containers[0].image",
			Path{
				{Field: "spec"},
				{Field: "containers"},
				{Index: 0, IsIndex: true},
				{Field: "image"},
			},
		},
		{"a[0][1]", Path{{Field: "a"}, {Index: 0, IsIndex: true}, {Index: 1, IsIndex: true}}},
	}
	for _, tc := range tests {
		got, err := ParsePath(tc.in)
		if err != nil {
			t.Errorf("ParsePath(%q): %s", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("ParsePath(%q) (-want +got):\n%s", tc.in, d)
			continue
		}
		if got.String() != tc.in {
			t.Errorf("ParsePath(%q).String() = %q", tc.in, got.String())
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{"", ".", "a.", ".a", "a[", "a[0", "a[x]", "a[]"} {
		p, err := ParsePath(in)
		if err == nil {
			t.Errorf("ParsePath(%q) = %v, want error", in, p)
			continue
		}
		if !errors.Is(err, ErrPath) {
			t.Errorf("ParsePath(%q) error %q does not wrap ErrPath", in, err)
		}
	}
}

func TestLookup(t *testing.T) {
	root := testTree()
	tests := []struct {
		path string
		want string
	}{
		{"a", "1"},
		{"items[0]", "x"},
		{"items[1]", "y"},
	}
	for _, tc := range tests {
		p, err := ParsePath(tc.path)
		if err != nil {
			t.Fatal(err)
		}
		n, err := p.Lookup(root)
		if err != nil {
			t.Errorf("Lookup(%q): %s", tc.path, err)
			continue
		}
		s, ok := n.(*Scalar)
		if !ok || s.Value != tc.want {
			t.Errorf("Lookup(%q) = %v, want scalar %q", tc.path, n, tc.want)
		}
	}
}

func TestLookupErrors(t *testing.T) {
	root := testTree()
	for _, path := range []string{"missing", "items.x", "a[0]", "items[2]", "items[0].deep"} {
		p, err := ParsePath(path)
		if err != nil {
			t.Fatal(err)
		}
		n, err := p.Lookup(root)
		if err == nil {
			t.Errorf("Lookup(%q) = %v, want error", path, n)
			continue
		}
		if !errors.Is(err, ErrPath) {
			t.Errorf("Lookup(%q) error %q does not wrap ErrPath", path, err)
		}
	}
}
