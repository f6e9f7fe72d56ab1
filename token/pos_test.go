package token

import "testing"

func TestNewDoc(t *testing.T) {
	src := "a: 1\n  b: 2\r\n\n# c\nlast"
	d := NewDoc([]byte(src))
	want := []Line{
		{Start: 0, End: 4, Next: 5, Indent: 0},
		{Start: 5, End: 11, Next: 13, Indent: 2},
		{Start: 13, End: 13, Next: 14, Indent: 0, Blank: true},
		{Start: 14, End: 17, Next: 18, Indent: 0, Comment: true},
		{Start: 18, End: 22, Next: 22, Indent: 0},
	}
	lines := d.Lines()
	if len(lines) != len(want) {
		t.Fatalf("%d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestLineIndex(t *testing.T) {
	src := "ab\ncd\nef"
	d := NewDoc([]byte(src))
	for _, tc := range []struct{ off, want int }{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {7, 2}, {100, 2},
	} {
		if got := d.LineIndex(tc.off); got != tc.want {
			t.Errorf("LineIndex(%d) = %d, want %d", tc.off, got, tc.want)
		}
	}
}

func TestLineColRoundTrip(t *testing.T) {
	src := "ab\ncd\nef"
	d := NewDoc([]byte(src))
	for off := 0; off < len(src); off++ {
		line, col := d.LineCol(off)
		if got := d.Offset(line, col); got != off && src[off] != '\n' {
			t.Errorf("Offset(LineCol(%d)) = %d", off, got)
		}
	}
	if got := d.Offset(99, 0); got != len(src) {
		t.Errorf("Offset past end = %d", got)
	}
	if got := d.Offset(0, 99); got != 2 {
		t.Errorf("Offset with huge col = %d, want line end 2", got)
	}
}

func TestNextSignificant(t *testing.T) {
	src := "\n# c\n  \nx\n# d"
	d := NewDoc([]byte(src))
	if got := d.NextSignificant(0); got != 3 {
		t.Errorf("NextSignificant(0) = %d, want 3", got)
	}
	if got := d.NextSignificant(4); got != len(d.Lines()) {
		t.Errorf("NextSignificant(4) = %d, want end", got)
	}
	// comment lines are content for block scalars
	if got := d.NextNonBlank(0); got != 1 {
		t.Errorf("NextNonBlank(0) = %d, want 1", got)
	}
}
