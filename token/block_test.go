package token

import (
	"strings"
	"testing"
)

func TestBlockHeader(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"|", true},
		{"|-", true},
		{"|+", true},
		{">", true},
		{">- ", true},
		{"| # comment", true},
		{"|x", false},
		{"|- x", false},
		{"-", false},
		{"", false},
	} {
		if got := BlockHeader([]byte(tc.in), 0, len(tc.in)); got != tc.want {
			t.Errorf("BlockHeader(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// scanBlock runs ScanBlock over the header found on the first line of in.
func scanBlock(t *testing.T, in string, ctx int) (string, int) {
	t.Helper()
	d := NewDoc([]byte(in))
	off := strings.IndexAny(in, "|>")
	if off < 0 {
		t.Fatalf("no header in %q", in)
	}
	return ScanBlock(d, off, d.LineIndex(off), ctx)
}

func TestScanBlockChomping(t *testing.T) {
	tests := []struct {
		in  string
		val string
	}{
		{"|-\n  a\n  b\n", "a\nb"},
		{"|\n  a\n  b\n", "a\nb\n"},
		{"|+\n  a\n  b\n", "a\nb\n"},
		{"|+\n  a\n\n\n", "a\n\n\n"},
		{"|-\n  a\n\n\n", "a"},
		{"|\n  a\n\n\n", "a\n"},
	}
	for _, tc := range tests {
		val, _ := scanBlock(t, tc.in, -1)
		if val != tc.val {
			t.Errorf("ScanBlock(%q) = %q, want %q", tc.in, val, tc.val)
		}
	}
}

func TestScanBlockFolded(t *testing.T) {
	tests := []struct {
		in  string
		val string
	}{
		{">\n  a\n  b\n", "a b\n"},
		{">\n  a\n  b\n\n  c\n", "a b\nc\n"},
		{">\n  a\n\n\n  b\n", "a\n\nb\n"},
		{">-\n  a\n  b\n", "a b"},
	}
	for _, tc := range tests {
		val, _ := scanBlock(t, tc.in, -1)
		if val != tc.val {
			t.Errorf("ScanBlock(%q) = %q, want %q", tc.in, val, tc.val)
		}
	}
}

func TestScanBlockStructure(t *testing.T) {
	// deeper indentation within the block is content, relative to the
	// first content line
	val, _ := scanBlock(t, "|\n  a\n    b\n", -1)
	if val != "a\n  b\n" {
		t.Errorf("nested indent: %q", val)
	}

	// leading blank lines become leading breaks
	val, _ = scanBlock(t, "|\n\n  a\n", -1)
	if val != "\na\n" {
		t.Errorf("leading blank: %q", val)
	}

	// comment-looking lines inside a block are content
	val, _ = scanBlock(t, "|\n  # not a comment\n", -1)
	if val != "# not a comment\n" {
		t.Errorf("hash content: %q", val)
	}

	// no content indented past ctx means an empty block ending at the
	// header
	in := "k: |\nnext: 1"
	d := NewDoc([]byte(in))
	val, end := ScanBlock(d, 3, 0, 0)
	if val != "" || end != 4 {
		t.Errorf("empty block = (%q, %d), want (\"\", 4)", val, end)
	}
}

func TestScanBlockEnd(t *testing.T) {
	in := "|-\n  a\nnext"
	val, end := scanBlock(t, in, -1)
	if val != "a" {
		t.Fatalf("val %q", val)
	}
	// consumption stops before the dedented line
	if want := strings.Index(in, "\nnext"); end != want {
		t.Errorf("end %d, want %d", end, want)
	}
}
