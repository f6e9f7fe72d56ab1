package token

import (
	"sort"

	"github.com/laxfmt/laxyaml/debug"
)

// Line describes one physical line of input. End excludes the line
// terminator; a '\r' before the '\n' belongs to the terminator. Next is
// the offset of the first byte of the following line, or len(src) on the
// last line.
type Line struct {
	Start, End, Next int

	// Indent is the number of leading spaces.
	Indent int

	// Blank means the line holds only whitespace.
	Blank bool

	// Comment means the first non-space byte is '#'.
	Comment bool
}

// Doc indexes an input buffer for line structure and offset translation.
type Doc struct {
	src   []byte
	lines []Line
}

func NewDoc(src []byte) *Doc {
	d := &Doc{src: src}
	n := len(src)
	i := 0
	for i < n {
		ln := Line{Start: i}
		j := i
		for j < n && src[j] != '\n' {
			j++
		}
		if j < n {
			ln.Next = j + 1
		} else {
			ln.Next = n
		}
		end := j
		if end > i && src[end-1] == '\r' {
			end--
		}
		ln.End = end
		k := i
		for k < end && src[k] == ' ' {
			k++
		}
		ln.Indent = k - i
		for k < end && (src[k] == ' ' || src[k] == '\t') {
			k++
		}
		ln.Blank = k == end
		if !ln.Blank && src[ln.Start+ln.Indent] == '#' {
			ln.Comment = true
		}
		d.lines = append(d.lines, ln)
		i = ln.Next
	}
	if debug.Scan() {
		debug.Logf("scan: %d bytes, %d lines\n", n, len(d.lines))
	}
	return d
}

func (d *Doc) Src() []byte {
	return d.src
}

func (d *Doc) Lines() []Line {
	return d.lines
}

// LineIndex returns the index of the line containing off. Offsets at or
// past the end of input map to the last line.
func (d *Doc) LineIndex(off int) int {
	n := len(d.lines)
	if n == 0 {
		return 0
	}
	i := sort.Search(n, func(i int) bool {
		return d.lines[i].Next > off
	})
	if i == n {
		return n - 1
	}
	return i
}

// LineCol translates a byte offset into a zero-based line and column.
func (d *Doc) LineCol(off int) (int, int) {
	if len(d.lines) == 0 {
		return 0, 0
	}
	i := d.LineIndex(off)
	col := off - d.lines[i].Start
	if col < 0 {
		col = 0
	}
	return i, col
}

// Offset translates a zero-based line and column back into a byte offset,
// clamped to the document bounds.
func (d *Doc) Offset(line, col int) int {
	if len(d.lines) == 0 {
		return 0
	}
	if line < 0 {
		line = 0
	}
	if line >= len(d.lines) {
		return len(d.src)
	}
	ln := d.lines[line]
	off := ln.Start + col
	if off > ln.End {
		off = ln.End
	}
	return off
}

// NextSignificant returns the index of the first line at or after i that
// is neither blank nor comment-only, or len(lines) when none remains.
func (d *Doc) NextSignificant(i int) int {
	for i < len(d.lines) {
		ln := &d.lines[i]
		if !ln.Blank && !ln.Comment {
			return i
		}
		i++
	}
	return i
}

// NextNonBlank is like NextSignificant except comment-only lines count as
// content; block scalars use it because '#' has no meaning inside them.
func (d *Doc) NextNonBlank(i int) int {
	for i < len(d.lines) {
		if !d.lines[i].Blank {
			return i
		}
		i++
	}
	return i
}
