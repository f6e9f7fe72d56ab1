package token

import (
	"strings"

	"github.com/laxfmt/laxyaml/debug"
)

// Block scalar styles and chomping indicators.
const (
	Literal = '|'
	Folded  = '>'

	Strip = '-'
	Keep  = '+'
)

// BlockHeader reports whether the text beginning at off is a block scalar
// header: '|' or '>', an optional chomping indicator, and nothing but
// whitespace or a comment before the line end.
func BlockHeader(src []byte, off, lineEnd int) bool {
	if off >= lineEnd || (src[off] != Literal && src[off] != Folded) {
		return false
	}
	i := off + 1
	if i < lineEnd && (src[i] == Strip || src[i] == Keep) {
		i++
	}
	for i < lineEnd && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i == lineEnd || src[i] == '#'
}

// ScanBlock consumes a literal or folded block scalar whose header begins
// at off on line li of d. ctx is the reference indent of the owning
// construct; the first non-blank line after the header establishes the
// block's base indent and must lie beyond ctx, otherwise the block is
// empty. Returns the decoded value and the offset one past the consumed
// text.
//
// Chomping follows the header indicator: '-' strips all trailing
// newlines, '+' keeps trailing blank lines verbatim, and the default
// clips to exactly one trailing newline.
func ScanBlock(d *Doc, off, li, ctx int) (string, int) {
	src := d.src
	lines := d.lines
	hdr := lines[li]
	folded := src[off] == Folded
	chomp := byte(0)
	hdrEnd := off + 1
	if hdrEnd < hdr.End && (src[hdrEnd] == Strip || src[hdrEnd] == Keep) {
		chomp = src[hdrEnd]
		hdrEnd++
	}

	first := d.NextNonBlank(li + 1)
	if first == len(lines) || lines[first].Indent <= ctx {
		return "", hdrEnd
	}
	base := lines[first].Indent
	if debug.Scan() {
		debug.Logf("scan: block at %d, base indent %d\n", off, base)
	}

	var b strings.Builder
	// blank lines between the header and the first content line are
	// leading line breaks in the value
	for i := li + 1; i < first; i++ {
		b.WriteByte('\n')
	}
	blanks := 0
	last := -1 // index of the last content line
	i := first
	for i < len(lines) {
		ln := lines[i]
		if ln.Blank {
			blanks++
			i++
			continue
		}
		if ln.Indent < base {
			break
		}
		if last >= 0 {
			if folded && blanks == 0 {
				b.WriteByte(' ')
			} else {
				joins := blanks
				if !folded {
					joins++
				}
				for ; joins > 0; joins-- {
					b.WriteByte('\n')
				}
			}
		}
		b.Write(src[ln.Start+base : ln.End])
		last = i
		blanks = 0
		i++
	}
	if last < 0 {
		return "", hdrEnd
	}

	core := b.String()
	switch chomp {
	case Strip:
		return core, lines[last].End
	case Keep:
		lastConsumed := last
		if blanks > 0 {
			lastConsumed = i - 1
		}
		end := lines[lastConsumed].Next
		trailing := 0
		for _, c := range src[lines[last].End:end] {
			if c == '\n' {
				trailing++
			}
		}
		return core + strings.Repeat("\n", trailing), end
	default:
		if core == "" {
			return core, lines[last].End
		}
		return core + "\n", lines[last].End
	}
}
