package parse

import (
	"strings"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/token"
)

// quoted parses a single or double quoted scalar at off, bounded to its
// physical line. Unterminated quotes consume to the line end, silently.
func (p *parser) quoted(off int) *ast.Scalar {
	lineEnd := p.lines[p.doc.LineIndex(off)].End
	var (
		val string
		end int
		f   ast.ScalarFormat
	)
	if p.src[off] == '"' {
		val, end = token.ScanDouble(p.src, off, lineEnd)
		f = ast.FormatDouble
	} else {
		val, end = token.ScanSingle(p.src, off, lineEnd)
		f = ast.FormatSingle
	}
	return &ast.Scalar{
		Start:  off,
		End:    end,
		Value:  val,
		Raw:    string(p.src[off:end]),
		Format: f,
	}
}

// blockScalar parses a literal or folded block scalar whose header is at
// off. ctx bounds the content: the base indent must lie beyond it.
func (p *parser) blockScalar(off, ctx int) *ast.Scalar {
	li := p.doc.LineIndex(off)
	val, end := token.ScanBlock(p.doc, off, li, ctx)
	f := ast.FormatLiteral
	if p.src[off] == token.Folded {
		f = ast.FormatFolded
	}
	return &ast.Scalar{
		Start:  off,
		End:    end,
		Value:  val,
		Raw:    string(p.src[off:end]),
		Format: f,
	}
}

// plain parses an unquoted scalar at off, including multi-line
// continuation. A following line continues the scalar when it is indented
// strictly beyond ctx and is not itself a mapping key, a sequence marker,
// or a comment. Continuation joins lines with a single space; blank lines
// become literal newlines, as in folded block scalars.
func (p *parser) plain(off, ctx int) *ast.Scalar {
	li := p.doc.LineIndex(off)
	end := p.contentEnd(off, li)
	b := &strings.Builder{}
	b.Write(p.src[off:end])
	blanks := 0
	i := li + 1
Continuation:
	for i < len(p.lines) {
		ln := p.lines[i]
		switch {
		case ln.Blank:
			blanks++
			i++
			continue
		case ln.Comment, ln.Indent <= ctx:
			break Continuation
		}
		cs := ln.Start + ln.Indent
		if p.seqMarker(cs, ln.End) || token.KeyColon(p.src, cs, ln.End) >= 0 {
			break
		}
		ce := p.contentEnd(cs, i)
		if blanks > 0 {
			b.WriteString(strings.Repeat("\n", blanks))
		} else {
			b.WriteByte(' ')
		}
		b.Write(p.src[cs:ce])
		end = ce
		blanks = 0
		i++
	}
	return &ast.Scalar{
		Start:  off,
		End:    end,
		Value:  b.String(),
		Raw:    string(p.src[off:end]),
		Format: ast.FormatNone,
	}
}
