package parse

import (
	"fmt"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/debug"
	"github.com/laxfmt/laxyaml/token"
)

const defaultMaxDepth = 500

type parser struct {
	src   []byte
	doc   *token.Doc
	lines []token.Line
	diags *Diagnostics
	opts  parseOpts
}

// Parse parses one document into a concrete syntax tree. Empty and
// whitespace-only input yields nil and no diagnostics. diags may be nil
// when the caller has no use for diagnostics.
//
// Parsing is a single stateless pass over the input: re-parsing the same
// bytes yields a structurally identical tree, and concurrent calls on
// different inputs are safe.
func Parse(d []byte, diags *Diagnostics, opts ...Option) ast.Node {
	pOpts := parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(&pOpts)
	}
	if diags == nil {
		diags = &Diagnostics{}
	}
	doc := token.NewDoc(d)
	p := &parser{
		src:   d,
		doc:   doc,
		lines: doc.Lines(),
		diags: diags,
		opts:  pOpts,
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes, %d lines\n", len(d), len(p.lines))
	}
	li := doc.NextSignificant(0)
	if li == len(p.lines) {
		return nil
	}
	ln := p.lines[li]
	return p.value(ln.Start+ln.Indent, -1, 0, true)
}

// ParseString is a convenience wrapper over Parse.
func ParseString(s string, diags *Diagnostics, opts ...Option) ast.Node {
	return Parse([]byte(s), diags, opts...)
}

// value parses one value beginning at off. ctx is the reference indent of
// the owning construct (-1 at the document root). keys controls whether
// the single-line colon lookahead may open a block mapping or a block
// sequence here: true at line starts and sequence item positions, false
// for values inline after a colon, where only scalars and flow
// collections can begin.
func (p *parser) value(off, ctx, depth int, keys bool) ast.Node {
	ln := p.lines[p.doc.LineIndex(off)]
	c := p.src[off]
	if depth < p.opts.maxDepth {
		switch c {
		case '{':
			return p.flowMap(off, depth)
		case '[':
			return p.flowSeq(off, depth)
		}
		if keys {
			if p.seqMarker(off, ln.End) {
				return p.blockSeq(off, off-ln.Start, depth)
			}
			if token.KeyColon(p.src, off, ln.End) >= 0 {
				return p.blockMap(off, off-ln.Start, depth)
			}
		}
	}
	switch c {
	case '"', '\'':
		return p.quoted(off)
	case token.Literal, token.Folded:
		if token.BlockHeader(p.src, off, ln.End) {
			return p.blockScalar(off, ctx)
		}
	}
	return p.plain(off, ctx)
}

// blockMap parses a run of sibling key/value lines at reference indent
// ref, beginning with the key at off.
func (p *parser) blockMap(off, ref, depth int) *ast.Map {
	m := &ast.Map{Start: off, End: off, Properties: []ast.Property{}}
	seen := map[string]bool{}
	pos := off
	for {
		end := p.property(m, seen, pos, ref, depth)
		if end > m.End {
			m.End = end
		}
		ni := p.doc.NextSignificant(p.lineAfter(end))
		if ni == len(p.lines) {
			return m
		}
		ln := p.lines[ni]
		if ln.Indent < ref {
			return m
		}
		cs := ln.Start + ln.Indent
		if ln.Indent > ref {
			// an indentation jump that no nested construct expects;
			// recover by attaching the line to this mapping
			p.report(UnexpectedIndentation, cs, ln.End,
				fmt.Sprintf("line indented %d columns beyond its enclosing mapping", ln.Indent-ref))
			pos = cs
			continue
		}
		if token.KeyColon(p.src, cs, ln.End) < 0 {
			// the line carries no key marker; the mapping ends here
			return m
		}
		pos = cs
	}
}

// property parses one key/value pair at off and appends it to m,
// returning the offset one past the consumed text.
func (p *parser) property(m *ast.Map, seen map[string]bool, off, ref, depth int) int {
	li := p.doc.LineIndex(off)
	ln := p.lines[li]
	var key *ast.Scalar
	colon := -1
	if c := p.src[off]; c == '"' || c == '\'' {
		key = p.quoted(off)
		i := key.End
		for i < ln.End && (p.src[i] == ' ' || p.src[i] == '\t') {
			i++
		}
		if i < ln.End && p.src[i] == ':' {
			colon = i
		}
	} else {
		colon = token.KeyColon(p.src, off, ln.End)
		kend := colon
		if kend < 0 {
			kend = p.contentEnd(off, li)
		}
		for kend > off && (p.src[kend-1] == ' ' || p.src[kend-1] == '\t') {
			kend--
		}
		raw := string(p.src[off:kend])
		key = &ast.Scalar{Start: off, End: kend, Value: raw, Raw: raw, Format: ast.FormatNone}
	}
	p.checkDuplicate(seen, key)
	if colon < 0 {
		// reachable only through indentation recovery: keep the line as a
		// key with an empty value
		v := p.emptyScalar(key.End)
		m.Properties = append(m.Properties, ast.Property{Key: key, Value: v})
		return key.End
	}

	i := colon + 1
	for i < ln.End && (p.src[i] == ' ' || p.src[i] == '\t') {
		i++
	}
	rest := ln.End
	if cs := token.CommentStart(p.src, i, ln.End); cs >= 0 {
		rest = cs
	}
	if i < rest {
		v := p.value(i, ref, depth+1, false)
		m.Properties = append(m.Properties, ast.Property{Key: key, Value: v})
		_, e := v.Span()
		return e
	}

	// nothing after the colon on this line: the value, if any, lives on
	// the following lines
	ni := p.doc.NextSignificant(li + 1)
	if ni < len(p.lines) {
		nl := p.lines[ni]
		cs := nl.Start + nl.Indent
		if nl.Indent > ref {
			v := p.value(cs, ref, depth+1, true)
			m.Properties = append(m.Properties, ast.Property{Key: key, Value: v})
			_, e := v.Span()
			return e
		}
		// a sequence is accepted at the same indent as its owning key,
		// distinguished by the marker rather than by indentation
		if nl.Indent == ref && p.seqMarker(cs, nl.End) {
			v := p.blockSeq(cs, ref, depth+1)
			m.Properties = append(m.Properties, ast.Property{Key: key, Value: v})
			return v.End
		}
	}

	v := p.emptyScalar(i)
	p.report(MissingValue, key.Start, key.End, fmt.Sprintf("no value for key %q", key.Value))
	m.Properties = append(m.Properties, ast.Property{Key: key, Value: v})
	return i
}

// blockSeq parses a run of sibling '-' lines at reference indent ref,
// beginning with the marker at off.
func (p *parser) blockSeq(off, ref, depth int) *ast.Sequence {
	s := &ast.Sequence{Start: off, End: off, Items: []ast.Node{}}
	pos := off
	for {
		li := p.doc.LineIndex(pos)
		ln := p.lines[li]
		i := pos + 1
		for i < ln.End && (p.src[i] == ' ' || p.src[i] == '\t') {
			i++
		}
		rest := ln.End
		if cs := token.CommentStart(p.src, i, ln.End); cs >= 0 {
			rest = cs
		}
		var item ast.Node
		switch {
		case i < rest:
			item = p.value(i, ref, depth+1, true)
		default:
			ni := p.doc.NextSignificant(li + 1)
			if ni < len(p.lines) && p.lines[ni].Indent > ref {
				nl := p.lines[ni]
				item = p.value(nl.Start+nl.Indent, ref, depth+1, true)
			} else {
				item = p.emptyScalar(i)
			}
		}
		s.Items = append(s.Items, item)
		_, e := item.Span()
		if e > s.End {
			s.End = e
		}
		ni := p.doc.NextSignificant(p.lineAfter(e))
		if ni == len(p.lines) {
			return s
		}
		nl := p.lines[ni]
		cs := nl.Start + nl.Indent
		if nl.Indent != ref || !p.seqMarker(cs, nl.End) {
			return s
		}
		pos = cs
	}
}

// seqMarker reports whether off begins a sequence item: a '-' followed by
// whitespace or the line end. A glued "-foo" is scalar content.
func (p *parser) seqMarker(off, lineEnd int) bool {
	if p.src[off] != '-' {
		return false
	}
	return off+1 >= lineEnd || p.src[off+1] == ' ' || p.src[off+1] == '\t'
}

// lineAfter returns the index of the line following the one holding the
// last byte before end.
func (p *parser) lineAfter(end int) int {
	if end > 0 {
		end--
	}
	return p.doc.LineIndex(end) + 1
}

// contentEnd returns the end of the significant content beginning at off
// on line li: the line end, shortened by any comment and trailing
// whitespace.
func (p *parser) contentEnd(off, li int) int {
	end := p.lines[li].End
	if cs := token.CommentStart(p.src, off, end); cs >= 0 {
		end = cs
	}
	for end > off && (p.src[end-1] == ' ' || p.src[end-1] == '\t') {
		end--
	}
	return end
}

func (p *parser) emptyScalar(at int) *ast.Scalar {
	return &ast.Scalar{Start: at, End: at, Format: ast.FormatNone}
}

func (p *parser) checkDuplicate(seen map[string]bool, key *ast.Scalar) {
	if seen[key.Value] {
		if !p.opts.allowDuplicateKeys {
			p.report(DuplicateKey, key.Start, key.End, fmt.Sprintf("duplicate key %q", key.Value))
		}
		return
	}
	seen[key.Value] = true
}

func (p *parser) report(code Code, start, end int, msg string) {
	p.diags.Append(Diagnostic{Code: code, Range: Range{Start: start, End: end}, Message: msg})
}
