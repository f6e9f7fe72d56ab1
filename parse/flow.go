package parse

import (
	"fmt"

	"github.com/laxfmt/laxyaml/ast"
)

// flowMap parses a {...} mapping starting at off. Newlines inside flow are
// plain separators, so entries may span lines. A missing '}' closes the
// mapping at the last entry, silently.
func (p *parser) flowMap(off, depth int) *ast.Map {
	m := &ast.Map{Start: off, End: off + 1}
	seen := map[string]bool{}
	last := off + 1
	i := off + 1
	for i < len(p.src) {
		i = p.skipFlowSpace(i)
		if i >= len(p.src) {
			break
		}
		switch p.src[i] {
		case '}':
			m.End = i + 1
			return m
		case ',':
			i++
			continue
		case ']':
			i = len(p.src)
			continue
		}
		var key *ast.Scalar
		if c := p.src[i]; c == '"' || c == '\'' {
			key = p.quoted(i)
		} else {
			key = p.flowScalar(i)
		}
		if key.End == i {
			// Not scalar material, a stray '{' or '[' in key
			// position. Skip the byte so the scan advances.
			i++
			continue
		}
		p.checkDuplicate(seen, key)
		i = p.skipFlowSpace(key.End)
		var v ast.Node
		switch {
		case i < len(p.src) && p.src[i] == ':':
			j := p.skipFlowSpace(i + 1)
			if j >= len(p.src) || p.src[j] == ',' || p.src[j] == '}' || p.src[j] == ']' {
				v = p.emptyScalar(i + 1)
				p.report(MissingValue, key.Start, key.End,
					fmt.Sprintf("no value for key %q", key.Value))
				i = i + 1
			} else {
				v = p.flowValue(j, depth+1)
				_, i = v.Span()
			}
		default:
			// Bare entry, treated as a key with an empty value.
			v = p.emptyScalar(key.End)
			i = key.End
		}
		m.Properties = append(m.Properties, ast.Property{Key: key, Value: v})
		if i > last {
			last = i
		}
	}
	m.End = last
	return m
}

// flowSeq parses a [...] sequence starting at off. A scalar item followed
// by a colon becomes a single-entry mapping, as in [a: 1, b: 2]. A missing
// ']' closes the sequence at the last item, silently.
func (p *parser) flowSeq(off, depth int) *ast.Sequence {
	s := &ast.Sequence{Start: off, End: off + 1}
	last := off + 1
	i := off + 1
	for i < len(p.src) {
		i = p.skipFlowSpace(i)
		if i >= len(p.src) {
			break
		}
		switch p.src[i] {
		case ']':
			s.End = i + 1
			return s
		case ',':
			i++
			continue
		case '}':
			i = len(p.src)
			continue
		}
		item := p.flowValue(i, depth+1)
		_, end := item.Span()
		if end == i {
			i++
			continue
		}
		if key, ok := item.(*ast.Scalar); ok && end < len(p.src) && p.src[end] == ':' {
			item = p.flowPair(key, end, depth)
			_, end = item.Span()
		}
		s.Items = append(s.Items, item)
		i = end
		if i > last {
			last = i
		}
	}
	s.End = last
	return s
}

// flowPair wraps a sequence item of the form key: value in a single-entry
// mapping. colon is the offset of the ':' following the key.
func (p *parser) flowPair(key *ast.Scalar, colon, depth int) *ast.Map {
	m := &ast.Map{Start: key.Start, End: colon + 1}
	var v ast.Node
	j := p.skipFlowSpace(colon + 1)
	if j >= len(p.src) || p.src[j] == ',' || p.src[j] == ']' || p.src[j] == '}' {
		v = p.emptyScalar(colon + 1)
		p.report(MissingValue, key.Start, key.End,
			fmt.Sprintf("no value for key %q", key.Value))
	} else {
		v = p.flowValue(j, depth+1)
		_, m.End = v.Span()
	}
	m.Properties = []ast.Property{{Key: key, Value: v}}
	return m
}

// flowValue parses any value in flow context starting at off.
func (p *parser) flowValue(off, depth int) ast.Node {
	if depth < p.opts.maxDepth {
		switch p.src[off] {
		case '{':
			return p.flowMap(off, depth)
		case '[':
			return p.flowSeq(off, depth)
		}
	}
	switch p.src[off] {
	case '"', '\'':
		return p.quoted(off)
	}
	return p.flowScalar(off)
}

// flowScalar parses a plain scalar in flow context. Flow delimiters end
// the scalar, so it never spans lines.
func (p *parser) flowScalar(off int) *ast.Scalar {
	end := p.flowPlainEnd(off)
	return &ast.Scalar{
		Start:  off,
		End:    end,
		Value:  string(p.src[off:end]),
		Raw:    string(p.src[off:end]),
		Format: ast.FormatNone,
	}
}

// flowPlainEnd returns the end of a plain scalar starting at off in flow
// context. The scalar stops at flow punctuation, line ends, a comment, or
// a colon acting as a key separator. Trailing blanks are trimmed.
func (p *parser) flowPlainEnd(off int) int {
	i := off
scan:
	for i < len(p.src) {
		switch p.src[i] {
		case ',', '[', ']', '{', '}', '\n', '\r':
			break scan
		case '#':
			if i > off && (p.src[i-1] == ' ' || p.src[i-1] == '\t') {
				break scan
			}
		case ':':
			if i+1 >= len(p.src) {
				break scan
			}
			switch p.src[i+1] {
			case ' ', '\t', ',', ']', '}', '\n', '\r':
				break scan
			}
		}
		i++
	}
	for i > off && (p.src[i-1] == ' ' || p.src[i-1] == '\t') {
		i--
	}
	return i
}

// skipFlowSpace advances past whitespace, newlines, and comments in flow
// context, returning the offset of the next significant byte.
func (p *parser) skipFlowSpace(i int) int {
	for i < len(p.src) {
		switch p.src[i] {
		case ' ', '\t', '\r', '\n':
			i++
		case '#':
			for i < len(p.src) && p.src[i] != '\n' {
				i++
			}
		default:
			return i
		}
	}
	return i
}
