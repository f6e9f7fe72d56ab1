package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPath = errors.New("bad path")

// Path addresses a node in the tree: dotted field names with [n]
// indexing, for example "spec.containers[0].image".
type Path []Segment

type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Field
}

func (p Path) String() string {
	b := &strings.Builder{}
	for i, seg := range p {
		if !seg.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// ParsePath parses a path expression. Fields are bare runs of characters
// other than '.' and '['; indices are decimal and bracketed.
func ParsePath(s string) (Path, error) {
	var res Path
	i, n := 0, len(s)
	for i < n {
		switch s[i] {
		case '.':
			if i == 0 || i+1 == n {
				return nil, fmt.Errorf("%w: dangling '.' in %q", ErrPath, s)
			}
			i++
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, s)
			}
			idx, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w: index %q in %q", ErrPath, s[i+1:i+j], s)
			}
			res = append(res, Segment{Index: idx, IsIndex: true})
			i += j + 1
		default:
			j := i
			for j < n && s[j] != '.' && s[j] != '[' {
				j++
			}
			res = append(res, Segment{Field: s[i:j]})
			i = j
		}
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	return res, nil
}

// Lookup resolves p against n. Field segments descend into maps (first
// matching property when keys are duplicated), index segments into
// sequences.
func (p Path) Lookup(n Node) (Node, error) {
	cur := n
	for _, seg := range p {
		switch t := cur.(type) {
		case *Map:
			if seg.IsIndex {
				return nil, fmt.Errorf("%w: index %d applied to a mapping", ErrPath, seg.Index)
			}
			v := Get(t, seg.Field)
			if v == nil {
				return nil, fmt.Errorf("%w: no key %q", ErrPath, seg.Field)
			}
			cur = v
		case *Sequence:
			if !seg.IsIndex {
				return nil, fmt.Errorf("%w: field %q applied to a sequence", ErrPath, seg.Field)
			}
			if seg.Index < 0 || seg.Index >= len(t.Items) {
				return nil, fmt.Errorf("%w: index %d out of range (%d items)", ErrPath, seg.Index, len(t.Items))
			}
			cur = t.Items[seg.Index]
		default:
			return nil, fmt.Errorf("%w: cannot descend %q into a scalar", ErrPath, seg)
		}
	}
	return cur, nil
}
