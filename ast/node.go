// Package ast defines the concrete syntax tree produced by the laxyaml
// parser. The variant set is closed: a Node is a *Scalar, a *Map, or a
// *Sequence, and nothing else. Nodes are immutable once produced; all
// offsets are zero-based, half-open byte ranges into the original input,
// so that host tooling can underline exact source spans.
package ast

// Node is the closed sum of syntax tree nodes.
type Node interface {
	Kind() Kind

	// Span returns the node's half-open [start, end) byte range.
	Span() (start, end int)

	node()
}

// Scalar is a leaf value. For every scalar the parser guarantees
// input[Start:End] == Raw, regardless of style or error recovery.
type Scalar struct {
	Start, End int

	// Value is the decoded content; Raw the verbatim source slice.
	Value, Raw string

	Format ScalarFormat
}

func (s *Scalar) Kind() Kind       { return KindScalar }
func (s *Scalar) Span() (int, int) { return s.Start, s.End }
func (s *Scalar) node()            {}

// Property is one key/value entry of a Map. Keys are always scalars.
type Property struct {
	Key   *Scalar
	Value Node
}

// Map is an ordered collection of properties. Insertion order is
// significant and duplicate keys are preserved as separate properties,
// never merged.
type Map struct {
	Start, End int
	Properties []Property
}

func (m *Map) Kind() Kind       { return KindMap }
func (m *Map) Span() (int, int) { return m.Start, m.End }
func (m *Map) node()            {}

type Sequence struct {
	Start, End int
	Items      []Node
}

func (s *Sequence) Kind() Kind       { return KindSequence }
func (s *Sequence) Span() (int, int) { return s.Start, s.End }
func (s *Sequence) node()            {}

// Get returns the value of the first property of m whose key decodes to
// field, or nil.
func Get(m *Map, field string) Node {
	for i := range m.Properties {
		if m.Properties[i].Key.Value == field {
			return m.Properties[i].Value
		}
	}
	return nil
}

// Visit walks n in document order, calling f before (post=false) and
// after (post=true) each node's children. Returning false from the pre
// call skips the children.
func Visit(n Node, f func(n Node, post bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		switch t := n.(type) {
		case *Map:
			for i := range t.Properties {
				pr := &t.Properties[i]
				if err := Visit(pr.Key, f); err != nil {
					return err
				}
				if err := Visit(pr.Value, f); err != nil {
					return err
				}
			}
		case *Sequence:
			for _, item := range t.Items {
				if err := Visit(item, f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// At returns the innermost node of root whose range contains off, or nil.
// Sibling ranges never overlap, so the last containing node found in
// document order is the innermost one.
func At(root Node, off int) Node {
	if root == nil {
		return nil
	}
	var best Node
	Visit(root, func(n Node, post bool) (bool, error) {
		if post {
			return false, nil
		}
		s, e := n.Span()
		if off < s || off >= e {
			return false, nil
		}
		best = n
		return true, nil
	})
	return best
}
