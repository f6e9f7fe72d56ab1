package encode

import (
	"io"
	"strings"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/token"
)

type EncState struct {
	col    int
	depth  int
	indent int
	inline bool

	Color func(ast.Kind, ColorAttr, string) string
}

// Encode writes node in normalized block form: mappings and sequences in
// block style, multi-line scalars as block literals, everything else plain
// or double quoted. A nil node writes nothing.
func Encode(node ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return nil
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node ast.Node, w io.Writer, es *EncState) error {
	switch n := node.(type) {
	case *ast.Scalar:
		return encodeScalar(n, w, es)
	case *ast.Map:
		return encodeMap(n, w, es)
	case *ast.Sequence:
		return encodeSeq(n, w, es)
	default:
		panic("node")
	}
}

func encodeMap(n *ast.Map, w io.Writer, es *EncState) error {
	if len(n.Properties) == 0 {
		return writePunct(w, es, ast.KindMap, "{}")
	}
	for i, pr := range n.Properties {
		if i > 0 || !takeInline(es) {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeField(w, pr.Key.Value, es); err != nil {
			return err
		}
		if err := encodeMapValue(pr.Value, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeMapValue(node ast.Node, w io.Writer, es *EncState) error {
	switch n := node.(type) {
	case *ast.Map:
		if len(n.Properties) == 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
			return writePunct(w, es, ast.KindMap, "{}")
		}
	case *ast.Sequence:
		if len(n.Items) == 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
			es.col++
			return writePunct(w, es, ast.KindSequence, "[]")
		}
	case *ast.Scalar:
		if err := writeString(w, " "); err != nil {
			return err
		}
		es.col++
		return encodeScalar(n, w, es)
	}
	es.depth++
	err := encode(node, w, es)
	es.depth--
	return err
}

func encodeSeq(n *ast.Sequence, w io.Writer, es *EncState) error {
	if len(n.Items) == 0 {
		return writePunct(w, es, ast.KindSequence, "[]")
	}
	for i, item := range n.Items {
		if i > 0 || !takeInline(es) {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeItemMarker(w, es); err != nil {
			return err
		}
		es.depth++
		es.inline = true
		err := encode(item, w, es)
		es.inline = false
		es.depth--
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeScalar(n *ast.Scalar, w io.Writer, es *EncState) error {
	if strings.Contains(n.Value, "\n") && blockLitSafe(n.Value) {
		return encodeBlockLit(n.Value, w, es)
	}
	v := n.Value
	if token.NeedsQuote(v) {
		v = token.Quote(v)
	}
	es.col += len(v)
	return writeString(w, applyColor(es, ast.KindScalar, ValueColor, v))
}

// blockLitSafe reports whether v survives a round trip as a block
// literal. A value that is all newlines has no content line to anchor the
// base indent, and a first line with leading blanks would shift it.
func blockLitSafe(v string) bool {
	if strings.Trim(v, "\n") == "" {
		return false
	}
	body := strings.TrimLeft(v, "\n")
	return body[0] != ' ' && body[0] != '\t'
}

// encodeBlockLit writes v as a block literal. The chomping indicator is
// chosen from the trailing newline count so the value parses back exactly.
func encodeBlockLit(v string, w io.Writer, es *EncState) error {
	nl := 0
	for i := len(v) - 1; i >= 0 && v[i] == '\n'; i-- {
		nl++
	}
	hdr := "|"
	switch nl {
	case 0:
		hdr = "|-"
	case 1:
	default:
		hdr = "|+"
	}
	if err := writePunct(w, es, ast.KindScalar, hdr); err != nil {
		return err
	}
	body := strings.TrimSuffix(v, "\n")
	ind := strings.Repeat(strings.Repeat(" ", es.indent), es.depth+1)
	for _, ln := range strings.Split(body, "\n") {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			es.col = 0
			continue
		}
		out := ind + applyColor(es, ast.KindScalar, LiteralColor, ln)
		if err := writeString(w, "\n"+out); err != nil {
			return err
		}
		es.col = len(ind) + len(ln)
	}
	return nil
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.col == 0 {
		return nil
	}
	ind := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+ind); err != nil {
		return err
	}
	es.col = len(ind)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeField(w io.Writer, f string, es *EncState) error {
	if token.NeedsQuote(f) {
		f = token.Quote(f)
	}
	sep := ":"
	es.col += len(f) + len(sep)
	f = applyColor(es, ast.KindMap, FieldColor, f)
	sep = applyColor(es, ast.KindMap, SepColor, sep)
	return writeString(w, f+sep)
}

func writeItemMarker(w io.Writer, es *EncState) error {
	sep := applyColor(es, ast.KindSequence, SepColor, "-")
	es.col += 2
	return writeString(w, sep+" ")
}

func writePunct(w io.Writer, es *EncState, k ast.Kind, s string) error {
	es.col += len(s)
	return writeString(w, applyColor(es, k, SepColor, s))
}

func applyColor(es *EncState, k ast.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

func takeInline(es *EncState) bool {
	in := es.inline
	es.inline = false
	return in
}
