package parse

import (
	"bytes"
	"testing"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// scalars
		``,
		`hello`,
		`"hello"`,
		`'it''s'`,
		`"unterminated`,
		`-5`,
		`-`,

		// mappings
		`a: 1`,
		"a:\n  b: 1",
		"a: 1\na: 2",
		"name:\nage: 30",
		"a: 1\n    b: 2",
		`"a b": 1`,
		"url: http://x/y",

		// sequences
		"- 1\n- 2",
		"- a: 1\n  b: 2",
		"- - a",
		"a:\n- 1\n- 2",

		// flow
		`{}`,
		`[]`,
		`{hr: 65, avg: 0.278}`,
		`[1, [2, {a: b}]]`,
		`[a: 1, b]`,
		`[1, 2`,
		`{a: `,
		`{a}`,

		// block scalars
		"t: |\n  a\n  b\n",
		"t: |-\n  a\n",
		"t: |+\n  a\n\n\n",
		"t: >\n  a\n  b\n\n  c\n",

		// oddities
		"\t: x",
		"a: 1\r\nb: 2\r\n",
		": v",
		"#",
		"a: # only a comment",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var diags Diagnostics
		node := Parse(data, &diags)
		if node == nil {
			return
		}
		// spans stay inside the input, scalars quote it exactly
		ast.Visit(node, func(n ast.Node, post bool) (bool, error) {
			if post {
				return false, nil
			}
			s, e := n.Span()
			if s < 0 || e > len(data) || s > e {
				t.Fatalf("bad span [%d,%d) in %q", s, e, data)
			}
			if sc, ok := n.(*ast.Scalar); ok && sc.Raw != string(data[s:e]) {
				t.Fatalf("raw %q does not match source %q", sc.Raw, data[s:e])
			}
			return true, nil
		})
		// re-rendering and re-parsing never fail, whatever the input
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(node, buf); err != nil {
			t.Fatalf("encode: %v", err)
		}
		var rediags Diagnostics
		Parse(buf.Bytes(), &rediags)
	})
}
