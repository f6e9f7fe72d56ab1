package encode

import (
	"bytes"
	"strings"

	"github.com/laxfmt/laxyaml/ast"
)

func MustString(node ast.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
