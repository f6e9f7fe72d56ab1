package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/laxfmt/laxyaml/ast"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	pos := params.Position
	off := doc.doc.Offset(int(pos.Line), int(pos.Character))
	target := ast.At(doc.node, off)
	if target == nil {
		return nil, nil
	}

	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func buildHoverText(node ast.Node) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Kind:** %s", node.Kind()))

	switch t := node.(type) {
	case *ast.Scalar:
		if t.Format != ast.FormatNone {
			parts = append(parts, fmt.Sprintf("**Style:** %s", t.Format))
		}
		val := t.Value
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		if val != "" {
			parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
		}
	case *ast.Map:
		parts = append(parts, fmt.Sprintf("mapping with %d properties", len(t.Properties)))
	case *ast.Sequence:
		parts = append(parts, fmt.Sprintf("sequence with %d items", len(t.Items)))
	}

	return strings.Join(parts, "\n\n")
}
