package main

import (
	"bytes"
	"context"

	"github.com/laxfmt/laxyaml/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	// Formatting a document with diagnostics would bake the recovered
	// reading into the text, so leave those alone.
	if doc.diags.Len() > 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := encode.Encode(doc.node, &buf); err != nil {
		return nil, nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
