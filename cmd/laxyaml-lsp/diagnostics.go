package main

import (
	"context"
	"sync"

	"github.com/laxfmt/laxyaml/ast"
	"github.com/laxfmt/laxyaml/debug"
	"github.com/laxfmt/laxyaml/parse"
	"github.com/laxfmt/laxyaml/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	doc     *token.Doc
	node    ast.Node
	diags   parse.Diagnostics
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	d := &document{
		uri:     uri,
		content: content,
		version: version,
		doc:     token.NewDoc([]byte(content)),
	}
	d.node = parse.Parse([]byte(content), &d.diags)
	ds.docs[uri] = d
	if debug.LSP() {
		debug.Logf("lsp: %s v%d, %d bytes, %d diagnostics\n", uri, version, len(content), d.diags.Len())
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, dg := range doc.diags.Slice() {
		sl, sc := doc.doc.LineCol(dg.Range.Start)
		el, ec := doc.doc.LineCol(dg.Range.End)
		severity := protocol.DiagnosticSeverityError
		if dg.Code == parse.DuplicateKey {
			severity = protocol.DiagnosticSeverityWarning
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
				End:   protocol.Position{Line: uint32(el), Character: uint32(ec)},
			},
			Severity: severity,
			Code:     string(dg.Code),
			Message:  dg.Message,
			Source:   "laxyaml",
		})
	}
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			// Full document replacement.
			content = change.Text
			continue
		}
		cd := token.NewDoc([]byte(content))
		start := cd.Offset(int(r.Start.Line), int(r.Start.Character))
		end := cd.Offset(int(r.End.Line), int(r.End.Character))
		if start <= end && end <= len(content) {
			content = content[:start] + change.Text + content[end:]
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
