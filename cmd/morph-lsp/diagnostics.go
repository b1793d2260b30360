package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	if len(diagnostics) > s.config.MaxDiagnostics {
		diagnostics = diagnostics[:s.config.MaxDiagnostics]
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.parseErr != nil {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.parseErr.Error(),
			Source:   "morph",
		}
		if pos := extractPosition(doc.parseErr.Error()); pos != nil {
			diagnostic.Range = protocol.Range{
				Start: protocol.Position{
					Line:      uint32(pos.line),
					Character: uint32(pos.col),
				},
				End: protocol.Position{
					Line:      uint32(pos.line),
					Character: uint32(pos.col + 1),
				},
			}
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

type position struct {
	line int
	col  int
}

func extractPosition(errMsg string) *position {
	// parse errors carry a "line=X, col=Y" suffix from token.Pos
	var line, col int
	_, err := fmt.Sscanf(errMsg, "%*[^l]line=%d%*[^c]col=%d", &line, &col)
	if err != nil {
		return nil
	}
	return &position{line: line, col: col}
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
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			startOffset := lineColToOffset(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
			endOffset := lineColToOffset(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
			if startOffset <= len(content) && endOffset <= len(content) && startOffset <= endOffset {
				content = content[:startOffset] + change.Text + content[endOffset:]
			}
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
