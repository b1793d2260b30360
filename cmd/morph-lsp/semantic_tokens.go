package main

import (
	"context"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"

	"go.lsp.dev/protocol"
)

// legend order here must match the legend in main.go
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenVariable,
}

func semanticTokenType(t token.Type) (protocol.SemanticTokenTypes, bool) {
	switch {
	case t == token.TComment:
		return protocol.SemanticTokenComment, true
	case t == token.TString:
		return protocol.SemanticTokenString, true
	case t == token.TNumber:
		return protocol.SemanticTokenNumber, true
	case t == token.TOp || t == token.TAssign:
		return protocol.SemanticTokenOperator, true
	case t == token.TIdent:
		return protocol.SemanticTokenVariable, true
	default:
		tok := token.Token{Type: t}
		if tok.IsKeyword() {
			return protocol.SemanticTokenKeyword, true
		}
		return "", false
	}
}

// collectSemanticTokens tokenizes the source and delta-encodes the result in
// LSP wire order: deltaLine, deltaChar, length, type, modifiers.
func collectSemanticTokens(content []byte) []uint32 {
	toks, err := token.Tokenize(nil, content)
	if err != nil {
		return nil
	}
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range semanticTokenTypes {
		typeMap[tt] = uint32(i)
	}
	pd := token.NewPosDoc(content)

	data := []uint32{}
	var prevLine, prevChar uint32
	for i := range toks {
		tok := &toks[i]
		st, ok := semanticTokenType(tok.Type)
		if !ok {
			continue
		}
		line, col := pd.LineCol(tok.Pos.I)
		deltaLine := uint32(line) - prevLine
		deltaChar := uint32(col)
		if deltaLine == 0 {
			deltaChar = uint32(col) - prevChar
		}
		data = append(data, deltaLine, deltaChar, uint32(len(tok.Bytes)), typeMap[st], 0)
		prevLine = uint32(line)
		prevChar = uint32(col)
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || !s.config.SemanticTokens {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens([]byte(doc.content)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	// whole-document tokens; clients discard what falls outside the range
	return s.SemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: params.TextDocument,
	})
}
