package main

import (
	"context"
	"sort"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"

	"go.lsp.dev/protocol"
)

var keywordItems = []string{
	"class",
	"const",
	"else",
	"enum",
	"false",
	"function",
	"if",
	"let",
	"null",
	"return",
	"true",
	"var",
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(keywordItems))
	for _, kw := range keywordItems {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  protocol.CompletionItemKindKeyword,
		})
	}
	for _, name := range identifiersIn([]byte(doc.content)) {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  protocol.CompletionItemKindVariable,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

func identifiersIn(content []byte) []string {
	toks, err := token.Tokenize(nil, content)
	if err != nil {
		return nil
	}
	seen := map[string]bool{}
	for i := range toks {
		if toks[i].Type != token.TIdent {
			continue
		}
		seen[string(toks[i].Bytes)] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
