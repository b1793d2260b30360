package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/morph"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.mdoc == nil {
		return nil, nil
	}

	text := doc.mdoc.Text()
	off := lineColToOffset(string(text), int(params.Position.Line), int(params.Position.Character))
	if !doc.mdoc.Root().Syntax().Contains(off) {
		return nil, nil
	}
	node, err := doc.mdoc.NodeAt(off)
	if err != nil {
		return nil, nil
	}

	hoverText := buildHoverText(node, s.config.HoverText)
	if hoverText == "" {
		return nil, nil
	}

	pd := token.NewPosDoc(text)
	rng := spanToRange(pd, node.Start(), node.End())
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
		Range: &rng,
	}, nil
}

func buildHoverText(node morph.Node, withText bool) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Kind:** %s", node.Kind()))
	if nd, ok := node.(morph.Named); ok {
		if name, err := nd.Name(); err == nil && name != "" {
			parts = append(parts, fmt.Sprintf("**Name:** `%s`", name))
		}
	}
	if withText {
		text := node.Text()
		if len(text) > 120 {
			text = text[:120] + "..."
		}
		if text != "" {
			parts = append(parts, fmt.Sprintf("```\n%s\n```", text))
		}
	}
	return strings.Join(parts, "\n\n")
}
