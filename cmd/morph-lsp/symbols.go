package main

import (
	"context"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/morph"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.mdoc == nil {
		return nil, nil
	}
	pd := token.NewPosDoc(doc.mdoc.Text())
	root := doc.mdoc.Root()

	var res []interface{}
	fns, err := root.Functions()
	if err != nil {
		return nil, err
	}
	for _, fn := range fns {
		sym, err := namedSymbol(pd, fn, protocol.SymbolKindFunction, nil)
		if err != nil {
			return nil, err
		}
		res = append(res, sym)
	}
	cls, err := root.Classes()
	if err != nil {
		return nil, err
	}
	for _, c := range cls {
		ms, err := c.Methods()
		if err != nil {
			return nil, err
		}
		var kids []protocol.DocumentSymbol
		for _, m := range ms {
			sym, err := namedSymbol(pd, m, protocol.SymbolKindMethod, nil)
			if err != nil {
				return nil, err
			}
			kids = append(kids, sym)
		}
		sym, err := namedSymbol(pd, c, protocol.SymbolKindClass, kids)
		if err != nil {
			return nil, err
		}
		res = append(res, sym)
	}
	ens, err := root.Enums()
	if err != nil {
		return nil, err
	}
	for _, e := range ens {
		ms, err := e.Members()
		if err != nil {
			return nil, err
		}
		var kids []protocol.DocumentSymbol
		for _, m := range ms {
			sym, err := namedSymbol(pd, m, protocol.SymbolKindEnumMember, nil)
			if err != nil {
				return nil, err
			}
			kids = append(kids, sym)
		}
		sym, err := namedSymbol(pd, e, protocol.SymbolKindEnum, kids)
		if err != nil {
			return nil, err
		}
		res = append(res, sym)
	}
	return res, nil
}

func namedSymbol(pd *token.PosDoc, n morph.Named, kind protocol.SymbolKind, kids []protocol.DocumentSymbol) (protocol.DocumentSymbol, error) {
	name, err := n.Name()
	if err != nil {
		return protocol.DocumentSymbol{}, err
	}
	id, err := n.NameNode()
	if err != nil {
		return protocol.DocumentSymbol{}, err
	}
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          spanToRange(pd, n.Start(), n.End()),
		SelectionRange: spanToRange(pd, id.Start(), id.End()),
		Children:       kids,
	}, nil
}
