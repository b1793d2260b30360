// Package query selects wrapper nodes with compiled boolean predicates over
// node attributes.
//
// A predicate sees one node at a time through these variables:
//
//	kind       the node kind name, e.g. "FunctionDecl"
//	text       the node's source text
//	name       the declared name for named constructs, "" otherwise
//	start, end byte offsets of the node's span
//	childCount number of underlying children
package query

import (
	"errors"
	"fmt"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/morph"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

type Query struct {
	src  string
	prog *vm.Program
}

// Compile compiles a predicate for reuse across nodes and documents.
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.Env(map[string]any{
		"kind":       "",
		"text":       "",
		"name":       "",
		"start":      0,
		"end":        0,
		"childCount": 0,
	}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrQuery, src, err)
	}
	return &Query{src: src, prog: prog}, nil
}

func (q *Query) String() string { return q.src }

// Match evaluates the predicate against one node.
func (q *Query) Match(n morph.Node) (bool, error) {
	out, err := expr.Run(q.prog, env(n))
	if err != nil {
		return false, fmt.Errorf("%w: eval %q: %v", ErrQuery, q.src, err)
	}
	return out.(bool), nil
}

// Select returns every node in the document matching the predicate, in
// document order. The walk materializes wrappers for the whole tree.
func Select(doc *morph.Document, src string) ([]morph.Node, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(doc)
}

func (q *Query) Select(doc *morph.Document) ([]morph.Node, error) {
	var res []morph.Node
	err := walk(doc.Root(), func(n morph.Node) error {
		ok, err := q.Match(n)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func walk(n morph.Node, f func(morph.Node) error) error {
	if err := f(n); err != nil {
		return err
	}
	kids, err := n.Children()
	if err != nil {
		return err
	}
	for _, kid := range kids {
		if err := walk(kid, f); err != nil {
			return err
		}
	}
	return nil
}

func env(n morph.Node) map[string]any {
	name := ""
	if nd, ok := n.(morph.Named); ok {
		if s, err := nd.Name(); err == nil {
			name = s
		}
	}
	return map[string]any{
		"kind":       n.Kind().String(),
		"text":       n.Text(),
		"name":       name,
		"start":      n.Start(),
		"end":        n.End(),
		"childCount": n.ChildCount(),
	}
}
