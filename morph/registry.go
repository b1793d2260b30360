package morph

import (
	"fmt"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/debug"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
)

// Registry is the single authority mapping underlying syntax nodes to their
// wrappers. There is exactly one Registry per Document; it is never shared
// between documents and dies with its document. Invariants: at most one live
// wrapper per underlying node, and each wrapper bound to exactly one
// underlying node at a time.
type Registry struct {
	doc   *Document
	nodes map[*syntax.Node]Node
}

func newRegistry(doc *Document) *Registry {
	return &Registry{
		doc:   doc,
		nodes: map[*syntax.Node]Node{},
	}
}

// facades is the closed dispatch table from syntax kind to facade
// constructor. A kind missing here surfaces as ErrUnsupportedKind at wrap
// time rather than as open-ended runtime type probing later.
var facades = map[syntax.Kind]func(b *nodeBase) Node{
	syntax.SourceFile:     func(b *nodeBase) Node { n := &SourceFile{nodeBase: *b}; n.self = n; return n },
	syntax.FunctionDecl:   func(b *nodeBase) Node { n := &FunctionDecl{nodeBase: *b}; n.self = n; return n },
	syntax.ClassDecl:      func(b *nodeBase) Node { n := &ClassDecl{nodeBase: *b}; n.self = n; return n },
	syntax.EnumDecl:       func(b *nodeBase) Node { n := &EnumDecl{nodeBase: *b}; n.self = n; return n },
	syntax.EnumMember:     func(b *nodeBase) Node { n := &EnumMember{nodeBase: *b}; n.self = n; return n },
	syntax.MethodDecl:     func(b *nodeBase) Node { n := &MethodDecl{nodeBase: *b}; n.self = n; return n },
	syntax.Parameter:      func(b *nodeBase) Node { n := &Parameter{nodeBase: *b}; n.self = n; return n },
	syntax.Block:          func(b *nodeBase) Node { n := &Block{nodeBase: *b}; n.self = n; return n },
	syntax.VariableStmt:   func(b *nodeBase) Node { n := &VariableStmt{nodeBase: *b}; n.self = n; return n },
	syntax.VariableDecl:   func(b *nodeBase) Node { n := &VariableDecl{nodeBase: *b}; n.self = n; return n },
	syntax.ExpressionStmt: func(b *nodeBase) Node { n := &ExpressionStmt{nodeBase: *b}; n.self = n; return n },
	syntax.ReturnStmt:     func(b *nodeBase) Node { n := &ReturnStmt{nodeBase: *b}; n.self = n; return n },
	syntax.IfStmt:         func(b *nodeBase) Node { n := &IfStmt{nodeBase: *b}; n.self = n; return n },
	syntax.Identifier:     func(b *nodeBase) Node { n := &Identifier{nodeBase: *b}; n.self = n; return n },
	syntax.NumberLit:      func(b *nodeBase) Node { n := &NumberLit{nodeBase: *b}; n.self = n; return n },
	syntax.StringLit:      func(b *nodeBase) Node { n := &StringLit{nodeBase: *b}; n.self = n; return n },
	syntax.BoolLit:        func(b *nodeBase) Node { n := &BoolLit{nodeBase: *b}; n.self = n; return n },
	syntax.NullLit:        func(b *nodeBase) Node { n := &NullLit{nodeBase: *b}; n.self = n; return n },
	syntax.BinaryExpr:     func(b *nodeBase) Node { n := &BinaryExpr{nodeBase: *b}; n.self = n; return n },
	syntax.CallExpr:       func(b *nodeBase) Node { n := &CallExpr{nodeBase: *b}; n.self = n; return n },
	syntax.MemberExpr:     func(b *nodeBase) Node { n := &MemberExpr{nodeBase: *b}; n.self = n; return n },
}

// Wrap returns the wrapper for syn, constructing and registering one if
// needed. parent must be the wrapper of syn's syntactic parent, or nil when
// syn is the document root.
func (r *Registry) Wrap(syn *syntax.Node, parent Node) (Node, error) {
	if w, ok := r.nodes[syn]; ok {
		return w, nil
	}
	idx := -1
	if parent != nil {
		ps := parent.Syntax()
		if ps == nil {
			return nil, ErrForgotten
		}
		for i := 0; i < ps.ChildCount(); i++ {
			if ps.Child(i) == syn {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: wrap of %s under %s, which is not its parent",
				ErrContract, syn.Kind(), parent.Kind())
		}
	}
	return r.wrapAt(syn, parent, idx)
}

// Lookup reports the live wrapper currently bound to syn, if any.
func (r *Registry) Lookup(syn *syntax.Node) (Node, bool) {
	w, ok := r.nodes[syn]
	return w, ok
}

// Len is the number of live wrappers.
func (r *Registry) Len() int {
	return len(r.nodes)
}

func (r *Registry) wrapAt(syn *syntax.Node, parent Node, idx int) (Node, error) {
	if w, ok := r.nodes[syn]; ok {
		return w, nil
	}
	ctor, ok := facades[syn.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, syn.Kind())
	}
	w := ctor(&nodeBase{
		doc:    r.doc,
		kind:   syn.Kind(),
		syn:    syn,
		parent: parent,
		idx:    idx,
	})
	r.nodes[syn] = w
	if parent != nil {
		parent.base().adopt(w)
	}
	if debug.Registry() {
		debug.Logf("registry: wrap %s [%d,%d) idx=%d\n", syn.Kind(), syn.Start(), syn.End(), idx)
	}
	return w, nil
}

// Rebind swaps n's underlying node for repl, preserving n's identity. The
// kinds must agree; a mismatch means the caller mis-paired nodes and the tree
// would corrupt silently if we continued.
func (r *Registry) Rebind(n Node, repl *syntax.Node) error {
	b := n.base()
	if b.dead {
		return fmt.Errorf("%w: rebind of forgotten %s", ErrContract, b.kind)
	}
	if repl == nil {
		return fmt.Errorf("%w: rebind of %s to nothing", ErrContract, b.kind)
	}
	if b.kind != repl.Kind() {
		return fmt.Errorf("%w: rebind %s to %s", ErrContract, b.kind, repl.Kind())
	}
	if prev, ok := r.nodes[repl]; ok && prev != n {
		return fmt.Errorf("%w: replacement %s already has a wrapper", ErrContract, repl.Kind())
	}
	if debug.Registry() {
		debug.Logf("registry: rebind %s [%d,%d) -> [%d,%d)\n",
			b.kind, b.syn.Start(), b.syn.End(), repl.Start(), repl.End())
	}
	delete(r.nodes, b.syn)
	b.syn = repl
	r.nodes[repl] = n
	return nil
}

// Forget retires n: marks it dead, clears its binding, removes it from the
// registry and from its parent's child list, and cascades to any materialized
// children. Forgetting an already-forgotten node is a no-op.
func (r *Registry) Forget(n Node) {
	b := n.base()
	if b.dead {
		return
	}
	if debug.Registry() {
		debug.Logf("registry: forget %s [%d,%d)\n", b.kind, b.syn.Start(), b.syn.End())
	}
	b.dead = true
	delete(r.nodes, b.syn)
	b.syn = nil
	if b.parent != nil && !b.parent.base().dead {
		b.parent.base().drop(n)
	}
	b.parent = nil
	kids := b.kids
	b.kids = nil
	for _, kid := range kids {
		r.Forget(kid)
	}
}
