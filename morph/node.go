// Package morph maintains a long-lived wrapper tree over the immutable syntax
// trees produced by package parse.
//
// Application code holds wrapper nodes across edits. After every edit the
// whole underlying tree is reparsed and the reconciliation pass rebinds each
// wrapper to its correspondent in the new tree, preserving wrapper identity
// wherever the structure still corresponds. Wrappers are materialized lazily:
// only syntax the application navigates to gets a facade, and navigation is
// top-down, so a wrapper's parent chain is always materialized.
//
// Everything in this package is single-threaded: a reconciliation pass and
// application-driven navigation never interleave.
package morph

import (
	"fmt"
	"sort"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
)

// Node is the identity-stable facade over one underlying syntax node. The
// underlying node is swapped on every successful reconciliation; object
// identity of the Node is the only thing callers may rely on across edits.
type Node interface {
	// Kind never changes for a live node: it always equals the kind of the
	// currently bound underlying node.
	Kind() syntax.Kind
	// Syntax returns the currently bound underlying node, nil once forgotten.
	Syntax() *syntax.Node
	Parent() Node
	Document() *Document
	Start() int
	End() int
	Text() string
	ChildCount() int
	Child(i int) (Node, error)
	Children() ([]Node, error)
	// TrackedChildren returns the materialized children only, in document
	// order. It never wraps anything new.
	TrackedChildren() []Node
	DescendantAt(off int) (Node, error)
	IsForgotten() bool
	// Forget retires the node and every materialized descendant. Idempotent.
	Forget()

	base() *nodeBase
}

type nodeBase struct {
	doc    *Document
	kind   syntax.Kind
	syn    *syntax.Node
	parent Node
	// idx is the node's position among its parent's underlying children,
	// -1 for the document root.
	idx  int
	kids []Node
	dead bool
	// self is the facade embedding this base.
	self Node
}

func (b *nodeBase) base() *nodeBase { return b }

func (b *nodeBase) Kind() syntax.Kind { return b.kind }

func (b *nodeBase) Syntax() *syntax.Node { return b.syn }

func (b *nodeBase) Parent() Node { return b.parent }

func (b *nodeBase) Document() *Document { return b.doc }

func (b *nodeBase) IsForgotten() bool { return b.dead }

func (b *nodeBase) Start() int {
	if b.dead {
		return -1
	}
	return b.syn.Start()
}

func (b *nodeBase) End() int {
	if b.dead {
		return -1
	}
	return b.syn.End()
}

func (b *nodeBase) Text() string {
	if b.dead {
		return ""
	}
	return b.syn.Text(b.doc.text)
}

func (b *nodeBase) ChildCount() int {
	if b.dead {
		return 0
	}
	return b.syn.ChildCount()
}

func (b *nodeBase) Child(i int) (Node, error) {
	if b.dead {
		return nil, ErrForgotten
	}
	if i < 0 || i >= b.syn.ChildCount() {
		return nil, fmt.Errorf("%w: child %d of %s with %d children",
			ErrContract, i, b.kind, b.syn.ChildCount())
	}
	if w := b.findKid(i); w != nil {
		return w, nil
	}
	return b.doc.reg.wrapAt(b.syn.Child(i), b.self, i)
}

func (b *nodeBase) Children() ([]Node, error) {
	if b.dead {
		return nil, ErrForgotten
	}
	res := make([]Node, 0, b.syn.ChildCount())
	for i := 0; i < b.syn.ChildCount(); i++ {
		w, err := b.Child(i)
		if err != nil {
			return nil, err
		}
		res = append(res, w)
	}
	return res, nil
}

func (b *nodeBase) TrackedChildren() []Node {
	res := make([]Node, len(b.kids))
	copy(res, b.kids)
	return res
}

// DescendantAt returns the deepest wrappable node whose span contains off,
// materializing the path down to it.
func (b *nodeBase) DescendantAt(off int) (Node, error) {
	if b.dead {
		return nil, ErrForgotten
	}
	if !b.syn.Contains(off) {
		return nil, fmt.Errorf("%w: offset %d outside %s [%d,%d)",
			ErrContract, off, b.kind, b.syn.Start(), b.syn.End())
	}
	cur := b.self
	for {
		syn := cur.Syntax()
		descended := false
		for i := 0; i < syn.ChildCount(); i++ {
			if !syn.Child(i).Contains(off) {
				continue
			}
			w, err := cur.base().Child(i)
			if err != nil {
				return nil, err
			}
			cur = w
			descended = true
			break
		}
		if !descended {
			return cur, nil
		}
	}
}

func (b *nodeBase) Forget() {
	b.doc.reg.Forget(b.self)
}

func (b *nodeBase) findKid(idx int) Node {
	for _, kid := range b.kids {
		ki := kid.base().idx
		if ki == idx {
			return kid
		}
		if ki > idx {
			return nil
		}
	}
	return nil
}

func (b *nodeBase) adopt(w Node) {
	idx := w.base().idx
	at := sort.Search(len(b.kids), func(i int) bool {
		return b.kids[i].base().idx >= idx
	})
	b.kids = append(b.kids, nil)
	copy(b.kids[at+1:], b.kids[at:])
	b.kids[at] = w
}

func (b *nodeBase) drop(w Node) {
	for i, kid := range b.kids {
		if kid == w {
			b.kids = append(b.kids[:i], b.kids[i+1:]...)
			return
		}
	}
}
