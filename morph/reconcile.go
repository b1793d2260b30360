package morph

import (
	"fmt"
	"slices"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/debug"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
)

// Strategy maps a wrapper subtree onto its replacement subtree in a freshly
// parsed tree. The caller establishes which root pairs with which; the
// strategy walks down from there, rebinding wrappers in place or retiring
// them.
type Strategy interface {
	Reconcile(old Node, repl *syntax.Node, text []byte) error
}

// Straight is the strategy for a subtree known to correspond kind-for-kind
// and position-for-position: it rebinds every materialized wrapper onto the
// replacement node at the same structural path. Any shape divergence is a
// contract violation; Straight fails closed rather than guess, because a
// wrong guess desynchronizes wrapper identity from the tree invisibly.
func Straight(reg *Registry) Strategy {
	return &straight{reg: reg}
}

type straight struct {
	reg *Registry
}

func (s *straight) Reconcile(old Node, repl *syntax.Node, text []byte) error {
	b := old.base()
	if b.dead {
		return fmt.Errorf("%w: straight reconcile of forgotten %s", ErrContract, b.kind)
	}
	if b.kind != repl.Kind() {
		return fmt.Errorf("%w: straight reconcile pairs %s against %s, structural edit misdiagnosed as a straight match",
			ErrContract, b.kind, repl.Kind())
	}
	if debug.Reconcile() {
		debug.Logf("reconcile: straight %s [%d,%d) -> [%d,%d)\n",
			b.kind, b.syn.Start(), b.syn.End(), repl.Start(), repl.End())
	}
	// children first: pairing needs the still-old tree shape
	if err := reconcileChildren(old, repl, text, s); err != nil {
		return err
	}
	return s.reg.Rebind(old, repl)
}

// reconcileChildren pairs the wrapper's underlying children against the
// replacement's children in lock step by index and dispatches every pair with
// a materialized wrapper into st. Kinds are validated per pair before
// dispatch; relying on the recursive precondition alone would report the
// failure one level too deep. Both child lists must be the same length:
// leftover replacement children would end up silently unwrapped under a
// rebound parent, which is worse than failing the pass.
func reconcileChildren(old Node, repl *syntax.Node, text []byte, st Strategy) error {
	b := old.base()
	nOld, nNew := b.syn.ChildCount(), repl.ChildCount()
	for _, kid := range slices.Clone(b.kids) {
		kb := kid.base()
		if kb.idx >= nNew {
			return fmt.Errorf("%w: replacement %s has %d children, tracked %s child at index %d has no pair",
				ErrContract, b.kind, nNew, kb.kind, kb.idx)
		}
		next := repl.Child(kb.idx)
		if next.Kind() != kb.kind {
			return fmt.Errorf("%w: child %d of %s pairs %s against %s",
				ErrContract, kb.idx, b.kind, kb.kind, next.Kind())
		}
		if err := st.Reconcile(kid, next, text); err != nil {
			return err
		}
	}
	if nOld != nNew {
		return fmt.Errorf("%w: %s child count changed from %d to %d under straight reconcile",
			ErrContract, b.kind, nOld, nNew)
	}
	return nil
}
