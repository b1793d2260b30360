package morph

import (
	"unicode/utf8"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/debug"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StructuralDiff reconciles subtrees whose child lists may have diverged:
// children inserted, removed, or retyped. It aligns the old and new child
// lists by diffing fingerprint sequences, rebinds wrappers along equal runs,
// forgets wrappers on the delete side, and leaves inserted children unwrapped
// until the application touches them. A wrapper whose own kind changed has no
// safe correspondent and is forgotten with its subtree.
//
// A named declaration's fingerprint is its kind plus its declared name, so a
// declaration whose body changed still aligns with itself. Every other
// child's fingerprint covers its full text, so an insertion between two
// same-kind siblings cannot capture an existing wrapper: the inserted child
// either spells differently and gets its own rune, or spells identically and
// pairs interchangeably. An adjacent delete/insert pair in the diff is
// treated as replacement: the paired nodes reconcile recursively, which keeps
// a renamed declaration's wrapper alive.
func StructuralDiff(reg *Registry) Strategy {
	return &structural{reg: reg}
}

type structural struct {
	reg *Registry
}

func (s *structural) Reconcile(old Node, repl *syntax.Node, text []byte) error {
	b := old.base()
	if b.dead {
		return nil
	}
	if b.kind != repl.Kind() {
		if debug.Reconcile() {
			debug.Logf("reconcile: structural forget %s (replacement is %s)\n", b.kind, repl.Kind())
		}
		s.reg.Forget(old)
		return nil
	}
	if err := s.children(old, repl, text); err != nil {
		return err
	}
	return s.reg.Rebind(old, repl)
}

type fingerprint struct {
	kind syntax.Kind
	name string
}

// fingerprintOf identifies n for alignment purposes. Declarations go by
// their declared name, anything else by its full text: a name survives body
// edits, while text-keyed nodes only ever align with an identical spelling.
func fingerprintOf(n *syntax.Node, src []byte) fingerprint {
	fp := fingerprint{kind: n.Kind()}
	if n.Kind().IsDeclaration() && n.ChildCount() > 0 && n.Child(0).Kind() == syntax.Identifier {
		fp.name = n.Child(0).Text(src)
		return fp
	}
	fp.name = n.Text(src)
	return fp
}

func (s *structural) children(old Node, repl *syntax.Node, text []byte) error {
	b := old.base()
	if len(b.kids) == 0 {
		return nil
	}
	// snapshot by old index: idx fields are rewritten as pairs shift, so
	// lookups during the walk must not go through the live child list
	kidsByOld := make(map[int]Node, len(b.kids))
	for _, kid := range b.kids {
		kidsByOld[kid.base().idx] = kid
	}
	fpRunes := map[fingerprint]rune{}
	var next rune = 1
	runesOf := func(n *syntax.Node, src []byte) []rune {
		rs := make([]rune, n.ChildCount())
		for i := 0; i < n.ChildCount(); i++ {
			fp := fingerprintOf(n.Child(i), src)
			r, ok := fpRunes[fp]
			if !ok {
				r = next
				next++
				fpRunes[fp] = r
			}
			rs[i] = r
		}
		return rs
	}
	fromRunes := runesOf(b.syn, b.doc.text)
	toRunes := runesOf(repl, text)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	reconcileAt := func(fi, ti int) error {
		w := kidsByOld[fi]
		if w == nil || w.base().dead {
			return nil
		}
		if err := s.Reconcile(w, repl.Child(ti), text); err != nil {
			return err
		}
		if !w.base().dead {
			// position among siblings may have shifted
			w.base().idx = ti
		}
		return nil
	}
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range diff.Text {
				if err := reconcileAt(fi, ti); err != nil {
					return err
				}
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			nDel := utf8.RuneCountInString(diff.Text)
			nIns := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				nIns = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			for j := 0; j < nDel; j++ {
				if j < nIns {
					// replacement pair: recursion forgets on kind change
					if err := reconcileAt(fi, ti+j); err != nil {
						return err
					}
				} else if w := kidsByOld[fi]; w != nil {
					s.reg.Forget(w)
				}
				fi++
			}
			ti += nIns
		case diffpatch.DiffInsert:
			// new nodes stay unwrapped until touched
			ti += utf8.RuneCountInString(diff.Text)
		}
	}
	return nil
}
