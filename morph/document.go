package morph

import (
	"fmt"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/parse"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/textedit"
)

// Document owns one source text, the syntax tree parsed from it, and the
// registry of wrappers over that tree. All mutation goes through the
// Document: the text is replaced wholesale, reparsed, and the wrapper tree
// reconciled against the fresh parse.
type Document struct {
	reg  *Registry
	text []byte
	root *SourceFile
}

// Open parses text and returns a document with the root wrapped.
func Open(text []byte) (*Document, error) {
	syn, err := parse.Parse(text)
	if err != nil {
		return nil, err
	}
	d := &Document{text: text}
	d.reg = newRegistry(d)
	w, err := d.reg.Wrap(syn, nil)
	if err != nil {
		return nil, err
	}
	d.root = w.(*SourceFile)
	return d, nil
}

// Root is the SourceFile wrapper. Its identity is stable for the life of the
// document; even Refresh rebinds it rather than replacing it.
func (d *Document) Root() *SourceFile { return d.root }

func (d *Document) Registry() *Registry { return d.reg }

// Text is the current source text. Callers must not modify it.
func (d *Document) Text() []byte { return d.text }

// Reparse replaces the document text with one that must parse to an
// identically shaped tree, such as the original text with a literal or name
// respelled. Every materialized wrapper is rebound in place. A shape change
// surfaces as ErrContract; the document is then in an undefined state and
// should be Refreshed.
func (d *Document) Reparse(text []byte) error {
	syn, err := parse.Parse(text)
	if err != nil {
		return err
	}
	if err := Straight(d.reg).Reconcile(d.root, syn, text); err != nil {
		return err
	}
	d.text = text
	return nil
}

// Edit splices insert over text[start:end], reparses, and reconciles
// structurally: wrappers whose nodes survive the edit keep their identity,
// wrappers over removed or retyped nodes are forgotten, inserted nodes stay
// unwrapped until navigated to.
func (d *Document) Edit(start, end int, insert []byte) error {
	next, err := textedit.Splice(d.text, start, end, insert)
	if err != nil {
		return err
	}
	return d.SetText(next)
}

// SetText replaces the whole document text, reconciling structurally as Edit
// does.
func (d *Document) SetText(text []byte) error {
	syn, err := parse.Parse(text)
	if err != nil {
		return err
	}
	if d.root.Kind() != syn.Kind() {
		return fmt.Errorf("%w: reparse produced %s at the root", ErrContract, syn.Kind())
	}
	if err := StructuralDiff(d.reg).Reconcile(d.root, syn, text); err != nil {
		return err
	}
	d.text = text
	return nil
}

// Refresh discards every wrapper below the root and rebinds the root to a
// fresh parse of the current text. It is the recovery path after ErrContract,
// trading all outstanding child wrappers for a consistent tree.
func (d *Document) Refresh() error {
	syn, err := parse.Parse(d.text)
	if err != nil {
		return err
	}
	rb := d.root.base()
	kids := rb.kids
	rb.kids = nil
	for _, kid := range kids {
		d.reg.Forget(kid)
	}
	return d.reg.Rebind(d.root, syn)
}

// NodeAt is DescendantAt from the root.
func (d *Document) NodeAt(off int) (Node, error) {
	return d.root.DescendantAt(off)
}
