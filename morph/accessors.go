package morph

import (
	"fmt"
	"strings"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/encode"
)

// Mutators synthesize a source fragment, splice it into the document text,
// and let the structural reconcile pass rebind the wrapper tree. The receiver
// and every wrapper outside the edited span keep their identity; the returned
// wrapper is freshly materialized over the inserted node.

// AddFunction appends a function declaration to the file.
func (f *SourceFile) AddFunction(name string, params []string, body ...string) (*FunctionDecl, error) {
	if f.dead {
		return nil, ErrForgotten
	}
	src := encode.FunctionSource(name, params, body...)
	if err := appendDecl(f.doc, src); err != nil {
		return nil, err
	}
	fn, err := f.Function(name)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: inserted function %q not found after reparse", ErrContract, name)
	}
	return fn, nil
}

// AddEnum appends an enum declaration to the file.
func (f *SourceFile) AddEnum(name string, members ...string) (*EnumDecl, error) {
	if f.dead {
		return nil, ErrForgotten
	}
	src := encode.EnumSource(name, members...)
	if err := appendDecl(f.doc, src); err != nil {
		return nil, err
	}
	en, err := f.Enum(name)
	if err != nil {
		return nil, err
	}
	if en == nil {
		return nil, fmt.Errorf("%w: inserted enum %q not found after reparse", ErrContract, name)
	}
	return en, nil
}

// AddMethod inserts a method before the class's closing brace.
func (c *ClassDecl) AddMethod(name string, params []string, body ...string) (*MethodDecl, error) {
	if c.dead {
		return nil, ErrForgotten
	}
	src := encode.MethodSource(name, params, body...)
	at := c.syn.End() - 1
	frag := indentLines(src, "  ") + "\n"
	if err := c.doc.Edit(at, at, []byte(frag)); err != nil {
		return nil, err
	}
	m, err := c.Method(name)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: inserted method %q not found after reparse", ErrContract, name)
	}
	return m, nil
}

// AddStatement inserts a statement before the block's closing brace and
// returns its wrapper.
func (b *Block) AddStatement(stmt string) (Node, error) {
	if b.dead {
		return nil, ErrForgotten
	}
	at := b.syn.End() - 1
	frag := strings.TrimRight(stmt, "\n") + "\n"
	if err := b.doc.Edit(at, at, []byte(frag)); err != nil {
		return nil, err
	}
	if b.syn.ChildCount() == 0 {
		return nil, fmt.Errorf("%w: inserted statement not found after reparse", ErrContract)
	}
	return b.Child(b.syn.ChildCount() - 1)
}

// Rename replaces the construct's name identifier in place. The tree keeps
// its shape, so every wrapper survives the edit.
func Rename(n Named, to string) error {
	id, err := n.NameNode()
	if err != nil {
		return err
	}
	return n.Document().Edit(id.Start(), id.End(), []byte(to))
}

func appendDecl(d *Document, src string) error {
	at := len(d.text)
	frag := src
	if at > 0 && d.text[at-1] != '\n' {
		frag = "\n" + frag
	}
	return d.Edit(at, at, []byte(frag))
}

func indentLines(s, pad string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = pad + ln
		}
	}
	return strings.Join(lines, "\n")
}
