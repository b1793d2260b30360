package morph

import (
	"fmt"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
)

// Named is implemented by facades whose first child is an identifier naming
// the construct.
type Named interface {
	Node
	Name() (string, error)
	NameNode() (*Identifier, error)
}

// Bodied is implemented by facades carrying a block body as their last child.
type Bodied interface {
	Node
	Body() (*Block, error)
}

// kidsAs materializes the underlying children of kind k, in order.
func kidsAs[T Node](b *nodeBase, k syntax.Kind) ([]T, error) {
	if b.dead {
		return nil, ErrForgotten
	}
	var res []T
	for i := 0; i < b.syn.ChildCount(); i++ {
		if b.syn.Child(i).Kind() != k {
			continue
		}
		w, err := b.Child(i)
		if err != nil {
			return nil, err
		}
		res = append(res, w.(T))
	}
	return res, nil
}

// kidAt materializes child i and asserts its facade type.
func kidAt[T Node](b *nodeBase, i int, k syntax.Kind) (T, error) {
	var zero T
	if b.dead {
		return zero, ErrForgotten
	}
	if i >= b.syn.ChildCount() {
		return zero, fmt.Errorf("%w: %s has no %s child at index %d",
			ErrContract, b.kind, k, i)
	}
	if got := b.syn.Child(i).Kind(); got != k {
		return zero, fmt.Errorf("%w: child %d of %s is %s, not %s",
			ErrContract, i, b.kind, got, k)
	}
	w, err := b.Child(i)
	if err != nil {
		return zero, err
	}
	return w.(T), nil
}

func nameOf(b *nodeBase) (string, error) {
	id, err := kidAt[*Identifier](b, 0, syntax.Identifier)
	if err != nil {
		return "", err
	}
	return id.Text(), nil
}

// SourceFile is the root facade. It is the only facade with no parent.
type SourceFile struct {
	nodeBase
}

func (f *SourceFile) Functions() ([]*FunctionDecl, error) {
	return kidsAs[*FunctionDecl](&f.nodeBase, syntax.FunctionDecl)
}

func (f *SourceFile) Classes() ([]*ClassDecl, error) {
	return kidsAs[*ClassDecl](&f.nodeBase, syntax.ClassDecl)
}

func (f *SourceFile) Enums() ([]*EnumDecl, error) {
	return kidsAs[*EnumDecl](&f.nodeBase, syntax.EnumDecl)
}

// Statements returns the top-level statements, skipping declarations.
func (f *SourceFile) Statements() ([]Node, error) {
	if f.dead {
		return nil, ErrForgotten
	}
	var res []Node
	for i := 0; i < f.syn.ChildCount(); i++ {
		if !f.syn.Child(i).Kind().IsStatement() {
			continue
		}
		w, err := f.Child(i)
		if err != nil {
			return nil, err
		}
		res = append(res, w)
	}
	return res, nil
}

// Function returns the function declaration named name, or nil when absent.
func (f *SourceFile) Function(name string) (*FunctionDecl, error) {
	fns, err := f.Functions()
	if err != nil {
		return nil, err
	}
	for _, fn := range fns {
		n, err := fn.Name()
		if err != nil {
			return nil, err
		}
		if n == name {
			return fn, nil
		}
	}
	return nil, nil
}

// Class returns the class declaration named name, or nil when absent.
func (f *SourceFile) Class(name string) (*ClassDecl, error) {
	cls, err := f.Classes()
	if err != nil {
		return nil, err
	}
	for _, c := range cls {
		n, err := c.Name()
		if err != nil {
			return nil, err
		}
		if n == name {
			return c, nil
		}
	}
	return nil, nil
}

// Enum returns the enum declaration named name, or nil when absent.
func (f *SourceFile) Enum(name string) (*EnumDecl, error) {
	ens, err := f.Enums()
	if err != nil {
		return nil, err
	}
	for _, e := range ens {
		n, err := e.Name()
		if err != nil {
			return nil, err
		}
		if n == name {
			return e, nil
		}
	}
	return nil, nil
}

// FunctionDecl wraps a top-level or nested function declaration. Children are
// the name, the parameters, and the body block.
type FunctionDecl struct {
	nodeBase
}

func (f *FunctionDecl) Name() (string, error) { return nameOf(&f.nodeBase) }

func (f *FunctionDecl) NameNode() (*Identifier, error) {
	return kidAt[*Identifier](&f.nodeBase, 0, syntax.Identifier)
}

func (f *FunctionDecl) Parameters() ([]*Parameter, error) {
	return kidsAs[*Parameter](&f.nodeBase, syntax.Parameter)
}

func (f *FunctionDecl) Body() (*Block, error) {
	if f.dead {
		return nil, ErrForgotten
	}
	return kidAt[*Block](&f.nodeBase, f.syn.ChildCount()-1, syntax.Block)
}

// ClassDecl wraps a class declaration. Children are the name followed by the
// methods.
type ClassDecl struct {
	nodeBase
}

func (c *ClassDecl) Name() (string, error) { return nameOf(&c.nodeBase) }

func (c *ClassDecl) NameNode() (*Identifier, error) {
	return kidAt[*Identifier](&c.nodeBase, 0, syntax.Identifier)
}

func (c *ClassDecl) Methods() ([]*MethodDecl, error) {
	return kidsAs[*MethodDecl](&c.nodeBase, syntax.MethodDecl)
}

// Method returns the method named name, or nil when absent.
func (c *ClassDecl) Method(name string) (*MethodDecl, error) {
	ms, err := c.Methods()
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		n, err := m.Name()
		if err != nil {
			return nil, err
		}
		if n == name {
			return m, nil
		}
	}
	return nil, nil
}

// MethodDecl wraps a method inside a class. Shaped like FunctionDecl.
type MethodDecl struct {
	nodeBase
}

func (m *MethodDecl) Name() (string, error) { return nameOf(&m.nodeBase) }

func (m *MethodDecl) NameNode() (*Identifier, error) {
	return kidAt[*Identifier](&m.nodeBase, 0, syntax.Identifier)
}

func (m *MethodDecl) Parameters() ([]*Parameter, error) {
	return kidsAs[*Parameter](&m.nodeBase, syntax.Parameter)
}

func (m *MethodDecl) Body() (*Block, error) {
	if m.dead {
		return nil, ErrForgotten
	}
	return kidAt[*Block](&m.nodeBase, m.syn.ChildCount()-1, syntax.Block)
}

// EnumDecl wraps an enum declaration. Children are the name followed by the
// members.
type EnumDecl struct {
	nodeBase
}

func (e *EnumDecl) Name() (string, error) { return nameOf(&e.nodeBase) }

func (e *EnumDecl) NameNode() (*Identifier, error) {
	return kidAt[*Identifier](&e.nodeBase, 0, syntax.Identifier)
}

func (e *EnumDecl) Members() ([]*EnumMember, error) {
	return kidsAs[*EnumMember](&e.nodeBase, syntax.EnumMember)
}

// EnumMember wraps one member of an enum: a name with an optional
// initializer expression.
type EnumMember struct {
	nodeBase
}

func (m *EnumMember) Name() (string, error) { return nameOf(&m.nodeBase) }

func (m *EnumMember) NameNode() (*Identifier, error) {
	return kidAt[*Identifier](&m.nodeBase, 0, syntax.Identifier)
}

// Initializer returns the member's value expression, or nil when the member
// is auto-valued.
func (m *EnumMember) Initializer() (Node, error) {
	if m.dead {
		return nil, ErrForgotten
	}
	if m.syn.ChildCount() < 2 {
		return nil, nil
	}
	return m.Child(1)
}

// Parameter wraps one function or method parameter. It is a leaf; the
// parameter name is its whole text.
type Parameter struct {
	nodeBase
}

func (p *Parameter) Name() (string, error) {
	if p.dead {
		return "", ErrForgotten
	}
	return p.Text(), nil
}

var (
	_ Named  = &FunctionDecl{}
	_ Named  = &ClassDecl{}
	_ Named  = &MethodDecl{}
	_ Named  = &EnumDecl{}
	_ Named  = &EnumMember{}
	_ Bodied = &FunctionDecl{}
	_ Bodied = &MethodDecl{}
)
