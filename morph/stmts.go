package morph

import (
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
)

// Block wraps a braced statement list.
type Block struct {
	nodeBase
}

// Statements materializes every statement in the block, in order.
func (b *Block) Statements() ([]Node, error) {
	return b.Children()
}

// VariableStmt wraps a let, const, or var statement. Children are the
// declarations; the keyword is not a child, read it from the statement text.
type VariableStmt struct {
	nodeBase
}

func (v *VariableStmt) Declarations() ([]*VariableDecl, error) {
	return kidsAs[*VariableDecl](&v.nodeBase, syntax.VariableDecl)
}

// VariableDecl wraps one declared name with an optional initializer.
type VariableDecl struct {
	nodeBase
}

func (v *VariableDecl) Name() (string, error) { return nameOf(&v.nodeBase) }

func (v *VariableDecl) NameNode() (*Identifier, error) {
	return kidAt[*Identifier](&v.nodeBase, 0, syntax.Identifier)
}

// Initializer returns the declared value expression, or nil when the
// declaration has none.
func (v *VariableDecl) Initializer() (Node, error) {
	if v.dead {
		return nil, ErrForgotten
	}
	if v.syn.ChildCount() < 2 {
		return nil, nil
	}
	return v.Child(1)
}

// ExpressionStmt wraps an expression used as a statement.
type ExpressionStmt struct {
	nodeBase
}

func (e *ExpressionStmt) Expression() (Node, error) {
	if e.dead {
		return nil, ErrForgotten
	}
	return e.Child(0)
}

// ReturnStmt wraps a return statement with an optional result expression.
type ReturnStmt struct {
	nodeBase
}

// Expression returns the returned value, or nil for a bare return.
func (r *ReturnStmt) Expression() (Node, error) {
	if r.dead {
		return nil, ErrForgotten
	}
	if r.syn.ChildCount() == 0 {
		return nil, nil
	}
	return r.Child(0)
}

// IfStmt wraps an if statement. Children are the condition, the then branch,
// and the else branch when present.
type IfStmt struct {
	nodeBase
}

func (s *IfStmt) Condition() (Node, error) {
	if s.dead {
		return nil, ErrForgotten
	}
	return s.Child(0)
}

func (s *IfStmt) Then() (Node, error) {
	if s.dead {
		return nil, ErrForgotten
	}
	return s.Child(1)
}

// Else returns the else branch, or nil when the statement has none.
func (s *IfStmt) Else() (Node, error) {
	if s.dead {
		return nil, ErrForgotten
	}
	if s.syn.ChildCount() < 3 {
		return nil, nil
	}
	return s.Child(2)
}

var (
	_ Named = &VariableDecl{}
)
