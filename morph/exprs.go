package morph

import (
	"strconv"
	"strings"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"
)

// Identifier wraps a name reference. Leaf.
type Identifier struct {
	nodeBase
}

// NumberLit wraps a numeric literal. Leaf.
type NumberLit struct {
	nodeBase
}

func (n *NumberLit) Value() (float64, error) {
	if n.dead {
		return 0, ErrForgotten
	}
	return strconv.ParseFloat(n.Text(), 64)
}

// StringLit wraps a quoted string literal. Leaf.
type StringLit struct {
	nodeBase
}

// Value is the literal's content with quotes stripped and escapes resolved.
func (s *StringLit) Value() (string, error) {
	if s.dead {
		return "", ErrForgotten
	}
	return token.QuotedToString([]byte(s.Text())), nil
}

// BoolLit wraps true or false. Leaf.
type BoolLit struct {
	nodeBase
}

func (b *BoolLit) Value() (bool, error) {
	if b.dead {
		return false, ErrForgotten
	}
	return b.Text() == "true", nil
}

// NullLit wraps the null literal. Leaf.
type NullLit struct {
	nodeBase
}

// BinaryExpr wraps a binary or assignment expression. Children are the two
// operands; the operator is the text between them.
type BinaryExpr struct {
	nodeBase
}

func (e *BinaryExpr) Left() (Node, error) {
	if e.dead {
		return nil, ErrForgotten
	}
	return e.Child(0)
}

func (e *BinaryExpr) Right() (Node, error) {
	if e.dead {
		return nil, ErrForgotten
	}
	return e.Child(1)
}

func (e *BinaryExpr) Op() (string, error) {
	if e.dead {
		return "", ErrForgotten
	}
	l, r := e.syn.Child(0), e.syn.Child(1)
	between := e.doc.text[l.End():r.Start()]
	return strings.TrimSpace(string(between)), nil
}

// CallExpr wraps a call. Children are the callee followed by the arguments.
type CallExpr struct {
	nodeBase
}

func (c *CallExpr) Callee() (Node, error) {
	if c.dead {
		return nil, ErrForgotten
	}
	return c.Child(0)
}

func (c *CallExpr) Arguments() ([]Node, error) {
	if c.dead {
		return nil, ErrForgotten
	}
	var res []Node
	for i := 1; i < c.syn.ChildCount(); i++ {
		w, err := c.Child(i)
		if err != nil {
			return nil, err
		}
		res = append(res, w)
	}
	return res, nil
}

// MemberExpr wraps a dotted member access. Children are the object and the
// property identifier.
type MemberExpr struct {
	nodeBase
}

func (m *MemberExpr) Object() (Node, error) {
	if m.dead {
		return nil, ErrForgotten
	}
	return m.Child(0)
}

func (m *MemberExpr) Property() (*Identifier, error) {
	return kidAt[*Identifier](&m.nodeBase, 1, syntax.Identifier)
}
