// Package parse turns script source into an immutable syntax tree.
//
// Parsing is a pure function of the whole document text: the same bytes always
// produce an equivalent tree, and every parse produces a fresh tree. The root
// is always a SourceFile spanning the document.
package parse

import (
	"fmt"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"
)

func Parse(src []byte) (*syntax.Node, error) {
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	p := &parser{src: src}
	// comments contribute no named nodes
	for i := range toks {
		if toks[i].Type != token.TComment {
			p.toks = append(p.toks, toks[i])
		}
	}
	var items []*syntax.Node
	for !p.eof() {
		item, err := p.sourceElement()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return syntax.New(syntax.SourceFile, 0, len(src), items), nil
}

type parser struct {
	src  []byte
	toks []token.Token
	i    int
}

func (p *parser) eof() bool {
	return p.i >= len(p.toks)
}

func (p *parser) peek() *token.Token {
	if p.eof() {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := p.peek()
	if t != nil {
		p.i++
	}
	return t
}

func (p *parser) at(typ token.Type) bool {
	t := p.peek()
	return t != nil && t.Type == typ
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	t := p.peek()
	if t == nil {
		return nil, fmt.Errorf("%w: expected %s at end of input", ErrParse, typ)
	}
	if t.Type != typ {
		return nil, fmt.Errorf("%w: expected %s, got %q %s", ErrParse, typ, string(t.Bytes), t.Pos)
	}
	p.i++
	return t, nil
}

func (p *parser) sourceElement() (*syntax.Node, error) {
	t := p.peek()
	switch t.Type {
	case token.TFunction:
		return p.functionDecl()
	case token.TClass:
		return p.classDecl()
	case token.TEnum:
		return p.enumDecl()
	default:
		return p.statement()
	}
}

// functionDecl := "function" Identifier "(" params ")" Block
func (p *parser) functionDecl() (*syntax.Node, error) {
	kw, err := p.expect(token.TFunction)
	if err != nil {
		return nil, err
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	params, err := p.parameters()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	children := append([]*syntax.Node{name}, params...)
	children = append(children, body)
	return syntax.New(syntax.FunctionDecl, kw.Pos.I, body.End(), children), nil
}

// classDecl := "class" Identifier "{" { methodDecl } "}"
func (p *parser) classDecl() (*syntax.Node, error) {
	kw, err := p.expect(token.TClass)
	if err != nil {
		return nil, err
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TLCurl); err != nil {
		return nil, err
	}
	children := []*syntax.Node{name}
	for !p.at(token.TRCurl) {
		if p.eof() {
			return nil, fmt.Errorf("%w: unterminated class body %s", ErrParse, kw.Pos)
		}
		m, err := p.methodDecl()
		if err != nil {
			return nil, err
		}
		children = append(children, m)
	}
	rc, err := p.expect(token.TRCurl)
	if err != nil {
		return nil, err
	}
	return syntax.New(syntax.ClassDecl, kw.Pos.I, rc.End(), children), nil
}

// methodDecl := Identifier "(" params ")" Block
func (p *parser) methodDecl() (*syntax.Node, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	params, err := p.parameters()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	children := append([]*syntax.Node{name}, params...)
	children = append(children, body)
	return syntax.New(syntax.MethodDecl, name.Start(), body.End(), children), nil
}

// enumDecl := "enum" Identifier "{" enumMember {"," enumMember} [","] "}"
func (p *parser) enumDecl() (*syntax.Node, error) {
	kw, err := p.expect(token.TEnum)
	if err != nil {
		return nil, err
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TLCurl); err != nil {
		return nil, err
	}
	children := []*syntax.Node{name}
	for !p.at(token.TRCurl) {
		m, err := p.enumMember()
		if err != nil {
			return nil, err
		}
		children = append(children, m)
		if !p.at(token.TComma) {
			break
		}
		p.next()
	}
	rc, err := p.expect(token.TRCurl)
	if err != nil {
		return nil, err
	}
	return syntax.New(syntax.EnumDecl, kw.Pos.I, rc.End(), children), nil
}

// enumMember := Identifier [ "=" expression ]
func (p *parser) enumMember() (*syntax.Node, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	children := []*syntax.Node{name}
	end := name.End()
	if p.at(token.TAssign) {
		p.next()
		init, err := p.expression()
		if err != nil {
			return nil, err
		}
		children = append(children, init)
		end = init.End()
	}
	return syntax.New(syntax.EnumMember, name.Start(), end, children), nil
}

// parameters := "(" [ Identifier {"," Identifier} ] ")"
// Each parameter is a leaf node whose text is its name.
func (p *parser) parameters() ([]*syntax.Node, error) {
	if _, err := p.expect(token.TLParen); err != nil {
		return nil, err
	}
	var params []*syntax.Node
	for !p.at(token.TRParen) {
		t, err := p.expect(token.TIdent)
		if err != nil {
			return nil, err
		}
		params = append(params, syntax.New(syntax.Parameter, t.Pos.I, t.End(), nil))
		if !p.at(token.TComma) {
			break
		}
		p.next()
	}
	if _, err := p.expect(token.TRParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *parser) block() (*syntax.Node, error) {
	lc, err := p.expect(token.TLCurl)
	if err != nil {
		return nil, err
	}
	var stmts []*syntax.Node
	for !p.at(token.TRCurl) {
		if p.eof() {
			return nil, fmt.Errorf("%w: unterminated block %s", ErrParse, lc.Pos)
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	rc, err := p.expect(token.TRCurl)
	if err != nil {
		return nil, err
	}
	return syntax.New(syntax.Block, lc.Pos.I, rc.End(), stmts), nil
}

func (p *parser) statement() (*syntax.Node, error) {
	t := p.peek()
	if t == nil {
		return nil, fmt.Errorf("%w: expected statement at end of input", ErrParse)
	}
	switch t.Type {
	case token.TLet, token.TConst, token.TVar:
		return p.variableStmt()
	case token.TReturn:
		return p.returnStmt()
	case token.TIf:
		return p.ifStmt()
	case token.TLCurl:
		return p.block()
	case token.TFunction:
		return p.functionDecl()
	default:
		return p.expressionStmt()
	}
}

// variableStmt := ("let"|"const"|"var") variableDecl {"," variableDecl} ";"
func (p *parser) variableStmt() (*syntax.Node, error) {
	kw := p.next()
	var decls []*syntax.Node
	for {
		d, err := p.variableDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
		if !p.at(token.TComma) {
			break
		}
		p.next()
	}
	semi, err := p.expect(token.TSemi)
	if err != nil {
		return nil, err
	}
	return syntax.New(syntax.VariableStmt, kw.Pos.I, semi.End(), decls), nil
}

// variableDecl := Identifier [ "=" expression ]
func (p *parser) variableDecl() (*syntax.Node, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	children := []*syntax.Node{name}
	end := name.End()
	if p.at(token.TAssign) {
		p.next()
		init, err := p.expression()
		if err != nil {
			return nil, err
		}
		children = append(children, init)
		end = init.End()
	}
	return syntax.New(syntax.VariableDecl, name.Start(), end, children), nil
}

func (p *parser) returnStmt() (*syntax.Node, error) {
	kw := p.next()
	var children []*syntax.Node
	if !p.at(token.TSemi) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		children = append(children, e)
	}
	semi, err := p.expect(token.TSemi)
	if err != nil {
		return nil, err
	}
	return syntax.New(syntax.ReturnStmt, kw.Pos.I, semi.End(), children), nil
}

// ifStmt := "if" "(" expression ")" statement [ "else" statement ]
func (p *parser) ifStmt() (*syntax.Node, error) {
	kw := p.next()
	if _, err := p.expect(token.TLParen); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TRParen); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	children := []*syntax.Node{cond, then}
	end := then.End()
	if p.at(token.TElse) {
		p.next()
		alt, err := p.statement()
		if err != nil {
			return nil, err
		}
		children = append(children, alt)
		end = alt.End()
	}
	return syntax.New(syntax.IfStmt, kw.Pos.I, end, children), nil
}

func (p *parser) expressionStmt() (*syntax.Node, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(token.TSemi)
	if err != nil {
		return nil, err
	}
	return syntax.New(syntax.ExpressionStmt, e.Start(), semi.End(), []*syntax.Node{e}), nil
}

// expression := binary [ "=" expression ]
// Assignment reuses BinaryExpr; the operator is recoverable from the text
// between the two children.
func (p *parser) expression() (*syntax.Node, error) {
	left, err := p.binary(0)
	if err != nil {
		return nil, err
	}
	if p.at(token.TAssign) {
		p.next()
		right, err := p.expression()
		if err != nil {
			return nil, err
		}
		return syntax.New(syntax.BinaryExpr, left.Start(), right.End(), []*syntax.Node{left, right}), nil
	}
	return left, nil
}

var precedence = map[string]int{
	"==": 1, "!=": 1,
	"<": 2, ">": 2, "<=": 2, ">=": 2,
	"+": 3, "-": 3,
	"*": 4, "/": 4,
}

func (p *parser) binary(minPrec int) (*syntax.Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t == nil || t.Type != token.TOp {
			return left, nil
		}
		prec, ok := precedence[string(t.Bytes)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operator %q %s", errInternal, string(t.Bytes), t.Pos)
		}
		if prec < minPrec {
			return left, nil
		}
		p.next()
		right, err := p.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = syntax.New(syntax.BinaryExpr, left.Start(), right.End(), []*syntax.Node{left, right})
	}
}

func (p *parser) unary() (*syntax.Node, error) {
	// prefix minus folds into the literal span
	t := p.peek()
	if t != nil && t.Type == token.TOp && string(t.Bytes) == "-" {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		if operand.Kind() == syntax.NumberLit {
			return syntax.New(syntax.NumberLit, t.Pos.I, operand.End(), nil), nil
		}
		return syntax.New(syntax.BinaryExpr, t.Pos.I, operand.End(),
			[]*syntax.Node{syntax.New(syntax.NumberLit, t.Pos.I, t.Pos.I, nil), operand}), nil
	}
	return p.postfix()
}

// postfix := primary { "(" args ")" | "." Identifier }
func (p *parser) postfix() (*syntax.Node, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(token.TLParen):
			p.next()
			children := []*syntax.Node{e}
			for !p.at(token.TRParen) {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				children = append(children, arg)
				if !p.at(token.TComma) {
					break
				}
				p.next()
			}
			rp, err := p.expect(token.TRParen)
			if err != nil {
				return nil, err
			}
			e = syntax.New(syntax.CallExpr, e.Start(), rp.End(), children)
		case p.at(token.TDot):
			p.next()
			prop, err := p.identifier()
			if err != nil {
				return nil, err
			}
			e = syntax.New(syntax.MemberExpr, e.Start(), prop.End(), []*syntax.Node{e, prop})
		default:
			return e, nil
		}
	}
}

func (p *parser) primary() (*syntax.Node, error) {
	t := p.peek()
	if t == nil {
		return nil, fmt.Errorf("%w: expected expression at end of input", ErrParse)
	}
	switch t.Type {
	case token.TIdent:
		return p.identifier()
	case token.TNumber:
		p.next()
		return syntax.New(syntax.NumberLit, t.Pos.I, t.End(), nil), nil
	case token.TString:
		p.next()
		return syntax.New(syntax.StringLit, t.Pos.I, t.End(), nil), nil
	case token.TTrue, token.TFalse:
		p.next()
		return syntax.New(syntax.BoolLit, t.Pos.I, t.End(), nil), nil
	case token.TNull:
		p.next()
		return syntax.New(syntax.NullLit, t.Pos.I, t.End(), nil), nil
	case token.TLParen:
		p.next()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.TRParen); err != nil {
			return nil, err
		}
		// parens contribute to the parent span only
		return e, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
}

func (p *parser) identifier() (*syntax.Node, error) {
	t, err := p.expect(token.TIdent)
	if err != nil {
		return nil, err
	}
	return syntax.New(syntax.Identifier, t.Pos.I, t.End(), nil), nil
}
