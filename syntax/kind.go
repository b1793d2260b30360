// Package syntax defines the immutable parse tree produced by package parse.
package syntax

import "fmt"

// Kind tags every node with its syntactic construct. The enumeration is
// closed: downstream dispatch is over these values only, never over runtime
// type probing.
type Kind int

const (
	SourceFile Kind = iota
	FunctionDecl
	ClassDecl
	EnumDecl
	EnumMember
	MethodDecl
	Parameter
	Block
	VariableStmt
	VariableDecl
	ExpressionStmt
	ReturnStmt
	IfStmt
	Identifier
	NumberLit
	StringLit
	BoolLit
	NullLit
	BinaryExpr
	CallExpr
	MemberExpr
)

var kindNames = map[Kind]string{
	SourceFile:     "SourceFile",
	FunctionDecl:   "FunctionDecl",
	ClassDecl:      "ClassDecl",
	EnumDecl:       "EnumDecl",
	EnumMember:     "EnumMember",
	MethodDecl:     "MethodDecl",
	Parameter:      "Parameter",
	Block:          "Block",
	VariableStmt:   "VariableStmt",
	VariableDecl:   "VariableDecl",
	ExpressionStmt: "ExpressionStmt",
	ReturnStmt:     "ReturnStmt",
	IfStmt:         "IfStmt",
	Identifier:     "Identifier",
	NumberLit:      "NumberLit",
	StringLit:      "StringLit",
	BoolLit:        "BoolLit",
	NullLit:        "NullLit",
	BinaryExpr:     "BinaryExpr",
	CallExpr:       "CallExpr",
	MemberExpr:     "MemberExpr",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames))
	for k := SourceFile; k <= MemberExpr; k++ {
		res = append(res, k)
	}
	return res
}

func (k Kind) IsLeaf() bool {
	switch k {
	case Identifier, NumberLit, StringLit, BoolLit, NullLit, Parameter:
		return true
	default:
		return false
	}
}

func (k Kind) IsDeclaration() bool {
	switch k {
	case FunctionDecl, ClassDecl, EnumDecl, MethodDecl:
		return true
	default:
		return false
	}
}

func (k Kind) IsStatement() bool {
	switch k {
	case VariableStmt, ExpressionStmt, ReturnStmt, IfStmt, Block:
		return true
	default:
		return false
	}
}

func (k Kind) IsExpression() bool {
	switch k {
	case Identifier, NumberLit, StringLit, BoolLit, NullLit, BinaryExpr, CallExpr, MemberExpr:
		return true
	default:
		return false
	}
}
