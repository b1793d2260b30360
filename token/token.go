// Package token tokenizes script source.
package token

type Type int

const (
	TNone Type = iota
	TIdent
	TNumber
	TString
	TComment

	TFunction
	TClass
	TEnum
	TLet
	TConst
	TVar
	TReturn
	TIf
	TElse
	TTrue
	TFalse
	TNull

	TLCurl
	TRCurl
	TLParen
	TRParen
	TComma
	TSemi
	TDot
	TAssign
	TOp
)

var typeNames = map[Type]string{
	TNone:     "<none>",
	TIdent:    "ident",
	TNumber:   "number",
	TString:   "string",
	TComment:  "comment",
	TFunction: "function",
	TClass:    "class",
	TEnum:     "enum",
	TLet:      "let",
	TConst:    "const",
	TVar:      "var",
	TReturn:   "return",
	TIf:       "if",
	TElse:     "else",
	TTrue:     "true",
	TFalse:    "false",
	TNull:     "null",
	TLCurl:    "{",
	TRCurl:    "}",
	TLParen:   "(",
	TRParen:   ")",
	TComma:    ",",
	TSemi:     ";",
	TDot:      ".",
	TAssign:   "=",
	TOp:       "operator",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

var keywords = map[string]Type{
	"function": TFunction,
	"class":    TClass,
	"enum":     TEnum,
	"let":      TLet,
	"const":    TConst,
	"var":      TVar,
	"return":   TReturn,
	"if":       TIf,
	"else":     TElse,
	"true":     TTrue,
	"false":    TFalse,
	"null":     TNull,
}

type Token struct {
	Type  Type
	Bytes []byte
	Pos   *Pos
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// End is the byte offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}

// IsKeyword reports whether the token is a reserved word.
func (t *Token) IsKeyword() bool {
	switch t.Type {
	case TFunction, TClass, TEnum, TLet, TConst, TVar, TReturn, TIf, TElse, TTrue, TFalse, TNull:
		return true
	default:
		return false
	}
}
