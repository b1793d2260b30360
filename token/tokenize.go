package token

import (
	"fmt"
)

// Tokenize appends the tokens of src to dst. Comments are emitted as TComment
// tokens; callers that do not care about them filter downstream.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < n && src[i+1] == '/':
			start := i
			for i < n && src[i] != '\n' {
				i++
			}
			dst = append(dst, Token{
				Type:  TComment,
				Bytes: src[start:i],
				Pos:   posDoc.Pos(start),
			})
		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(src[i]) {
				i++
			}
			word := src[start:i]
			typ, ok := keywords[string(word)]
			if !ok {
				typ = TIdent
			}
			dst = append(dst, Token{
				Type:  typ,
				Bytes: word,
				Pos:   posDoc.Pos(start),
			})
		case isDigit(c):
			start := i
			sawDot := false
			for i < n {
				if isDigit(src[i]) {
					i++
					continue
				}
				if src[i] == '.' && !sawDot && i+1 < n && isDigit(src[i+1]) {
					sawDot = true
					i++
					continue
				}
				break
			}
			dst = append(dst, Token{
				Type:  TNumber,
				Bytes: src[start:i],
				Pos:   posDoc.Pos(start),
			})
		case c == '"' || c == '\'':
			start := i
			quote := c
			i++
			for i < n && src[i] != quote {
				if src[i] == '\\' && i+1 < n {
					i++
				}
				if src[i] == '\n' {
					return nil, fmt.Errorf("%w: newline in string %s", ErrToken, posDoc.Pos(start))
				}
				i++
			}
			if i == n {
				return nil, fmt.Errorf("%w: unterminated string %s", ErrToken, posDoc.Pos(start))
			}
			i++
			dst = append(dst, Token{
				Type:  TString,
				Bytes: src[start:i],
				Pos:   posDoc.Pos(start),
			})
		default:
			typ, size := punct(src, i)
			if typ == TNone {
				return nil, fmt.Errorf("%w: unexpected character %q %s", ErrToken, string(c), posDoc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  typ,
				Bytes: src[i : i+size],
				Pos:   posDoc.Pos(i),
			})
			i += size
		}
	}
	return dst, nil
}

func punct(src []byte, i int) (Type, int) {
	two := ""
	if i+1 < len(src) {
		two = string(src[i : i+2])
	}
	switch two {
	case "==", "!=", "<=", ">=":
		return TOp, 2
	}
	switch src[i] {
	case '{':
		return TLCurl, 1
	case '}':
		return TRCurl, 1
	case '(':
		return TLParen, 1
	case ')':
		return TRParen, 1
	case ',':
		return TComma, 1
	case ';':
		return TSemi, 1
	case '.':
		return TDot, 1
	case '=':
		return TAssign, 1
	case '+', '-', '*', '/', '<', '>':
		return TOp, 1
	}
	return TNone, 0
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// QuotedToString strips the surrounding quotes of a TString token and resolves
// backslash escapes.
func QuotedToString(b []byte) string {
	if len(b) < 2 {
		panic(errInternal)
	}
	b = b[1 : len(b)-1]
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+1 < len(b) {
			i++
			switch b[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, b[i])
			}
			continue
		}
		out = append(out, b[i])
	}
	return string(out)
}
