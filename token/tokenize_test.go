package token

import (
	"errors"
	"testing"
)

type tokenizeTest struct {
	in string
	e  error
}

func TestTokenizeOK(t *testing.T) {
	tts := []tokenizeTest{
		{in: ``},
		{in: `x`},
		{in: `let x = 1;`},
		{in: `const s = "hi there";`},
		{in: `const s = 'single';`},
		{in: `const s = "esc \" \n \t ok";`},
		{in: `function f(a, b) { return a + b; }`},
		{in: `class C { m() { return null; } }`},
		{in: `enum E { A, B }`},
		{in: `if (a <= b) { f(); } else { g(); }`},
		{in: `a == b; a != b; a >= b; a < b;`},
		{in: `x = 1.25 * 3;`},
		{in: "// comment\nlet x = 1;"},
		{in: `obj.field.inner`},
	}
	for i := range tts {
		tt := &tts[i]
		_, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("# src\n%s\n# error %v", tt.in, err)
		}
	}
}

func TestTokenizeErr(t *testing.T) {
	tts := []tokenizeTest{
		{in: `"unterminated`, e: ErrToken},
		{in: "\"line\nbreak\"", e: ErrToken},
		{in: `let x = @;`, e: ErrToken},
	}
	for i := range tts {
		tt := &tts[i]
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("# src\n%s\n# expected error", tt.in)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("# src\n%s\n# got %v want %v", tt.in, err, tt.e)
		}
	}
}

func TestTokenizeTypes(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`function f() { return 1; }`))
	if err != nil {
		t.Fatal(err)
	}
	want := []Type{TFunction, TIdent, TLParen, TRParen, TLCurl, TReturn, TNumber, TSemi, TRCurl}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: got %s want %s", i, toks[i].Type, w)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	src := []byte("let x = 1;\nlet y = 2;")
	toks, err := Tokenize(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	for i := range toks {
		tok := &toks[i]
		if got := string(src[tok.Pos.I:tok.End()]); got != tok.String() {
			t.Errorf("token %d: span %q does not match bytes %q", i, got, tok.String())
		}
	}
	last := &toks[len(toks)-1]
	if line := last.Pos.Line(); line != 1 {
		t.Errorf("last token line: got %d want 1", line)
	}
}

func TestQuotedToString(t *testing.T) {
	for in, want := range map[string]string{
		`"hi"`:      "hi",
		`'hi'`:      "hi",
		`"a\nb"`:    "a\nb",
		`"a\tb"`:    "a\tb",
		`"say \""`:  `say "`,
		`"back\\s"`: `back\s`,
	} {
		if got := QuotedToString([]byte(in)); got != want {
			t.Errorf("QuotedToString(%s): got %q want %q", in, got, want)
		}
	}
}

func TestPosDocLineCol(t *testing.T) {
	pd := NewPosDoc([]byte("ab\ncd\n\nef"))
	for _, c := range []struct{ off, line, col int }{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
		{8, 3, 1},
	} {
		line, col := pd.LineCol(c.off)
		if line != c.line || col != c.col {
			t.Errorf("LineCol(%d): got %d,%d want %d,%d", c.off, line, col, c.line, c.col)
		}
	}
}
