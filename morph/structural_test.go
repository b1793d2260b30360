package morph

import (
	"testing"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"

	"github.com/stretchr/testify/require"
)

func TestEditInsertKeepsSiblings(t *testing.T) {
	doc := mustOpen(t, "function f() {}\nfunction g() {}\n")
	f, err := doc.Root().Function("f")
	require.NoError(t, err)
	g, err := doc.Root().Function("g")
	require.NoError(t, err)

	// insert a new function between the two
	at := len("function f() {}\n")
	err = doc.Edit(at, at, []byte("function mid() {}\n"))
	require.NoError(t, err)

	f2, err := doc.Root().Function("f")
	require.NoError(t, err)
	g2, err := doc.Root().Function("g")
	require.NoError(t, err)
	require.Same(t, f, f2)
	require.Same(t, g, g2)
	require.False(t, g.IsForgotten())

	mid, err := doc.Root().Function("mid")
	require.NoError(t, err)
	require.NotNil(t, mid)
}

func TestEditRemoveForgetsRemoved(t *testing.T) {
	doc := mustOpen(t, "function f() {}\nfunction g() {}\nfunction h() {}\n")
	f, err := doc.Root().Function("f")
	require.NoError(t, err)
	g, err := doc.Root().Function("g")
	require.NoError(t, err)
	h, err := doc.Root().Function("h")
	require.NoError(t, err)

	start := len("function f() {}\n")
	end := start + len("function g() {}\n")
	err = doc.Edit(start, end, nil)
	require.NoError(t, err)

	require.False(t, f.IsForgotten())
	require.True(t, g.IsForgotten())
	require.False(t, h.IsForgotten())
	name, err := h.Name()
	require.NoError(t, err)
	require.Equal(t, "h", name)
}

func TestEditRetypeForgetsSubtree(t *testing.T) {
	doc := mustOpen(t, "function f() {}\nenum E { A }\n")
	f, err := doc.Root().Function("f")
	require.NoError(t, err)
	en, err := doc.Root().Enum("E")
	require.NoError(t, err)
	members, err := en.Members()
	require.NoError(t, err)

	// replace the enum with a class of the same name
	start := len("function f() {}\n")
	err = doc.Edit(start, len(doc.Text()), []byte("class E {}\n"))
	require.NoError(t, err)

	require.False(t, f.IsForgotten())
	require.True(t, en.IsForgotten())
	for _, m := range members {
		require.True(t, m.IsForgotten())
	}
	cls, err := doc.Root().Class("E")
	require.NoError(t, err)
	require.NotNil(t, cls)
}

func TestEditInsideBodyKeepsOuterIdentity(t *testing.T) {
	doc := mustOpen(t, "function f() { let x = 1; }\n")
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)
	body, err := fn.Body()
	require.NoError(t, err)

	at := len("function f() { let x = 1; ")
	err = doc.Edit(at, at, []byte("let y = 2; "))
	require.NoError(t, err)

	require.False(t, fn.IsForgotten())
	require.False(t, body.IsForgotten())
	stmts, err := body.Statements()
	require.NoError(t, err)
	require.Len(t, stmts, 2)
}

func TestEditInsertBeforeUnnamedSibling(t *testing.T) {
	doc := mustOpen(t, "function f() { let x = 1; }\n")
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)
	body, err := fn.Body()
	require.NoError(t, err)
	xStmt, err := body.Child(0)
	require.NoError(t, err)
	require.Equal(t, "let x = 1;", xStmt.Text())

	// insert a same-kind statement in front of the tracked one
	at := len("function f() { ")
	err = doc.Edit(at, at, []byte("let y = 2; "))
	require.NoError(t, err)

	require.False(t, xStmt.IsForgotten())
	require.Equal(t, "let x = 1;", xStmt.Text())

	stmts, err := body.Statements()
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.Equal(t, "let y = 2;", stmts[0].Text())
	require.Same(t, xStmt, stmts[1])
}

func TestEditPrependShiftsIndexes(t *testing.T) {
	doc := mustOpen(t, "function a() {}\nfunction b() {}\n")
	a, err := doc.Root().Function("a")
	require.NoError(t, err)
	b, err := doc.Root().Function("b")
	require.NoError(t, err)

	err = doc.Edit(0, 0, []byte("function first() {}\n"))
	require.NoError(t, err)

	// both survivors must still navigate correctly from their new positions
	aName, err := a.Name()
	require.NoError(t, err)
	require.Equal(t, "a", aName)
	bName, err := b.Name()
	require.NoError(t, err)
	require.Equal(t, "b", bName)

	w1, err := doc.Root().Child(1)
	require.NoError(t, err)
	require.Same(t, a, w1)
	w2, err := doc.Root().Child(2)
	require.NoError(t, err)
	require.Same(t, b, w2)
}

func TestEditParseErrorLeavesTreeIntact(t *testing.T) {
	doc := mustOpen(t, "let x = 1;\n")
	stmt, err := doc.Root().Child(0)
	require.NoError(t, err)

	err = doc.Edit(0, 0, []byte("function {"))
	require.Error(t, err)
	require.False(t, stmt.IsForgotten())
	require.Equal(t, "let x = 1;", stmt.Text())
	require.Equal(t, "let x = 1;\n", string(doc.Text()))
}

func TestSetTextRewritesEverything(t *testing.T) {
	doc := mustOpen(t, "function f() {}\n")
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)

	err = doc.SetText([]byte("enum E { A }\n"))
	require.NoError(t, err)
	require.True(t, fn.IsForgotten())
	require.False(t, doc.Root().IsForgotten())
	require.Equal(t, syntax.SourceFile, doc.Root().Kind())
	en, err := doc.Root().Enum("E")
	require.NoError(t, err)
	require.NotNil(t, en)
}
