package morph

import (
	"testing"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"

	"github.com/stretchr/testify/require"
)

func TestReparsePreservesIdentity(t *testing.T) {
	doc := mustOpen(t, `function f() { let x = 1; }`)
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)
	body, err := fn.Body()
	require.NoError(t, err)
	stmts, err := body.Statements()
	require.NoError(t, err)
	decl, err := stmts[0].(*VariableStmt).Declarations()
	require.NoError(t, err)
	init, err := decl[0].Initializer()
	require.NoError(t, err)
	require.Equal(t, "1", init.Text())

	err = doc.Reparse([]byte(`function f() { let x = 2; }`))
	require.NoError(t, err)

	// same wrappers, new underlying nodes
	fn2, err := doc.Root().Function("f")
	require.NoError(t, err)
	require.Same(t, fn, fn2)
	require.Equal(t, "2", init.Text())
	require.False(t, init.IsForgotten())
	require.Equal(t, syntax.NumberLit, init.Kind())
}

func TestReparseRespelledName(t *testing.T) {
	doc := mustOpen(t, `function f() { let x = 1; }`)
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)
	name, err := fn.NameNode()
	require.NoError(t, err)

	err = doc.Reparse([]byte(`function golf() { let x = 1; }`))
	require.NoError(t, err)
	require.Equal(t, "golf", name.Text())
	got, err := fn.Name()
	require.NoError(t, err)
	require.Equal(t, "golf", got)
}

func TestReparseSpansShift(t *testing.T) {
	doc := mustOpen(t, `let x = 1;`)
	stmt, err := doc.Root().Child(0)
	require.NoError(t, err)
	decl, err := stmt.(*VariableStmt).Declarations()
	require.NoError(t, err)
	init, err := decl[0].Initializer()
	require.NoError(t, err)

	err = doc.Reparse([]byte(`let xyz = 100;`))
	require.NoError(t, err)
	require.Equal(t, "100", init.Text())
	require.Equal(t, len(`let xyz = `), init.Start())
}

func TestReparseKindMismatchFailsClosed(t *testing.T) {
	doc := mustOpen(t, `let x = 1;`)
	stmt, err := doc.Root().Child(0)
	require.NoError(t, err)
	decl, err := stmt.(*VariableStmt).Declarations()
	require.NoError(t, err)
	init, err := decl[0].Initializer()
	require.NoError(t, err)
	require.Equal(t, syntax.NumberLit, init.Kind())

	err = doc.Reparse([]byte(`let x = "s";`))
	require.ErrorIs(t, err, ErrContract)
}

func TestReparseChildCountFailsClosed(t *testing.T) {
	doc := mustOpen(t, `let x = 1;`)
	_, err := doc.Root().Child(0)
	require.NoError(t, err)

	// one more declaration under the statement
	err = doc.Reparse([]byte(`let x = 1, y = 2;`))
	require.ErrorIs(t, err, ErrContract)
}

func TestReparseTopLevelCountFailsClosed(t *testing.T) {
	doc := mustOpen(t, `let x = 1;`)
	err := doc.Reparse([]byte(`let x = 1; let y = 2;`))
	require.ErrorIs(t, err, ErrContract)
}

func TestReparseOfForgottenSubtreeSkipsIt(t *testing.T) {
	doc := mustOpen(t, `function f() {} function g() {}`)
	f, err := doc.Root().Function("f")
	require.NoError(t, err)
	g, err := doc.Root().Function("g")
	require.NoError(t, err)
	f.Forget()

	err = doc.Reparse([]byte(`function f() {} function gg() {}`))
	require.NoError(t, err)
	got, err := g.Name()
	require.NoError(t, err)
	require.Equal(t, "gg", got)
}

func TestRefreshAfterContractViolation(t *testing.T) {
	doc := mustOpen(t, `let x = 1;`)
	stmt, err := doc.Root().Child(0)
	require.NoError(t, err)

	err = doc.Reparse([]byte(`let x = 1; let y = 2;`))
	require.ErrorIs(t, err, ErrContract)

	require.NoError(t, doc.Refresh())
	// the root survives, everything below was rebuilt
	require.False(t, doc.Root().IsForgotten())
	require.Equal(t, 1, doc.Registry().Len())
	_ = stmt
	fresh, err := doc.Root().Child(0)
	require.NoError(t, err)
	require.NotSame(t, stmt, fresh)
}
