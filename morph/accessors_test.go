package morph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEnum(t *testing.T) {
	doc := mustOpen(t, "function f() {}\n")
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)

	en, err := doc.Root().AddEnum("Color", "Red", "Green", "Blue")
	require.NoError(t, err)
	name, err := en.Name()
	require.NoError(t, err)
	require.Equal(t, "Color", name)
	members, err := en.Members()
	require.NoError(t, err)
	require.Len(t, members, 3)
	m0, err := members[0].Name()
	require.NoError(t, err)
	require.Equal(t, "Red", m0)

	require.False(t, fn.IsForgotten())
	require.Contains(t, string(doc.Text()), "enum Color {")
}

func TestAddFunction(t *testing.T) {
	doc := mustOpen(t, "let seed = 1;\n")
	fn, err := doc.Root().AddFunction("twice", []string{"n"}, "return n * 2;")
	require.NoError(t, err)
	params, err := fn.Parameters()
	require.NoError(t, err)
	require.Len(t, params, 1)
	body, err := fn.Body()
	require.NoError(t, err)
	stmts, err := body.Statements()
	require.NoError(t, err)
	require.Len(t, stmts, 1)
}

func TestAddMethod(t *testing.T) {
	doc := mustOpen(t, "class Calc {\n  add(a, b) { return a + b; }\n}\n")
	cls, err := doc.Root().Class("Calc")
	require.NoError(t, err)
	add, err := cls.Method("add")
	require.NoError(t, err)

	sub, err := cls.AddMethod("sub", []string{"a", "b"}, "return a - b;")
	require.NoError(t, err)
	require.False(t, cls.IsForgotten())
	require.False(t, add.IsForgotten())
	name, err := sub.Name()
	require.NoError(t, err)
	require.Equal(t, "sub", name)

	ms, err := cls.Methods()
	require.NoError(t, err)
	require.Len(t, ms, 2)
}

func TestAddStatement(t *testing.T) {
	doc := mustOpen(t, "function f() { let x = 1; }\n")
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)
	body, err := fn.Body()
	require.NoError(t, err)

	stmt, err := body.AddStatement("return x;")
	require.NoError(t, err)
	require.Equal(t, "return x;", stmt.Text())
	stmts, err := body.Statements()
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.Same(t, stmt, stmts[1])
}

func TestRename(t *testing.T) {
	doc := mustOpen(t, "function f() {}\nfunction caller() { f(); }\n")
	fn, err := doc.Root().Function("f")
	require.NoError(t, err)
	caller, err := doc.Root().Function("caller")
	require.NoError(t, err)

	require.NoError(t, Rename(fn, "renamed"))
	require.False(t, fn.IsForgotten())
	name, err := fn.Name()
	require.NoError(t, err)
	require.Equal(t, "renamed", name)
	// only the declaration changes; call sites are untouched
	require.False(t, caller.IsForgotten())
	require.True(t, strings.Contains(caller.Text(), "f();"))
}

func TestEnumMemberInitializer(t *testing.T) {
	doc := mustOpen(t, "enum E { A = 1, B }\n")
	en, err := doc.Root().Enum("E")
	require.NoError(t, err)
	members, err := en.Members()
	require.NoError(t, err)
	require.Len(t, members, 2)

	init, err := members[0].Initializer()
	require.NoError(t, err)
	require.NotNil(t, init)
	require.Equal(t, "1", init.Text())
	none, err := members[1].Initializer()
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestExpressionAccessors(t *testing.T) {
	doc := mustOpen(t, `let r = obj.calc(1, "two") + 3;`)
	stmt, err := doc.Root().Child(0)
	require.NoError(t, err)
	decls, err := stmt.(*VariableStmt).Declarations()
	require.NoError(t, err)
	init, err := decls[0].Initializer()
	require.NoError(t, err)

	sum := init.(*BinaryExpr)
	op, err := sum.Op()
	require.NoError(t, err)
	require.Equal(t, "+", op)

	left, err := sum.Left()
	require.NoError(t, err)
	call := left.(*CallExpr)
	callee, err := call.Callee()
	require.NoError(t, err)
	member := callee.(*MemberExpr)
	prop, err := member.Property()
	require.NoError(t, err)
	require.Equal(t, "calc", prop.Text())

	args, err := call.Arguments()
	require.NoError(t, err)
	require.Len(t, args, 2)
	num, err := args[0].(*NumberLit).Value()
	require.NoError(t, err)
	require.Equal(t, 1.0, num)
	str, err := args[1].(*StringLit).Value()
	require.NoError(t, err)
	require.Equal(t, "two", str)

	right, err := sum.Right()
	require.NoError(t, err)
	require.IsType(t, &NumberLit{}, right)
}
