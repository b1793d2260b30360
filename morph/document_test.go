package morph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestOpen(t *testing.T) {
	doc := mustOpen(t, "function f() {}\n")
	require.NotNil(t, doc.Root())
	require.Same(t, doc, doc.Root().Document())
	require.Nil(t, doc.Root().Parent())
	require.Equal(t, 1, doc.Registry().Len())
}

func TestOpenParseError(t *testing.T) {
	_, err := Open([]byte("function {"))
	require.Error(t, err)
}

func TestRootIdentityAcrossEdits(t *testing.T) {
	doc := mustOpen(t, "let x = 1;\n")
	root := doc.Root()
	require.NoError(t, doc.Edit(0, 0, []byte("let w = 0;\n")))
	require.NoError(t, doc.Reparse([]byte("let q = 9;\nlet x = 1;\n")))
	require.NoError(t, doc.SetText([]byte("enum E { A }\n")))
	require.NoError(t, doc.Refresh())
	require.Same(t, root, doc.Root())
	require.False(t, root.IsForgotten())
}

func TestEditOutOfRange(t *testing.T) {
	doc := mustOpen(t, "let x = 1;\n")
	err := doc.Edit(5, 4, []byte("z"))
	require.Error(t, err)
	err = doc.Edit(0, 1000, []byte("z"))
	require.Error(t, err)
	require.Equal(t, "let x = 1;\n", string(doc.Text()))
}

// The archive holds a starting document and a sequence of whole-text
// revisions. The named function's wrapper must survive every step.
const editScript = `-- start --
function keep(a) {
  return a;
}
-- step1: append a sibling --
function keep(a) {
  return a;
}
function other() {}
-- step2: edit the kept body --
function keep(a) {
  return a + 1;
}
function other() {}
-- step3: remove the sibling --
function keep(a) {
  return a + 1;
}
`

func TestEditScriptPreservesTrackedFunction(t *testing.T) {
	ar := txtar.Parse([]byte(editScript))
	require.GreaterOrEqual(t, len(ar.Files), 2)

	doc, err := Open(ar.Files[0].Data)
	require.NoError(t, err)
	keep, err := doc.Root().Function("keep")
	require.NoError(t, err)
	require.NotNil(t, keep)
	body, err := keep.Body()
	require.NoError(t, err)

	for _, f := range ar.Files[1:] {
		require.NoError(t, doc.SetText(f.Data), f.Name)
		require.False(t, keep.IsForgotten(), f.Name)
		require.False(t, body.IsForgotten(), f.Name)
		again, err := doc.Root().Function("keep")
		require.NoError(t, err)
		require.Same(t, keep, again, f.Name)
		require.True(t, strings.HasPrefix(keep.Text(), "function keep"), f.Name)
	}
	stmts, err := body.Statements()
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	require.Equal(t, "return a + 1;", stmts[0].Text())
}

func TestNodeAtTracksEdits(t *testing.T) {
	doc := mustOpen(t, `function f() { let count = 10; }`)
	off := strings.Index(string(doc.Text()), "10")
	lit, err := doc.NodeAt(off)
	require.NoError(t, err)
	require.Equal(t, "10", lit.Text())

	require.NoError(t, doc.Edit(off, off+2, []byte("1000")))
	require.False(t, lit.IsForgotten())
	require.Equal(t, "1000", lit.Text())
}
