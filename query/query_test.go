package query

import (
	"testing"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/morph"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const src = `function add(a, b) {
  return a + b;
}
class Math {
  mul(a, b) { return a * b; }
}
enum Sign { Neg, Zero, Pos }
`

func open(t *testing.T) *morph.Document {
	t.Helper()
	doc, err := morph.Open([]byte(src))
	require.NoError(t, err)
	return doc
}

func names(t *testing.T, nodes []morph.Node) []string {
	t.Helper()
	var res []string
	for _, n := range nodes {
		nd, ok := n.(morph.Named)
		require.True(t, ok)
		name, err := nd.Name()
		require.NoError(t, err)
		res = append(res, name)
	}
	return res
}

func TestSelectByKind(t *testing.T) {
	doc := open(t)
	res, err := Select(doc, `kind == "FunctionDecl"`)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, []string{"add"}, names(t, res))
}

func TestSelectByName(t *testing.T) {
	doc := open(t)
	res, err := Select(doc, `name == "mul"`)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "MethodDecl", res[0].Kind().String())
}

func TestSelectCompound(t *testing.T) {
	doc := open(t)
	res, err := Select(doc, `kind == "EnumMember" && name != "Zero"`)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"Neg", "Pos"}, names(t, res)); diff != "" {
		t.Errorf("members (-want +got):\n%s", diff)
	}
}

func TestSelectBySpan(t *testing.T) {
	doc := open(t)
	res, err := Select(doc, `kind == "Identifier" && end - start > 3`)
	require.NoError(t, err)
	for _, n := range res {
		require.Greater(t, len(n.Text()), 3)
	}
	require.NotEmpty(t, res)
}

func TestCompileReuse(t *testing.T) {
	q, err := Compile(`childCount > 0 && kind == "ClassDecl"`)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		doc := open(t)
		res, err := q.Select(doc)
		require.NoError(t, err)
		require.Len(t, res, 1)
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile(`kind ==`)
	require.ErrorIs(t, err, ErrQuery)
	_, err = Compile(`1 + 2`)
	require.ErrorIs(t, err, ErrQuery)
}
