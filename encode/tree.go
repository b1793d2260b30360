// Package encode renders syntax trees for humans and synthesizes source
// fragments for programmatic edits.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/syntax"
)

type treeState struct {
	indent int
	depth  int
	spans  bool

	Color func(syntax.Kind, ColorAttr, string) string
}

type TreeOption func(*treeState)

// TreeColors colorizes the dump.
func TreeColors(c *Colors) TreeOption {
	return func(ts *treeState) { ts.Color = c.Color }
}

// TreeDepth truncates the dump below n levels. Zero means no limit.
func TreeDepth(n int) TreeOption {
	return func(ts *treeState) { ts.depth = n }
}

// TreeSpans includes byte offsets in the dump.
func TreeSpans(v bool) TreeOption {
	return func(ts *treeState) { ts.spans = v }
}

// Tree writes an indented dump of the tree rooted at root, one node per
// line: kind, the declared name for declarations, optional span, and for
// leaves a text sample.
func Tree(w io.Writer, src []byte, root *syntax.Node, opts ...TreeOption) error {
	ts := &treeState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return tree(w, src, root, 0, ts)
}

func tree(w io.Writer, src []byte, n *syntax.Node, depth int, ts *treeState) error {
	if ts.depth > 0 && depth >= ts.depth {
		return nil
	}
	line := strings.Repeat(" ", ts.indent*depth)
	kind := n.Kind().String()
	if ts.Color != nil {
		kind = ts.Color(n.Kind(), KindColor, kind)
	}
	line += kind
	if n.Kind().IsDeclaration() && n.ChildCount() > 0 && n.Child(0).Kind() == syntax.Identifier {
		name := n.Child(0).Text(src)
		if ts.Color != nil {
			name = ts.Color(n.Kind(), NameColor, name)
		}
		line += " " + name
	}
	if ts.spans {
		span := fmt.Sprintf(" [%d,%d)", n.Start(), n.End())
		if ts.Color != nil {
			span = ts.Color(n.Kind(), SpanColor, span)
		}
		line += span
	}
	if n.ChildCount() == 0 {
		text := sample(n.Text(src))
		if ts.Color != nil {
			text = ts.Color(n.Kind(), TextColor, text)
		}
		line += " " + text
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	for i := 0; i < n.ChildCount(); i++ {
		if err := tree(w, src, n.Child(i), depth+1, ts); err != nil {
			return err
		}
	}
	return nil
}

func sample(s string) string {
	const max = 32
	s = strings.ReplaceAll(s, "\n", `\n`)
	if len(s) > max {
		s = s[:max] + "..."
	}
	return fmt.Sprintf("%q", s)
}
