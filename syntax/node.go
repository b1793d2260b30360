package syntax

// Node is one node of the immutable parse tree. A tree is produced whole by
// package parse and discarded whole when its document is reparsed; nodes are
// never mutated after construction. Children hold only named constructs:
// keywords and punctuation contribute to the span but are not children, so a
// node's children line up positionally across reparses of equivalent text.
type Node struct {
	kind     Kind
	start    int
	end      int
	children []*Node
}

// New constructs a node. It is intended for package parse; the children slice
// must not be retained by the caller.
func New(kind Kind, start, end int, children []*Node) *Node {
	return &Node{
		kind:     kind,
		start:    start,
		end:      end,
		children: children,
	}
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Start is the byte offset of the node's first character in the document.
func (n *Node) Start() int {
	return n.start
}

// End is the byte offset just past the node's last character.
func (n *Node) End() int {
	return n.end
}

func (n *Node) ChildCount() int {
	return len(n.children)
}

func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	res := make([]*Node, len(n.children))
	copy(res, n.children)
	return res
}

// Text extracts the node's source text from the document it was parsed from.
func (n *Node) Text(src []byte) string {
	if n.start < 0 || n.end > len(src) || n.start > n.end {
		return ""
	}
	return string(src[n.start:n.end])
}

// Contains reports whether the byte offset falls within the node's span.
func (n *Node) Contains(off int) bool {
	return off >= n.start && off < n.end
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
