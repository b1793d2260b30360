package syntax

import (
	"errors"
	"testing"
)

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if back != k {
			t.Errorf("round trip %s: got %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("NoSuchKind")); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestKindClasses(t *testing.T) {
	if !Identifier.IsLeaf() || !NumberLit.IsLeaf() {
		t.Error("leaf kinds misclassified")
	}
	if Block.IsLeaf() {
		t.Error("Block is not a leaf")
	}
	if !FunctionDecl.IsDeclaration() || FunctionDecl.IsExpression() {
		t.Error("FunctionDecl misclassified")
	}
	if !ReturnStmt.IsStatement() || !BinaryExpr.IsExpression() {
		t.Error("statement/expression misclassified")
	}
}

func TestNodeAccessors(t *testing.T) {
	name := New(Identifier, 4, 5, nil)
	lit := New(NumberLit, 8, 9, nil)
	decl := New(VariableDecl, 4, 9, []*Node{name, lit})

	if decl.ChildCount() != 2 {
		t.Fatalf("child count %d", decl.ChildCount())
	}
	if decl.Child(0) != name || decl.Child(1) != lit {
		t.Error("children out of order")
	}
	if decl.Child(-1) != nil || decl.Child(2) != nil {
		t.Error("out of range child not nil")
	}
	src := []byte("let x = 1;")
	if got := decl.Text(src); got != "x = 1" {
		t.Errorf("text %q", got)
	}
	if !decl.Contains(4) || !decl.Contains(8) || decl.Contains(9) || decl.Contains(3) {
		t.Error("span containment wrong")
	}
	kids := decl.Children()
	kids[0] = nil
	if decl.Child(0) == nil {
		t.Error("Children aliases internal state")
	}
}

func TestVisit(t *testing.T) {
	name := New(Identifier, 0, 1, nil)
	lit := New(NumberLit, 4, 5, nil)
	decl := New(VariableDecl, 0, 5, []*Node{name, lit})

	var pre, post []Kind
	err := decl.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Kind())
		} else {
			pre = append(pre, n.Kind())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(pre) != 3 || pre[0] != VariableDecl {
		t.Errorf("pre order %v", pre)
	}
	if len(post) != 3 || post[2] != VariableDecl {
		t.Errorf("post order %v", post)
	}

	stop := errors.New("stop")
	err = decl.Visit(func(n *Node, isPost bool) (bool, error) {
		return false, stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("visit error not propagated: %v", err)
	}
}
