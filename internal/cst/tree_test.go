package cst

import (
	"testing"

	"github.com/kievzenit/coolfront/internal/lexer"
)

func tok(kind lexer.TokenKind, value string) *lexer.Token {
	return &lexer.Token{Kind: kind, Value: value}
}

func TestNewTree_PreOrderIndex(t *testing.T) {
	left := &IntegerExprContext{BaseContext: NewBase(tok(lexer.INT, "1"))}
	right := &IntegerExprContext{BaseContext: NewBase(tok(lexer.INT, "2"))}
	sum := &ArithmeticExprContext{
		BaseContext: NewBase(left.Start()),

		Left:  left,
		Op:    tok(lexer.PLUS, "+"),
		Right: right,
	}
	method := &MethodContext{
		BaseContext: NewBase(tok(lexer.IDENT, "f")),

		Body: sum,
	}
	class := &ClassContext{
		BaseContext: NewBase(tok(lexer.CLASS, "class")),

		Features: []FeatureContext{method},
	}
	root := &ProgramContext{
		BaseContext: NewBase(class.Start()),

		Classes: []*ClassContext{class},
	}

	tree := NewTree("a.cl", root)

	want := []Context{root, class, method, sum, left, right}
	if tree.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", tree.Len(), len(want))
	}
	for i, ctx := range want {
		if ctx.ID() != NodeID(i) {
			t.Errorf("%s has id %d, want %d", ctx.RuleName(), ctx.ID(), i)
		}
		if got, ok := tree.Node(NodeID(i)); !ok || got != ctx {
			t.Errorf("Node(%d) = %v, want %s", i, got, ctx.RuleName())
		}
	}

	parents := map[Context]Context{class: root, method: class, sum: method, left: sum, right: sum}
	for child, parent := range parents {
		if child.Parent() != parent.ID() {
			t.Errorf("%s has parent %d, want %d", child.RuleName(), child.Parent(), parent.ID())
		}
	}
	if root.Parent() != NoNode {
		t.Errorf("root has parent %d", root.Parent())
	}

	if _, ok := tree.Node(NoNode); ok {
		t.Error("Node(NoNode) found a context")
	}
	if _, ok := tree.Node(NodeID(tree.Len())); ok {
		t.Error("Node() found a context past the end")
	}
}

func TestChildren_SkipsAbsent(t *testing.T) {
	field := &FieldContext{BaseContext: NewBase(tok(lexer.IDENT, "x"))}
	if got := Children(field); len(got) != 0 {
		t.Errorf("field without initializer has %d children", len(got))
	}

	method := &MethodContext{
		BaseContext: NewBase(tok(lexer.IDENT, "f")),

		Body: (*BlockExprContext)(nil),
	}
	if got := Children(method); len(got) != 0 {
		t.Errorf("typed nil body was reported as a child: %v", got)
	}

	class := &ClassContext{
		BaseContext: NewBase(tok(lexer.CLASS, "class")),

		Features: []FeatureContext{nil, (*FieldContext)(nil), field},
	}
	if got := Children(class); len(got) != 1 || got[0] != field {
		t.Errorf("Children() = %v, want only the field", got)
	}
}

func TestNewTree_NilRoot(t *testing.T) {
	tree := NewTree("a.cl", nil)
	if tree.Len() != 0 || tree.Root != nil {
		t.Error("tree without root has contexts")
	}
}
