package ast_test

import (
	"io"
	"slices"
	"testing"

	"github.com/sanity-io/litter"

	"github.com/kievzenit/coolfront/internal/ast"
	"github.com/kievzenit/coolfront/internal/ast_builder"
	"github.com/kievzenit/coolfront/internal/compiler_errors"
	"github.com/kievzenit/coolfront/internal/lexer"
	"github.com/kievzenit/coolfront/internal/parser"
)

func build(t *testing.T, src string) *ast.Program {
	t.Helper()

	eh := compiler_errors.NewErrorHandlerWithExit(io.Discard, func() {
		t.Fatalf("syntax error in test source %q", src)
	})

	tokens := lexer.NewLexer("test.cl", []byte(src), eh).Tokenize()
	tree := parser.NewParser("test.cl", lexer.NewTokenScannerWithoutComments(tokens), eh).Parse()

	program, err := ast_builder.Build(tree)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return program
}

func preorder(n ast.Node) []string {
	var out []string
	ast.Walk(n, func(node ast.Node) bool {
		entry := ast.KindOf(node).String()
		if label := ast.Label(node); label != "" {
			entry += "(" + label + ")"
		}
		out = append(out, entry)
		return true
	})
	return out
}

func TestWalk_PreOrderSourceOrder(t *testing.T) {
	program := build(t, `
class Main inherits IO {
  x : Int;
  main(a : Int) : Object { out_int(a + 1) };
};
`)

	want := []string{
		"Program",
		"Class", "TypeId(Main)", "TypeId(IO)",
		"Field", "ObjectId(x)", "TypeId(Int)",
		"Method", "ObjectId(main)",
		"Formal", "ObjectId(a)", "TypeId(Int)",
		"TypeId(Object)",
		"ImplicitCall", "ObjectId(out_int)",
		"Arithmetic(+)", "ObjectId(a)", "Int(1)",
	}

	if got := preorder(program); !slices.Equal(got, want) {
		t.Errorf("pre-order walk:\n got %s\nwant %s", litter.Sdump(got), litter.Sdump(want))
	}
}

func TestWalk_SkipsChildren(t *testing.T) {
	program := build(t, "class A { f() : Int { 1 + 2 }; };")

	var visited []ast.Kind
	ast.Walk(program, func(node ast.Node) bool {
		visited = append(visited, ast.KindOf(node))
		return ast.KindOf(node) != ast.MethodKind
	})

	if slices.Contains(visited, ast.ArithmeticKind) {
		t.Errorf("walk descended into a skipped method: %v", visited)
	}
}

func TestChildren_ExplicitCall(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{src: "x.foo(1, 2)", want: []string{"ObjectId(x)", "ObjectId(foo)", "Int(1)", "Int(2)"}},
		{src: "x@B.foo()", want: []string{"ObjectId(x)", "TypeId(B)", "ObjectId(foo)"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			program := build(t, "class A { f() : Object { "+tt.src+" }; };")
			method := program.Classes()[0].Features()[0].(*ast.Method)

			var got []string
			for _, child := range ast.Children(method.Body()) {
				entry := ast.KindOf(child).String()
				if label := ast.Label(child); label != "" {
					entry += "(" + label + ")"
				}
				got = append(got, entry)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{
			name:  "same source different layout",
			a:     "class A { f() : Int { 1 + 2 }; };",
			b:     "class A {\n  f() : Int {\n    1+2\n  };\n};",
			equal: true,
		},
		{
			name:  "different operator",
			a:     "class A { f() : Int { 1 + 2 }; };",
			b:     "class A { f() : Int { 1 - 2 }; };",
			equal: false,
		},
		{
			name:  "different literal",
			a:     "class A { f() : Int { 1 }; };",
			b:     "class A { f() : Int { 2 }; };",
			equal: false,
		},
		{
			name:  "parent present on one side",
			a:     "class A { };",
			b:     "class A inherits B { };",
			equal: false,
		},
		{
			name:  "static type present on one side",
			a:     "class A { f() : Object { x.g() }; };",
			b:     "class A { f() : Object { x@A.g() }; };",
			equal: false,
		},
		{
			name:  "feature order matters",
			a:     "class A { x : Int; y : Int; };",
			b:     "class A { y : Int; x : Int; };",
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := build(t, tt.a), build(t, tt.b)
			if got := ast.Equal(a, b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestEqual_IgnoresProvenance(t *testing.T) {
	src := "class A { f() : Int { 1 }; };"
	a, b := build(t, src), build(t, src)

	if a.Origin() == b.Origin() {
		t.Fatal("two builds share provenance")
	}
	if !ast.Equal(a, b) {
		t.Error("identical sources are not Equal")
	}
}
