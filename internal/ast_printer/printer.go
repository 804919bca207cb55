// Package ast_printer renders an ast.Program for people and tools. Every
// renderer is an ast.Visitor, so it is kept in step with the node set by the
// compiler.
package ast_printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/kievzenit/coolfront/internal/ast"
)

type Format string

const (
	TreeFormat   Format = "tree"
	YamlFormat   Format = "yaml"
	LitterFormat Format = "litter"
)

func (f Format) Valid() bool {
	switch f {
	case TreeFormat, YamlFormat, LitterFormat:
		return true
	}

	return false
}

type Options struct {
	// Positions adds line:column information to the output.
	Positions bool
	// Indent is the number of spaces per nesting level.
	Indent int
}

func Print(w io.Writer, format Format, program *ast.Program, opts Options) error {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}

	switch format {
	case TreeFormat:
		return PrintTree(w, program, opts)
	case YamlFormat:
		return PrintYaml(w, program, opts)
	case LitterFormat:
		_, err := io.WriteString(w, Litter(program, opts)+"\n")
		return err
	}

	return fmt.Errorf("unknown output format %q", format)
}

// PrintTree writes one node per line, children indented below their parent.
func PrintTree(w io.Writer, n ast.Node, opts Options) error {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}

	var err error
	depth := map[ast.Node]int{n: 0}
	ast.Walk(n, func(node ast.Node) bool {
		if err != nil {
			return false
		}

		line := strings.Repeat(" ", depth[node]*opts.Indent) + ast.Accept[string](node, headerVisitor{})
		if opts.Positions {
			line += " @" + node.Pos().String()
		}
		_, err = fmt.Fprintln(w, line)

		for _, child := range ast.Children(node) {
			depth[child] = depth[node] + 1
		}
		return true
	})

	return err
}

// headerVisitor names a node in the tree output.
type headerVisitor struct{}

func (headerVisitor) VisitProgram(*ast.Program) string           { return "program" }
func (headerVisitor) VisitClass(*ast.Class) string               { return "class" }
func (headerVisitor) VisitField(*ast.Field) string               { return "attribute" }
func (headerVisitor) VisitMethod(*ast.Method) string             { return "method" }
func (headerVisitor) VisitFormal(*ast.Formal) string             { return "formal" }
func (headerVisitor) VisitLocal(*ast.Local) string               { return "local" }
func (headerVisitor) VisitBranch(*ast.Branch) string             { return "case branch" }
func (headerVisitor) VisitTypeId(n *ast.TypeId) string           { return n.Name() }
func (headerVisitor) VisitNew(*ast.New) string                   { return "new" }
func (headerVisitor) VisitObjectId(n *ast.ObjectId) string       { return n.Name() }
func (headerVisitor) VisitInt(n *ast.Int) string                 { return n.Literal() }
func (headerVisitor) VisitStr(n *ast.Str) string                 { return n.Literal() }
func (headerVisitor) VisitBool(n *ast.Bool) string               { return n.Literal() }
func (headerVisitor) VisitAssign(*ast.Assign) string             { return "<-" }
func (headerVisitor) VisitImplicitCall(*ast.ImplicitCall) string { return "implicit call" }
func (headerVisitor) VisitLet(*ast.Let) string                   { return "let" }
func (headerVisitor) VisitParen(*ast.Paren) string               { return "()" }
func (headerVisitor) VisitUnary(n *ast.Unary) string             { return n.Op().Value }
func (headerVisitor) VisitWhile(*ast.While) string               { return "while" }
func (headerVisitor) VisitIf(*ast.If) string                     { return "if" }
func (headerVisitor) VisitBlock(*ast.Block) string               { return "block" }
func (headerVisitor) VisitCase(*ast.Case) string                 { return "case" }
func (headerVisitor) VisitArithmetic(n *ast.Arithmetic) string   { return n.Op().Value }
func (headerVisitor) VisitLogical(n *ast.Logical) string         { return n.Op().Value }

func (headerVisitor) VisitExplicitCall(n *ast.ExplicitCall) string {
	if _, ok := n.StaticType(); ok {
		return "static dispatch"
	}
	return "dispatch"
}
