package ast_printer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kievzenit/coolfront/internal/ast"
)

// PrintYaml writes the program as a YAML document. Every node becomes a
// mapping with a "kind" key followed by its named children in source order.
func PrintYaml(w io.Writer, n ast.Node, opts Options) error {
	if opts.Indent <= 0 {
		opts.Indent = 2
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(opts.Indent)

	if err := enc.Encode(Yaml(n, opts)); err != nil {
		return err
	}

	return enc.Close()
}

// Yaml builds the document node for n without encoding it.
func Yaml(n ast.Node, opts Options) *yaml.Node {
	return ast.Accept[*yaml.Node](n, &yamlVisitor{positions: opts.Positions})
}

type yamlVisitor struct {
	positions bool
}

func (v *yamlVisitor) mapping(n ast.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	v.set(m, "kind", scalar(ast.KindOf(n).String()))
	if v.positions {
		v.set(m, "pos", scalar(n.Pos().String()))
	}

	return m
}

func (v *yamlVisitor) set(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}

func (v *yamlVisitor) node(n ast.Node) *yaml.Node {
	return ast.Accept[*yaml.Node](n, v)
}

func (v *yamlVisitor) seq(nodes []ast.Node) *yaml.Node {
	s := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		s.Content = append(s.Content, v.node(n))
	}

	return s
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func toNodes[N ast.Node](ns []N) []ast.Node {
	nodes := make([]ast.Node, len(ns))
	for i, n := range ns {
		nodes[i] = n
	}

	return nodes
}

func (v *yamlVisitor) VisitProgram(n *ast.Program) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "classes", v.seq(toNodes(n.Classes())))
	return m
}

func (v *yamlVisitor) VisitClass(n *ast.Class) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name().Name()))
	if parent, ok := n.Parent(); ok {
		v.set(m, "parent", scalar(parent.Name()))
	}
	v.set(m, "features", v.seq(toNodes(n.Features())))
	return m
}

func (v *yamlVisitor) VisitField(n *ast.Field) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name().Name()))
	v.set(m, "type", scalar(n.Type().Name()))
	if init, ok := n.Init(); ok {
		v.set(m, "init", v.node(init))
	}
	return m
}

func (v *yamlVisitor) VisitMethod(n *ast.Method) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name().Name()))
	v.set(m, "formals", v.seq(toNodes(n.Formals())))
	v.set(m, "returns", scalar(n.ReturnType().Name()))
	v.set(m, "body", v.node(n.Body()))
	return m
}

func (v *yamlVisitor) VisitFormal(n *ast.Formal) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name().Name()))
	v.set(m, "type", scalar(n.Type().Name()))
	return m
}

func (v *yamlVisitor) VisitLocal(n *ast.Local) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name().Name()))
	v.set(m, "type", scalar(n.Type().Name()))
	if init, ok := n.Init(); ok {
		v.set(m, "init", v.node(init))
	}
	return m
}

func (v *yamlVisitor) VisitBranch(n *ast.Branch) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name().Name()))
	v.set(m, "type", scalar(n.Type().Name()))
	v.set(m, "body", v.node(n.Body()))
	return m
}

func (v *yamlVisitor) VisitTypeId(n *ast.TypeId) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name()))
	return m
}

func (v *yamlVisitor) VisitNew(n *ast.New) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "type", scalar(n.Type().Name()))
	return m
}

func (v *yamlVisitor) VisitObjectId(n *ast.ObjectId) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "name", scalar(n.Name()))
	return m
}

func (v *yamlVisitor) VisitInt(n *ast.Int) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "value", scalar(n.Literal()))
	return m
}

func (v *yamlVisitor) VisitStr(n *ast.Str) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "value", scalar(n.Literal()))
	return m
}

func (v *yamlVisitor) VisitBool(n *ast.Bool) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "value", scalar(n.Literal()))
	return m
}

func (v *yamlVisitor) VisitAssign(n *ast.Assign) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "target", scalar(n.Target().Name()))
	v.set(m, "value", v.node(n.Value()))
	return m
}

func (v *yamlVisitor) VisitImplicitCall(n *ast.ImplicitCall) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "method", scalar(n.Method().Name()))
	v.set(m, "args", v.seq(toNodes(n.Args())))
	return m
}

func (v *yamlVisitor) VisitExplicitCall(n *ast.ExplicitCall) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "receiver", v.node(n.Receiver()))
	if staticType, ok := n.StaticType(); ok {
		v.set(m, "static_type", scalar(staticType.Name()))
	}
	v.set(m, "method", scalar(n.Method().Name()))
	v.set(m, "args", v.seq(toNodes(n.Args())))
	return m
}

func (v *yamlVisitor) VisitLet(n *ast.Let) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "locals", v.seq(toNodes(n.Locals())))
	v.set(m, "body", v.node(n.Body()))
	return m
}

func (v *yamlVisitor) VisitParen(n *ast.Paren) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "inner", v.node(n.Inner()))
	return m
}

func (v *yamlVisitor) VisitUnary(n *ast.Unary) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "op", scalar(n.Op().Value))
	v.set(m, "operand", v.node(n.Operand()))
	return m
}

func (v *yamlVisitor) VisitWhile(n *ast.While) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "cond", v.node(n.Cond()))
	v.set(m, "body", v.node(n.Body()))
	return m
}

func (v *yamlVisitor) VisitIf(n *ast.If) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "cond", v.node(n.Cond()))
	v.set(m, "then", v.node(n.Then()))
	v.set(m, "else", v.node(n.Else()))
	return m
}

func (v *yamlVisitor) VisitBlock(n *ast.Block) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "exprs", v.seq(toNodes(n.Exprs())))
	return m
}

func (v *yamlVisitor) VisitCase(n *ast.Case) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "scrutinee", v.node(n.Scrutinee()))
	v.set(m, "branches", v.seq(toNodes(n.Branches())))
	return m
}

func (v *yamlVisitor) VisitArithmetic(n *ast.Arithmetic) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "op", scalar(n.Op().Value))
	v.set(m, "left", v.node(n.Left()))
	v.set(m, "right", v.node(n.Right()))
	return m
}

func (v *yamlVisitor) VisitLogical(n *ast.Logical) *yaml.Node {
	m := v.mapping(n)
	v.set(m, "op", scalar(n.Op().Value))
	v.set(m, "left", v.node(n.Left()))
	v.set(m, "right", v.node(n.Right()))
	return m
}
