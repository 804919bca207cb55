package ast

// Children returns the direct children of n in source order. Absent optional
// children are left out.
func Children(n Node) []Node {
	return Accept[[]Node](n, childrenVisitor{})
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}

	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// Label is the source text that distinguishes a node from others of the same
// type: names, literal tokens and operators. It is empty for every other
// node.
func Label(n Node) string {
	return Accept[string](n, labelVisitor{})
}

// Equal reports whether a and b have the same shape, labels and child order.
// Positions and provenance are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if KindOf(a) != KindOf(b) || Label(a) != Label(b) {
		return false
	}

	aChildren, bChildren := Children(a), Children(b)
	if len(aChildren) != len(bChildren) {
		return false
	}

	for i := range aChildren {
		if !Equal(aChildren[i], bChildren[i]) {
			return false
		}
	}

	return true
}

type childrenVisitor struct{}

func asNodes[E Expression](es []E) []Node {
	nodes := make([]Node, 0, len(es))
	for _, e := range es {
		nodes = append(nodes, e)
	}
	return nodes
}

func optional(n Node, present bool) []Node {
	if !present {
		return nil
	}
	return []Node{n}
}

func (childrenVisitor) VisitProgram(n *Program) []Node {
	nodes := make([]Node, 0, len(n.classes))
	for _, class := range n.classes {
		nodes = append(nodes, class)
	}
	return nodes
}

func (childrenVisitor) VisitClass(n *Class) []Node {
	nodes := []Node{n.name}
	if n.parent != nil {
		nodes = append(nodes, n.parent)
	}
	for _, feature := range n.features {
		nodes = append(nodes, feature)
	}
	return nodes
}

func (childrenVisitor) VisitField(n *Field) []Node {
	return append([]Node{n.name, n.typeName}, optional(n.init, n.init != nil)...)
}

func (childrenVisitor) VisitMethod(n *Method) []Node {
	nodes := []Node{n.name}
	for _, formal := range n.formals {
		nodes = append(nodes, formal)
	}
	return append(nodes, n.returnType, n.body)
}

func (childrenVisitor) VisitFormal(n *Formal) []Node {
	return []Node{n.name, n.typeName}
}

func (childrenVisitor) VisitLocal(n *Local) []Node {
	return append([]Node{n.name, n.typeName}, optional(n.init, n.init != nil)...)
}

func (childrenVisitor) VisitBranch(n *Branch) []Node {
	return []Node{n.name, n.typeName, n.body}
}

func (childrenVisitor) VisitTypeId(*TypeId) []Node     { return nil }
func (childrenVisitor) VisitObjectId(*ObjectId) []Node { return nil }
func (childrenVisitor) VisitInt(*Int) []Node           { return nil }
func (childrenVisitor) VisitStr(*Str) []Node           { return nil }
func (childrenVisitor) VisitBool(*Bool) []Node         { return nil }

func (childrenVisitor) VisitNew(n *New) []Node {
	return []Node{n.typeName}
}

func (childrenVisitor) VisitAssign(n *Assign) []Node {
	return []Node{n.target, n.value}
}

func (childrenVisitor) VisitImplicitCall(n *ImplicitCall) []Node {
	return append([]Node{n.method}, asNodes(n.args)...)
}

func (childrenVisitor) VisitExplicitCall(n *ExplicitCall) []Node {
	nodes := []Node{n.receiver}
	nodes = append(nodes, optional(n.staticType, n.staticType != nil)...)
	nodes = append(nodes, n.method)
	return append(nodes, asNodes(n.args)...)
}

func (childrenVisitor) VisitLet(n *Let) []Node {
	nodes := make([]Node, 0, len(n.locals)+1)
	for _, local := range n.locals {
		nodes = append(nodes, local)
	}
	return append(nodes, n.body)
}

func (childrenVisitor) VisitParen(n *Paren) []Node {
	return []Node{n.inner}
}

func (childrenVisitor) VisitUnary(n *Unary) []Node {
	return []Node{n.operand}
}

func (childrenVisitor) VisitWhile(n *While) []Node {
	return []Node{n.cond, n.body}
}

func (childrenVisitor) VisitIf(n *If) []Node {
	return []Node{n.cond, n.thenExpr, n.elseExpr}
}

func (childrenVisitor) VisitBlock(n *Block) []Node {
	return asNodes(n.exprs)
}

func (childrenVisitor) VisitCase(n *Case) []Node {
	nodes := []Node{n.scrutinee}
	for _, branch := range n.branches {
		nodes = append(nodes, branch)
	}
	return nodes
}

func (childrenVisitor) VisitArithmetic(n *Arithmetic) []Node {
	return []Node{n.left, n.right}
}

func (childrenVisitor) VisitLogical(n *Logical) []Node {
	return []Node{n.left, n.right}
}

type labelVisitor struct{}

func (labelVisitor) VisitProgram(*Program) string           { return "" }
func (labelVisitor) VisitClass(*Class) string               { return "" }
func (labelVisitor) VisitField(*Field) string               { return "" }
func (labelVisitor) VisitMethod(*Method) string             { return "" }
func (labelVisitor) VisitFormal(*Formal) string             { return "" }
func (labelVisitor) VisitLocal(*Local) string               { return "" }
func (labelVisitor) VisitBranch(*Branch) string             { return "" }
func (labelVisitor) VisitTypeId(n *TypeId) string           { return n.Name() }
func (labelVisitor) VisitNew(*New) string                   { return "" }
func (labelVisitor) VisitObjectId(n *ObjectId) string       { return n.Name() }
func (labelVisitor) VisitInt(n *Int) string                 { return n.Literal() }
func (labelVisitor) VisitStr(n *Str) string                 { return n.Literal() }
func (labelVisitor) VisitBool(n *Bool) string               { return n.Literal() }
func (labelVisitor) VisitAssign(*Assign) string             { return "" }
func (labelVisitor) VisitImplicitCall(*ImplicitCall) string { return "" }
func (labelVisitor) VisitExplicitCall(*ExplicitCall) string { return "" }
func (labelVisitor) VisitLet(*Let) string                   { return "" }
func (labelVisitor) VisitParen(*Paren) string               { return "" }
func (labelVisitor) VisitUnary(n *Unary) string             { return n.Op().Value }
func (labelVisitor) VisitWhile(*While) string               { return "" }
func (labelVisitor) VisitIf(*If) string                     { return "" }
func (labelVisitor) VisitBlock(*Block) string               { return "" }
func (labelVisitor) VisitCase(*Case) string                 { return "" }
func (labelVisitor) VisitArithmetic(n *Arithmetic) string   { return n.Op().Value }
func (labelVisitor) VisitLogical(n *Logical) string         { return n.Op().Value }
