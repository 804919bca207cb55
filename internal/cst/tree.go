package cst

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Tree owns the contexts of one parsed compilation unit and maps NodeIDs
// back to them.
type Tree struct {
	ID       uuid.UUID
	FileName string
	Root     *ProgramContext

	nodes []Context
}

// NewTree numbers every context reachable from root in pre-order and links
// each one to its enclosing context.
func NewTree(fileName string, root *ProgramContext) *Tree {
	t := &Tree{
		ID:       uuid.New(),
		FileName: fileName,
		Root:     root,

		nodes: make([]Context, 0),
	}

	if root != nil {
		t.index(root, NoNode)
	}

	return t
}

func (t *Tree) index(c Context, parent NodeID) {
	base := c.baseContext()
	base.id = NodeID(len(t.nodes))
	base.parent = parent
	t.nodes = append(t.nodes, c)

	for _, child := range Children(c) {
		t.index(child, base.id)
	}
}

func (t *Tree) Node(id NodeID) (Context, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, false
	}

	return t.nodes[id], true
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Children returns the direct sub-contexts of c in source order. Absent
// optional sub-rules are skipped.
func Children(c Context) []Context {
	children := make([]Context, 0)
	addExpr := func(e ExprContext) {
		if e != nil && !reflect.ValueOf(e).IsNil() {
			children = append(children, e)
		}
	}

	switch c := c.(type) {
	case *ProgramContext:
		for _, class := range c.Classes {
			if class != nil {
				children = append(children, class)
			}
		}
	case *ClassContext:
		for _, feature := range c.Features {
			if feature != nil && !reflect.ValueOf(feature).IsNil() {
				children = append(children, feature)
			}
		}
	case *MethodContext:
		for _, param := range c.Params {
			if param != nil {
				children = append(children, param)
			}
		}
		addExpr(c.Body)
	case *FieldContext:
		addExpr(c.InitialExpr)
	case *FormalContext:
	case *LocalContext:
		addExpr(c.AssignExpr)
	case *BranchContext:
		addExpr(c.BranchExpr)
	case *NewExprContext, *ObjectExprContext, *IntegerExprContext, *StringExprContext, *BoolExprContext:
	case *AssignExprContext:
		addExpr(c.Expr)
	case *ImplicitCallContext:
		for _, param := range c.Params {
			addExpr(param)
		}
	case *ExplicitCallContext:
		addExpr(c.DispatchExpr)
		for _, param := range c.Params {
			addExpr(param)
		}
	case *LetExprContext:
		for _, local := range c.LocalVars {
			if local != nil {
				children = append(children, local)
			}
		}
		addExpr(c.InExpr)
	case *ParenExprContext:
		addExpr(c.Expr)
	case *UnaryExprContext:
		addExpr(c.Expr)
	case *WhileExprContext:
		addExpr(c.CondExpr)
		addExpr(c.InsideExpr)
	case *IfExprContext:
		addExpr(c.CondExpr)
		addExpr(c.ThenExpr)
		addExpr(c.ElseExpr)
	case *BlockExprContext:
		for _, expr := range c.InsideExprs {
			addExpr(expr)
		}
	case *CaseExprContext:
		addExpr(c.Expr)
		for _, branch := range c.Branches {
			if branch != nil {
				children = append(children, branch)
			}
		}
	case *ArithmeticExprContext:
		addExpr(c.Left)
		addExpr(c.Right)
	case *LogicalExprContext:
		addExpr(c.Left)
		addExpr(c.Right)
	default:
		panic(fmt.Sprintf("cst.Children(): unknown context %T", c))
	}

	return children
}
