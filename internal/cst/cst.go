// Package cst holds the grammar-shaped parse tree produced by the parser.
//
// There is one context type per grammar rule alternative. Every context
// records the first token of its rule; required sub-rules are plain fields,
// optional ones are nil when absent, and repeated ones are slices in source
// order. Contexts are numbered by the owning Tree so that later phases can
// refer to them by NodeID without holding on to the tree itself.
package cst

import "github.com/kievzenit/coolfront/internal/lexer"

type NodeID int

// NoNode is the parent of the root context and the id of contexts that do
// not belong to a Tree yet.
const NoNode NodeID = -1

type Context interface {
	ID() NodeID
	Parent() NodeID
	Start() *lexer.Token
	RuleName() string

	baseContext() *BaseContext
}

type FeatureContext interface {
	Context
	featureContext()
}

type ExprContext interface {
	Context
	exprContext()
}

type BaseContext struct {
	StartToken *lexer.Token

	id     NodeID
	parent NodeID
}

func (c *BaseContext) ID() NodeID                { return c.id }
func (c *BaseContext) Parent() NodeID            { return c.parent }
func (c *BaseContext) Start() *lexer.Token       { return c.StartToken }
func (c *BaseContext) baseContext() *BaseContext { return c }

func NewBase(start *lexer.Token) BaseContext {
	return BaseContext{
		StartToken: start,

		id:     NoNode,
		parent: NoNode,
	}
}

type ProgramContext struct {
	BaseContext

	Classes []*ClassContext
}

type ClassContext struct {
	BaseContext

	ClassName  *lexer.Token
	ParentName *lexer.Token
	Features   []FeatureContext
}

type MethodContext struct {
	BaseContext

	MethodID   *lexer.Token
	Params     []*FormalContext
	ReturnType *lexer.Token
	Body       ExprContext
}

type FieldContext struct {
	BaseContext

	VariableID  *lexer.Token
	TypeID      *lexer.Token
	InitialExpr ExprContext
}

type FormalContext struct {
	BaseContext

	ObjectID *lexer.Token
	TypeID   *lexer.Token
}

type LocalContext struct {
	BaseContext

	ObjectID   *lexer.Token
	TypeID     *lexer.Token
	AssignExpr ExprContext
}

type BranchContext struct {
	BaseContext

	ObjectID   *lexer.Token
	TypeID     *lexer.Token
	BranchExpr ExprContext
}

func (*ProgramContext) RuleName() string { return "program" }
func (*ClassContext) RuleName() string   { return "class" }
func (*MethodContext) RuleName() string  { return "method" }
func (*FieldContext) RuleName() string   { return "field" }
func (*FormalContext) RuleName() string  { return "formal" }
func (*LocalContext) RuleName() string   { return "local" }
func (*BranchContext) RuleName() string  { return "branch" }

func (*MethodContext) featureContext() {}
func (*FieldContext) featureContext()  {}
