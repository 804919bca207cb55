package cst

import "github.com/kievzenit/coolfront/internal/lexer"

type NewExprContext struct {
	BaseContext

	TypeID *lexer.Token
}

// ObjectExprContext is a bare identifier; its start token is the name.
type ObjectExprContext struct {
	BaseContext
}

type IntegerExprContext struct {
	BaseContext
}

type StringExprContext struct {
	BaseContext
}

type BoolExprContext struct {
	BaseContext

	Val *lexer.Token
}

type AssignExprContext struct {
	BaseContext

	ObjectID *lexer.Token
	Expr     ExprContext
}

type ImplicitCallContext struct {
	BaseContext

	MethodID *lexer.Token
	Params   []ExprContext
}

type ExplicitCallContext struct {
	BaseContext

	DispatchExpr ExprContext
	ClassExpr    *lexer.Token
	MethodID     *lexer.Token
	Params       []ExprContext
}

type LetExprContext struct {
	BaseContext

	LocalVars []*LocalContext
	InExpr    ExprContext
}

type ParenExprContext struct {
	BaseContext

	Expr ExprContext
}

// UnaryExprContext covers ~, not and isvoid; the operator is the start token.
type UnaryExprContext struct {
	BaseContext

	Expr ExprContext
}

type WhileExprContext struct {
	BaseContext

	CondExpr   ExprContext
	InsideExpr ExprContext
}

type IfExprContext struct {
	BaseContext

	CondExpr ExprContext
	ThenExpr ExprContext
	ElseExpr ExprContext
}

type BlockExprContext struct {
	BaseContext

	InsideExprs []ExprContext
}

type CaseExprContext struct {
	BaseContext

	Expr     ExprContext
	Branches []*BranchContext
}

type ArithmeticExprContext struct {
	BaseContext

	Left  ExprContext
	Op    *lexer.Token
	Right ExprContext
}

type LogicalExprContext struct {
	BaseContext

	Left  ExprContext
	Op    *lexer.Token
	Right ExprContext
}

func (*NewExprContext) RuleName() string        { return "newExpr" }
func (*ObjectExprContext) RuleName() string     { return "objectExpr" }
func (*IntegerExprContext) RuleName() string    { return "integerExpr" }
func (*StringExprContext) RuleName() string     { return "stringLiteralExpr" }
func (*BoolExprContext) RuleName() string       { return "boolExpr" }
func (*AssignExprContext) RuleName() string     { return "assignExpr" }
func (*ImplicitCallContext) RuleName() string   { return "implicitCall" }
func (*ExplicitCallContext) RuleName() string   { return "explicitCall" }
func (*LetExprContext) RuleName() string        { return "letExpr" }
func (*ParenExprContext) RuleName() string      { return "parenExpr" }
func (*UnaryExprContext) RuleName() string      { return "unaryExpr" }
func (*WhileExprContext) RuleName() string      { return "whileExpr" }
func (*IfExprContext) RuleName() string         { return "ifExpr" }
func (*BlockExprContext) RuleName() string      { return "blockExpr" }
func (*CaseExprContext) RuleName() string       { return "caseExpr" }
func (*ArithmeticExprContext) RuleName() string { return "arithmeticExpr" }
func (*LogicalExprContext) RuleName() string    { return "logicalExpr" }

func (*NewExprContext) exprContext()        {}
func (*ObjectExprContext) exprContext()     {}
func (*IntegerExprContext) exprContext()    {}
func (*StringExprContext) exprContext()     {}
func (*BoolExprContext) exprContext()       {}
func (*AssignExprContext) exprContext()     {}
func (*ImplicitCallContext) exprContext()   {}
func (*ExplicitCallContext) exprContext()   {}
func (*LetExprContext) exprContext()        {}
func (*ParenExprContext) exprContext()      {}
func (*UnaryExprContext) exprContext()      {}
func (*WhileExprContext) exprContext()      {}
func (*IfExprContext) exprContext()         {}
func (*BlockExprContext) exprContext()      {}
func (*CaseExprContext) exprContext()       {}
func (*ArithmeticExprContext) exprContext() {}
func (*LogicalExprContext) exprContext()    {}
