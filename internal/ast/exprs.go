package ast

import (
	"slices"

	"github.com/kievzenit/coolfront/internal/lexer"
)

type Expression interface {
	Node
	exprNode()
}

type New struct {
	nodeBase

	typeName *TypeId
}

// ObjectId is a raw object name. As an expression it is a variable
// reference.
type ObjectId struct {
	nodeBase
}

// Int, Str and Bool keep their literal token undecoded.
type Int struct {
	nodeBase
}

type Str struct {
	nodeBase
}

type Bool struct {
	nodeBase
}

type Assign struct {
	nodeBase

	target *ObjectId
	value  Expression
}

// ImplicitCall is a dispatch on self written without a receiver: m(args).
type ImplicitCall struct {
	nodeBase

	method *ObjectId
	args   []Expression
}

// ExplicitCall is recv.m(args), or recv@T.m(args) when staticType is set.
type ExplicitCall struct {
	nodeBase

	receiver   Expression
	staticType *TypeId
	method     *ObjectId
	args       []Expression
}

type Let struct {
	nodeBase

	locals []*Local
	body   Expression
}

type Paren struct {
	nodeBase

	inner Expression
}

// Unary is ~, not or isvoid. The operator is the anchor token.
type Unary struct {
	nodeBase

	operand Expression
}

type While struct {
	nodeBase

	cond Expression
	body Expression
}

type If struct {
	nodeBase

	cond     Expression
	thenExpr Expression
	elseExpr Expression
}

type Block struct {
	nodeBase

	exprs []Expression
}

type Case struct {
	nodeBase

	scrutinee Expression
	branches  []*Branch
}

// Arithmetic covers + - * /.
type Arithmetic struct {
	nodeBase

	op    lexer.Token
	left  Expression
	right Expression
}

// Logical covers the comparisons < <= =.
type Logical struct {
	nodeBase

	op    lexer.Token
	left  Expression
	right Expression
}

func NewNew(at Anchor, typeName *TypeId) *New {
	return &New{nodeBase: nodeBase{at}, typeName: typeName}
}

func NewObjectId(at Anchor) *ObjectId { return &ObjectId{nodeBase: nodeBase{at}} }
func NewInt(at Anchor) *Int           { return &Int{nodeBase: nodeBase{at}} }
func NewStr(at Anchor) *Str           { return &Str{nodeBase: nodeBase{at}} }
func NewBool(at Anchor) *Bool         { return &Bool{nodeBase: nodeBase{at}} }

func NewAssign(at Anchor, target *ObjectId, value Expression) *Assign {
	return &Assign{nodeBase: nodeBase{at}, target: target, value: value}
}

func NewImplicitCall(at Anchor, method *ObjectId, args []Expression) *ImplicitCall {
	return &ImplicitCall{nodeBase: nodeBase{at}, method: method, args: args}
}

// NewExplicitCall builds a dispatch; staticType is nil for dynamic dispatch.
func NewExplicitCall(
	at Anchor,
	receiver Expression,
	staticType *TypeId,
	method *ObjectId,
	args []Expression,
) *ExplicitCall {
	return &ExplicitCall{
		nodeBase: nodeBase{at},

		receiver:   receiver,
		staticType: staticType,
		method:     method,
		args:       args,
	}
}

func NewLet(at Anchor, locals []*Local, body Expression) *Let {
	return &Let{nodeBase: nodeBase{at}, locals: locals, body: body}
}

func NewParen(at Anchor, inner Expression) *Paren {
	return &Paren{nodeBase: nodeBase{at}, inner: inner}
}

func NewUnary(at Anchor, operand Expression) *Unary {
	return &Unary{nodeBase: nodeBase{at}, operand: operand}
}

func NewWhile(at Anchor, cond Expression, body Expression) *While {
	return &While{nodeBase: nodeBase{at}, cond: cond, body: body}
}

func NewIf(at Anchor, cond Expression, thenExpr Expression, elseExpr Expression) *If {
	return &If{nodeBase: nodeBase{at}, cond: cond, thenExpr: thenExpr, elseExpr: elseExpr}
}

func NewBlock(at Anchor, exprs []Expression) *Block {
	return &Block{nodeBase: nodeBase{at}, exprs: exprs}
}

func NewCase(at Anchor, scrutinee Expression, branches []*Branch) *Case {
	return &Case{nodeBase: nodeBase{at}, scrutinee: scrutinee, branches: branches}
}

func NewArithmetic(at Anchor, op lexer.Token, left Expression, right Expression) *Arithmetic {
	return &Arithmetic{nodeBase: nodeBase{at}, op: op, left: left, right: right}
}

func NewLogical(at Anchor, op lexer.Token, left Expression, right Expression) *Logical {
	return &Logical{nodeBase: nodeBase{at}, op: op, left: left, right: right}
}

func (e *New) Type() *TypeId { return e.typeName }

func (e *ObjectId) Name() string { return e.anchor.Token.Value }

func (e *Int) Literal() string  { return e.anchor.Token.Value }
func (e *Str) Literal() string  { return e.anchor.Token.Value }
func (e *Bool) Literal() string { return e.anchor.Token.Value }

func (e *Assign) Target() *ObjectId { return e.target }
func (e *Assign) Value() Expression { return e.value }

func (e *ImplicitCall) Method() *ObjectId  { return e.method }
func (e *ImplicitCall) Args() []Expression { return slices.Clone(e.args) }

func (e *ExplicitCall) Receiver() Expression { return e.receiver }
func (e *ExplicitCall) Method() *ObjectId    { return e.method }
func (e *ExplicitCall) Args() []Expression   { return slices.Clone(e.args) }

func (e *ExplicitCall) StaticType() (*TypeId, bool) {
	return e.staticType, e.staticType != nil
}

func (e *Let) Locals() []*Local { return slices.Clone(e.locals) }
func (e *Let) Body() Expression { return e.body }

func (e *Paren) Inner() Expression { return e.inner }

func (e *Unary) Op() lexer.Token     { return e.anchor.Token }
func (e *Unary) Operand() Expression { return e.operand }

func (e *While) Cond() Expression { return e.cond }
func (e *While) Body() Expression { return e.body }

func (e *If) Cond() Expression { return e.cond }
func (e *If) Then() Expression { return e.thenExpr }
func (e *If) Else() Expression { return e.elseExpr }

func (e *Block) Exprs() []Expression { return slices.Clone(e.exprs) }

func (e *Case) Scrutinee() Expression { return e.scrutinee }
func (e *Case) Branches() []*Branch   { return slices.Clone(e.branches) }

func (e *Arithmetic) Op() lexer.Token   { return e.op }
func (e *Arithmetic) Left() Expression  { return e.left }
func (e *Arithmetic) Right() Expression { return e.right }

func (e *Logical) Op() lexer.Token   { return e.op }
func (e *Logical) Left() Expression  { return e.left }
func (e *Logical) Right() Expression { return e.right }

func (*New) exprNode()          {}
func (*ObjectId) exprNode()     {}
func (*Int) exprNode()          {}
func (*Str) exprNode()          {}
func (*Bool) exprNode()         {}
func (*Assign) exprNode()       {}
func (*ImplicitCall) exprNode() {}
func (*ExplicitCall) exprNode() {}
func (*Let) exprNode()          {}
func (*Paren) exprNode()        {}
func (*Unary) exprNode()        {}
func (*While) exprNode()        {}
func (*If) exprNode()           {}
func (*Block) exprNode()        {}
func (*Case) exprNode()         {}
func (*Arithmetic) exprNode()   {}
func (*Logical) exprNode()      {}
