package ast_builder

import (
	"fmt"
	"reflect"

	"github.com/kievzenit/coolfront/internal/ast"
	"github.com/kievzenit/coolfront/internal/cst"
)

// buildExpr builds a required expression sub-rule of owner.
func (b *AstBuilder) buildExpr(owner cst.Context, ctx cst.ExprContext, field string) ast.Expression {
	if ctx == nil || reflect.ValueOf(ctx).IsNil() {
		b.defect(owner, field)
	}

	b.checkIndexed(ctx)

	switch ctx := ctx.(type) {
	case *cst.NewExprContext:
		return ast.NewNew(b.anchor(ctx, ctx.Start(), "start token"), b.typeId(ctx, ctx.TypeID, "typeId"))
	case *cst.ObjectExprContext:
		return b.objectId(ctx, ctx.Start(), "start token")
	case *cst.IntegerExprContext:
		return ast.NewInt(b.anchor(ctx, ctx.Start(), "start token"))
	case *cst.StringExprContext:
		return ast.NewStr(b.anchor(ctx, ctx.Start(), "start token"))
	case *cst.BoolExprContext:
		// anchored on the value token, which is also the first token of the rule
		return ast.NewBool(b.anchor(ctx, ctx.Val, "val"))
	case *cst.AssignExprContext:
		target := b.objectId(ctx, ctx.ObjectID, "objectId")
		value := b.buildExpr(ctx, ctx.Expr, "expr")
		return ast.NewAssign(b.anchor(ctx, ctx.Start(), "start token"), target, value)
	case *cst.ImplicitCallContext:
		method := b.objectId(ctx, ctx.MethodID, "methodId")
		args := b.buildExprs(ctx, ctx.Params, "param")
		return ast.NewImplicitCall(b.anchor(ctx, ctx.Start(), "start token"), method, args)
	case *cst.ExplicitCallContext:
		return b.buildExplicitCall(ctx)
	case *cst.LetExprContext:
		return b.buildLet(ctx)
	case *cst.ParenExprContext:
		inner := b.buildExpr(ctx, ctx.Expr, "expr")
		return ast.NewParen(b.anchor(ctx, ctx.Start(), "start token"), inner)
	case *cst.UnaryExprContext:
		operand := b.buildExpr(ctx, ctx.Expr, "expr")
		return ast.NewUnary(b.anchor(ctx, ctx.Start(), "operator"), operand)
	case *cst.WhileExprContext:
		cond := b.buildExpr(ctx, ctx.CondExpr, "condExpr")
		body := b.buildExpr(ctx, ctx.InsideExpr, "insideExpr")
		return ast.NewWhile(b.anchor(ctx, ctx.Start(), "start token"), cond, body)
	case *cst.IfExprContext:
		cond := b.buildExpr(ctx, ctx.CondExpr, "condExpr")
		thenExpr := b.buildExpr(ctx, ctx.ThenExpr, "thenExpr")
		elseExpr := b.buildExpr(ctx, ctx.ElseExpr, "elseExpr")
		return ast.NewIf(b.anchor(ctx, ctx.Start(), "start token"), cond, thenExpr, elseExpr)
	case *cst.BlockExprContext:
		if len(ctx.InsideExprs) == 0 {
			b.defect(ctx, "at least one expression")
		}
		exprs := b.buildExprs(ctx, ctx.InsideExprs, "insideExpr")
		return ast.NewBlock(b.anchor(ctx, ctx.Start(), "start token"), exprs)
	case *cst.CaseExprContext:
		return b.buildCase(ctx)
	case *cst.ArithmeticExprContext:
		left := b.buildExpr(ctx, ctx.Left, "left")
		right := b.buildExpr(ctx, ctx.Right, "right")
		op := b.anchor(ctx, ctx.Op, "op").Token
		return ast.NewArithmetic(b.anchor(ctx, ctx.Start(), "start token"), op, left, right)
	case *cst.LogicalExprContext:
		left := b.buildExpr(ctx, ctx.Left, "left")
		right := b.buildExpr(ctx, ctx.Right, "right")
		op := b.anchor(ctx, ctx.Op, "op").Token
		return ast.NewLogical(b.anchor(ctx, ctx.Start(), "start token"), op, left, right)
	}

	b.defect(owner, fmt.Sprintf("a known expression kind for %s, got %T", field, ctx))
	panic("unreachable")
}

func (b *AstBuilder) buildExprs(owner cst.Context, ctxs []cst.ExprContext, field string) []ast.Expression {
	exprs := make([]ast.Expression, 0, len(ctxs))
	for i, ctx := range ctxs {
		exprs = append(exprs, b.buildExpr(owner, ctx, fmt.Sprintf("%s #%d", field, i)))
	}

	return exprs
}

func (b *AstBuilder) buildExplicitCall(ctx *cst.ExplicitCallContext) *ast.ExplicitCall {
	receiver := b.buildExpr(ctx, ctx.DispatchExpr, "dispatchExpr")

	var staticType *ast.TypeId
	if ctx.ClassExpr != nil {
		staticType = b.typeId(ctx, ctx.ClassExpr, "classExpr")
	}

	method := b.objectId(ctx, ctx.MethodID, "methodId")
	args := b.buildExprs(ctx, ctx.Params, "param")

	return ast.NewExplicitCall(b.anchor(ctx, ctx.Start(), "start token"), receiver, staticType, method, args)
}

func (b *AstBuilder) buildLet(ctx *cst.LetExprContext) *ast.Let {
	if len(ctx.LocalVars) == 0 {
		b.defect(ctx, "at least one local")
	}

	locals := make([]*ast.Local, 0, len(ctx.LocalVars))
	for i, localCtx := range ctx.LocalVars {
		if localCtx == nil {
			b.defect(ctx, fmt.Sprintf("local #%d", i))
		}
		locals = append(locals, b.buildLocal(localCtx))
	}

	body := b.buildExpr(ctx, ctx.InExpr, "inExpr")

	return ast.NewLet(b.anchor(ctx, ctx.Start(), "start token"), locals, body)
}

func (b *AstBuilder) buildCase(ctx *cst.CaseExprContext) *ast.Case {
	scrutinee := b.buildExpr(ctx, ctx.Expr, "expr")

	if len(ctx.Branches) == 0 {
		b.defect(ctx, "at least one branch")
	}

	branches := make([]*ast.Branch, 0, len(ctx.Branches))
	for i, branchCtx := range ctx.Branches {
		if branchCtx == nil {
			b.defect(ctx, fmt.Sprintf("branch #%d", i))
		}
		branches = append(branches, b.buildBranch(branchCtx))
	}

	return ast.NewCase(b.anchor(ctx, ctx.Start(), "start token"), scrutinee, branches)
}
