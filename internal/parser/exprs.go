package parser

import (
	"github.com/kievzenit/coolfront/internal/cst"
	"github.com/kievzenit/coolfront/internal/lexer"
)

func (p *Parser) parseExpr() cst.ExprContext {
	left := p.parseUnaryExpr()
	return p.parseBinaryExpr(left, 0)
}

func (p *Parser) parseUnaryExpr() cst.ExprContext {
	switch p.curr.Kind {
	case lexer.NOT:
		// not binds looser than every binary operator
		op := p.curr
		p.read()

		return &cst.UnaryExprContext{
			BaseContext: cst.NewBase(op),

			Expr: p.parseExpr(),
		}
	case lexer.ISVOID, lexer.TILDE:
		op := p.curr
		p.read()

		return &cst.UnaryExprContext{
			BaseContext: cst.NewBase(op),

			Expr: p.parseUnaryExpr(),
		}
	}

	return p.parseDispatchExpr()
}

func (p *Parser) parseBinaryExpr(left cst.ExprContext, bindingPower int) cst.ExprContext {
	for {
		op := p.curr
		currentBindingPower, ok := bindingPowerLookup[op.Kind]
		if !ok || currentBindingPower < bindingPower {
			return left
		}
		p.read()

		right := p.parseUnaryExpr()

		nextBindingPower, ok := bindingPowerLookup[p.curr.Kind]
		if ok && currentBindingPower < nextBindingPower {
			right = p.parseBinaryExpr(right, currentBindingPower+10)
		}

		left = newBinaryExpr(left, op, right)
	}
}

func newBinaryExpr(left cst.ExprContext, op *lexer.Token, right cst.ExprContext) cst.ExprContext {
	switch op.Kind {
	case lexer.LT, lexer.LEQ, lexer.EQ:
		return &cst.LogicalExprContext{
			BaseContext: cst.NewBase(left.Start()),

			Left:  left,
			Op:    op,
			Right: right,
		}
	default:
		return &cst.ArithmeticExprContext{
			BaseContext: cst.NewBase(left.Start()),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}
}

// parseDispatchExpr handles the left-recursive expr.m(...) and
// expr@T.m(...) forms.
func (p *Parser) parseDispatchExpr() cst.ExprContext {
	expr := p.parsePrimaryExpr()

	for p.isCurrAny(lexer.DOT, lexer.AT) {
		var classExpr *lexer.Token
		if p.curr.Kind == lexer.AT {
			p.read()

			p.expect(lexer.TYPEID)
			classExpr = p.curr
			p.read()
		}

		p.expect(lexer.DOT)
		p.read()

		p.expect(lexer.IDENT)
		methodID := p.curr
		p.read()

		params := p.parseArgs()

		expr = &cst.ExplicitCallContext{
			BaseContext: cst.NewBase(expr.Start()),

			DispatchExpr: expr,
			ClassExpr:    classExpr,
			MethodID:     methodID,
			Params:       params,
		}
	}

	return expr
}

func (p *Parser) parsePrimaryExpr() cst.ExprContext {
	switch p.curr.Kind {
	case lexer.IDENT:
		switch p.peek().Kind {
		case lexer.LPAREN:
			return p.parseImplicitCall()
		case lexer.ASSIGN:
			return p.parseAssignExpr()
		}

		return p.parseObjectExpr()
	case lexer.INT:
		startToken := p.curr
		p.read()

		return &cst.IntegerExprContext{
			BaseContext: cst.NewBase(startToken),
		}
	case lexer.STRING:
		startToken := p.curr
		p.read()

		return &cst.StringExprContext{
			BaseContext: cst.NewBase(startToken),
		}
	case lexer.BOOL:
		startToken := p.curr
		p.read()

		return &cst.BoolExprContext{
			BaseContext: cst.NewBase(startToken),

			Val: startToken,
		}
	case lexer.NEW:
		return p.parseNewExpr()
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.LBRACE:
		return p.parseBlockExpr()
	case lexer.IF:
		return p.parseIfExpr()
	case lexer.WHILE:
		return p.parseWhileExpr()
	case lexer.LET:
		return p.parseLetExpr()
	case lexer.CASE:
		return p.parseCaseExpr()
	}

	p.unexpected(p.curr.Kind)
	panic("unreachable")
}

func (p *Parser) parseObjectExpr() *cst.ObjectExprContext {
	p.expect(lexer.IDENT)
	startToken := p.curr
	p.read()

	return &cst.ObjectExprContext{
		BaseContext: cst.NewBase(startToken),
	}
}

func (p *Parser) parseAssignExpr() *cst.AssignExprContext {
	p.expect(lexer.IDENT)
	startToken := p.curr
	p.read()

	p.expect(lexer.ASSIGN)
	p.read()

	value := p.parseExpr()

	return &cst.AssignExprContext{
		BaseContext: cst.NewBase(startToken),

		ObjectID: startToken,
		Expr:     value,
	}
}

func (p *Parser) parseImplicitCall() *cst.ImplicitCallContext {
	p.expect(lexer.IDENT)
	startToken := p.curr
	p.read()

	params := p.parseArgs()

	return &cst.ImplicitCallContext{
		BaseContext: cst.NewBase(startToken),

		MethodID: startToken,
		Params:   params,
	}
}

func (p *Parser) parseArgs() []cst.ExprContext {
	p.expect(lexer.LPAREN)
	p.read()

	args := make([]cst.ExprContext, 0)
	if p.curr.Kind != lexer.RPAREN {
		args = append(args, p.parseExpr())
		for p.curr.Kind == lexer.COMMA {
			p.read()
			args = append(args, p.parseExpr())
		}
	}

	p.expect(lexer.RPAREN)
	p.read()

	return args
}

func (p *Parser) parseNewExpr() *cst.NewExprContext {
	p.expect(lexer.NEW)
	startToken := p.curr
	p.read()

	p.expect(lexer.TYPEID)
	typeID := p.curr
	p.read()

	return &cst.NewExprContext{
		BaseContext: cst.NewBase(startToken),

		TypeID: typeID,
	}
}

func (p *Parser) parseParenExpr() *cst.ParenExprContext {
	p.expect(lexer.LPAREN)
	startToken := p.curr
	p.read()

	expr := p.parseExpr()

	p.expect(lexer.RPAREN)
	p.read()

	return &cst.ParenExprContext{
		BaseContext: cst.NewBase(startToken),

		Expr: expr,
	}
}

func (p *Parser) parseBlockExpr() *cst.BlockExprContext {
	p.expect(lexer.LBRACE)
	startToken := p.curr
	p.read()

	insideExprs := make([]cst.ExprContext, 0)
	for {
		insideExprs = append(insideExprs, p.parseExpr())

		p.expect(lexer.SEMICOLON)
		p.read()

		if !p.scanner.HasTokens() || p.curr.Kind == lexer.RBRACE {
			break
		}
	}

	p.expect(lexer.RBRACE)
	p.read()

	return &cst.BlockExprContext{
		BaseContext: cst.NewBase(startToken),

		InsideExprs: insideExprs,
	}
}

func (p *Parser) parseIfExpr() *cst.IfExprContext {
	p.expect(lexer.IF)
	startToken := p.curr
	p.read()

	condExpr := p.parseExpr()

	p.expect(lexer.THEN)
	p.read()

	thenExpr := p.parseExpr()

	p.expect(lexer.ELSE)
	p.read()

	elseExpr := p.parseExpr()

	p.expect(lexer.FI)
	p.read()

	return &cst.IfExprContext{
		BaseContext: cst.NewBase(startToken),

		CondExpr: condExpr,
		ThenExpr: thenExpr,
		ElseExpr: elseExpr,
	}
}

func (p *Parser) parseWhileExpr() *cst.WhileExprContext {
	p.expect(lexer.WHILE)
	startToken := p.curr
	p.read()

	condExpr := p.parseExpr()

	p.expect(lexer.LOOP)
	p.read()

	insideExpr := p.parseExpr()

	p.expect(lexer.POOL)
	p.read()

	return &cst.WhileExprContext{
		BaseContext: cst.NewBase(startToken),

		CondExpr:   condExpr,
		InsideExpr: insideExpr,
	}
}

func (p *Parser) parseLetExpr() *cst.LetExprContext {
	p.expect(lexer.LET)
	startToken := p.curr
	p.read()

	localVars := make([]*cst.LocalContext, 0)
	localVars = append(localVars, p.parseLocal())
	for p.curr.Kind == lexer.COMMA {
		p.read()
		localVars = append(localVars, p.parseLocal())
	}

	p.expect(lexer.IN)
	p.read()

	inExpr := p.parseExpr()

	return &cst.LetExprContext{
		BaseContext: cst.NewBase(startToken),

		LocalVars: localVars,
		InExpr:    inExpr,
	}
}

func (p *Parser) parseCaseExpr() *cst.CaseExprContext {
	p.expect(lexer.CASE)
	startToken := p.curr
	p.read()

	expr := p.parseExpr()

	p.expect(lexer.OF)
	p.read()

	branches := make([]*cst.BranchContext, 0)
	for {
		branches = append(branches, p.parseBranch())

		p.expect(lexer.SEMICOLON)
		p.read()

		if !p.scanner.HasTokens() || p.curr.Kind == lexer.ESAC {
			break
		}
	}

	p.expect(lexer.ESAC)
	p.read()

	return &cst.CaseExprContext{
		BaseContext: cst.NewBase(startToken),

		Expr:     expr,
		Branches: branches,
	}
}
