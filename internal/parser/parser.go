package parser

import (
	"slices"

	"github.com/kievzenit/coolfront/internal/compiler_errors"
	"github.com/kievzenit/coolfront/internal/cst"
	"github.com/kievzenit/coolfront/internal/lexer"
)

type Parser struct {
	fileName string

	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	curr *lexer.Token
}

// Binary operators only; not, isvoid and ~ are prefix rules handled by
// parseUnaryExpr.
var bindingPowerLookup map[lexer.TokenKind]int = map[lexer.TokenKind]int{
	lexer.LT:       10,
	lexer.LEQ:      10,
	lexer.EQ:       10,
	lexer.PLUS:     20,
	lexer.MINUS:    20,
	lexer.ASTERISK: 30,
	lexer.SLASH:    30,
}

func NewParser(fileName string, scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler) *Parser {
	return &Parser{
		fileName: fileName,
		scanner:  scanner,
		eh:       eh,
		curr:     scanner.Read(),
	}
}

// Parse reads a whole compilation unit. Syntax errors are reported through
// the error handler, which does not return.
func (p *Parser) Parse() *cst.Tree {
	program := &cst.ProgramContext{
		BaseContext: cst.NewBase(p.curr),

		Classes: make([]*cst.ClassContext, 0),
	}

	for {
		program.Classes = append(program.Classes, p.parseClass())

		p.expect(lexer.SEMICOLON)
		p.read()

		if p.curr.Kind == lexer.EOF {
			break
		}
	}

	return cst.NewTree(p.fileName, program)
}

func (p *Parser) parseClass() *cst.ClassContext {
	p.expect(lexer.CLASS)
	startToken := p.curr
	p.read()

	p.expect(lexer.TYPEID)
	className := p.curr
	p.read()

	var parentName *lexer.Token
	if p.curr.Kind == lexer.INHERITS {
		p.read()

		p.expect(lexer.TYPEID)
		parentName = p.curr
		p.read()
	}

	p.expect(lexer.LBRACE)
	p.read()

	features := make([]cst.FeatureContext, 0)
	for p.scanner.HasTokens() && p.curr.Kind != lexer.RBRACE {
		features = append(features, p.parseFeature())

		p.expect(lexer.SEMICOLON)
		p.read()
	}

	p.expect(lexer.RBRACE)
	p.read()

	return &cst.ClassContext{
		BaseContext: cst.NewBase(startToken),

		ClassName:  className,
		ParentName: parentName,
		Features:   features,
	}
}

func (p *Parser) parseFeature() cst.FeatureContext {
	p.expect(lexer.IDENT)
	startToken := p.curr
	p.read()

	p.expectAny(lexer.LPAREN, lexer.COLON)
	if p.curr.Kind == lexer.LPAREN {
		return p.parseMethod(startToken)
	}

	return p.parseField(startToken)
}

func (p *Parser) parseMethod(startToken *lexer.Token) *cst.MethodContext {
	p.expect(lexer.LPAREN)
	p.read()

	params := make([]*cst.FormalContext, 0)
	if p.curr.Kind != lexer.RPAREN {
		params = append(params, p.parseFormal())
		for p.curr.Kind == lexer.COMMA {
			p.read()
			params = append(params, p.parseFormal())
		}
	}

	p.expect(lexer.RPAREN)
	p.read()

	p.expect(lexer.COLON)
	p.read()

	p.expect(lexer.TYPEID)
	returnType := p.curr
	p.read()

	p.expect(lexer.LBRACE)
	p.read()

	body := p.parseExpr()

	p.expect(lexer.RBRACE)
	p.read()

	return &cst.MethodContext{
		BaseContext: cst.NewBase(startToken),

		MethodID:   startToken,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

func (p *Parser) parseField(startToken *lexer.Token) *cst.FieldContext {
	p.expect(lexer.COLON)
	p.read()

	p.expect(lexer.TYPEID)
	typeID := p.curr
	p.read()

	var initialExpr cst.ExprContext
	if p.curr.Kind == lexer.ASSIGN {
		p.read()
		initialExpr = p.parseExpr()
	}

	return &cst.FieldContext{
		BaseContext: cst.NewBase(startToken),

		VariableID:  startToken,
		TypeID:      typeID,
		InitialExpr: initialExpr,
	}
}

func (p *Parser) parseFormal() *cst.FormalContext {
	p.expect(lexer.IDENT)
	startToken := p.curr
	p.read()

	p.expect(lexer.COLON)
	p.read()

	p.expect(lexer.TYPEID)
	typeID := p.curr
	p.read()

	return &cst.FormalContext{
		BaseContext: cst.NewBase(startToken),

		ObjectID: startToken,
		TypeID:   typeID,
	}
}

func (p *Parser) parseLocal() *cst.LocalContext {
	p.expect(lexer.IDENT)
	startToken := p.curr
	p.read()

	p.expect(lexer.COLON)
	p.read()

	p.expect(lexer.TYPEID)
	typeID := p.curr
	p.read()

	var assignExpr cst.ExprContext
	if p.curr.Kind == lexer.ASSIGN {
		p.read()
		assignExpr = p.parseExpr()
	}

	return &cst.LocalContext{
		BaseContext: cst.NewBase(startToken),

		ObjectID:   startToken,
		TypeID:     typeID,
		AssignExpr: assignExpr,
	}
}

func (p *Parser) parseBranch() *cst.BranchContext {
	p.expect(lexer.IDENT)
	startToken := p.curr
	p.read()

	p.expect(lexer.COLON)
	p.read()

	p.expect(lexer.TYPEID)
	typeID := p.curr
	p.read()

	p.expect(lexer.RESULTS)
	p.read()

	branchExpr := p.parseExpr()

	return &cst.BranchContext{
		BaseContext: cst.NewBase(startToken),

		ObjectID:   startToken,
		TypeID:     typeID,
		BranchExpr: branchExpr,
	}
}

func (p *Parser) read() *lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}

func (p *Parser) peek() *lexer.Token {
	return p.scanner.Peek()
}

func (p *Parser) expect(kind lexer.TokenKind) {
	if p.curr.Kind != kind {
		p.eh.AddError(&UnexpectedExpectedError{
			Unexpected: p.curr.Kind,
			Expected:   kind,

			FileName: p.fileName,
			Line:     p.curr.Metadata.Line,
			Column:   p.curr.Metadata.Column,
			Length:   p.curr.Metadata.Length,
		})
		p.eh.FailNow()
	}
}

func (p *Parser) expectAny(kinds ...lexer.TokenKind) {
	found := p.isCurrAny(kinds...)
	if found {
		return
	}

	p.eh.AddError(&UnexpectedExpectedManyError{
		Unexpected: p.curr.Kind,
		Expected:   kinds,

		FileName: p.fileName,
		Line:     p.curr.Metadata.Line,
		Column:   p.curr.Metadata.Column,
		Length:   p.curr.Metadata.Length,
	})
	p.eh.FailNow()
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) unexpected(kind lexer.TokenKind) {
	p.eh.AddError(&UnexpectedError{
		Unexpected: kind,

		FileName: p.fileName,
		Line:     p.curr.Metadata.Line,
		Column:   p.curr.Metadata.Column,
		Length:   p.curr.Metadata.Length,
	})
	p.eh.FailNow()
}
