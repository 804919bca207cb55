// Package ast_builder turns a concrete parse tree into an ast.Program.
//
// The builder is a single recursive descent with one case per grammar rule.
// Children are always built before their parent, optional sub-rules are
// either built or left out, and repeated sub-rules keep their source order.
// A tree that does not match the grammar aborts the whole build with a
// *DefectError; no partial program is ever returned.
package ast_builder

import (
	"fmt"

	"github.com/kievzenit/coolfront/internal/ast"
	"github.com/kievzenit/coolfront/internal/cst"
	"github.com/kievzenit/coolfront/internal/lexer"
)

type AstBuilder struct {
	tree *cst.Tree
}

func NewAstBuilder(tree *cst.Tree) *AstBuilder {
	return &AstBuilder{
		tree: tree,
	}
}

func Build(tree *cst.Tree) (*ast.Program, error) {
	return NewAstBuilder(tree).Build()
}

// MustBuild is Build for callers that treat a defect as fatal.
func MustBuild(tree *cst.Tree) *ast.Program {
	program, err := Build(tree)
	if err != nil {
		panic(err)
	}

	return program
}

func (b *AstBuilder) Build() (program *ast.Program, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		defect, ok := r.(*DefectError)
		if !ok {
			panic(r)
		}

		program = nil
		err = defect
	}()

	if b.tree == nil || b.tree.Root == nil {
		panic(&DefectError{Rule: "program", Missing: "the root context"})
	}

	return b.buildProgram(b.tree.Root), nil
}

func (b *AstBuilder) buildProgram(ctx *cst.ProgramContext) *ast.Program {
	b.checkIndexed(ctx)

	classes := make([]*ast.Class, 0, len(ctx.Classes))
	for i, classCtx := range ctx.Classes {
		if classCtx == nil {
			b.defect(ctx, fmt.Sprintf("class #%d", i))
		}
		classes = append(classes, b.buildClass(classCtx))
	}

	if len(classes) == 0 {
		b.defect(ctx, "at least one class")
	}

	return ast.NewProgram(b.anchor(ctx, ctx.Start(), "start token"), classes)
}

func (b *AstBuilder) buildClass(ctx *cst.ClassContext) *ast.Class {
	b.checkIndexed(ctx)

	name := b.typeId(ctx, ctx.ClassName, "className")

	var parent *ast.TypeId
	if ctx.ParentName != nil {
		parent = b.typeId(ctx, ctx.ParentName, "parentName")
	}

	features := make([]ast.Feature, 0, len(ctx.Features))
	for i, featureCtx := range ctx.Features {
		features = append(features, b.buildFeature(ctx, featureCtx, i))
	}

	return ast.NewClass(b.anchor(ctx, ctx.Start(), "start token"), name, parent, features)
}

func (b *AstBuilder) buildFeature(owner cst.Context, ctx cst.FeatureContext, index int) ast.Feature {
	switch ctx := ctx.(type) {
	case *cst.MethodContext:
		if ctx != nil {
			return b.buildMethod(ctx)
		}
	case *cst.FieldContext:
		if ctx != nil {
			return b.buildField(ctx)
		}
	case nil:
	default:
		b.defect(owner, fmt.Sprintf("a known feature kind at #%d, got %T", index, ctx))
	}

	b.defect(owner, fmt.Sprintf("feature #%d", index))
	panic("unreachable")
}

func (b *AstBuilder) buildMethod(ctx *cst.MethodContext) *ast.Method {
	b.checkIndexed(ctx)

	name := b.objectId(ctx, ctx.MethodID, "methodId")

	formals := make([]*ast.Formal, 0, len(ctx.Params))
	for i, paramCtx := range ctx.Params {
		if paramCtx == nil {
			b.defect(ctx, fmt.Sprintf("param #%d", i))
		}
		formals = append(formals, b.buildFormal(paramCtx))
	}

	returnType := b.typeId(ctx, ctx.ReturnType, "returnType")
	body := b.buildExpr(ctx, ctx.Body, "body")

	return ast.NewMethod(b.anchor(ctx, ctx.Start(), "start token"), name, formals, returnType, body)
}

func (b *AstBuilder) buildField(ctx *cst.FieldContext) *ast.Field {
	b.checkIndexed(ctx)

	name := b.objectId(ctx, ctx.VariableID, "variableId")
	typeName := b.typeId(ctx, ctx.TypeID, "typeId")

	var init ast.Expression
	if ctx.InitialExpr != nil {
		init = b.buildExpr(ctx, ctx.InitialExpr, "initialExpr")
	}

	return ast.NewField(b.anchor(ctx, ctx.Start(), "start token"), name, typeName, init)
}

func (b *AstBuilder) buildFormal(ctx *cst.FormalContext) *ast.Formal {
	b.checkIndexed(ctx)

	return ast.NewFormal(
		b.anchor(ctx, ctx.Start(), "start token"),
		b.objectId(ctx, ctx.ObjectID, "objectId"),
		b.typeId(ctx, ctx.TypeID, "typeId"))
}

func (b *AstBuilder) buildLocal(ctx *cst.LocalContext) *ast.Local {
	b.checkIndexed(ctx)

	name := b.objectId(ctx, ctx.ObjectID, "objectId")
	typeName := b.typeId(ctx, ctx.TypeID, "typeId")

	var init ast.Expression
	if ctx.AssignExpr != nil {
		init = b.buildExpr(ctx, ctx.AssignExpr, "assignExpr")
	}

	return ast.NewLocal(b.anchor(ctx, ctx.Start(), "start token"), name, typeName, init)
}

func (b *AstBuilder) buildBranch(ctx *cst.BranchContext) *ast.Branch {
	b.checkIndexed(ctx)

	name := b.objectId(ctx, ctx.ObjectID, "objectId")
	typeName := b.typeId(ctx, ctx.TypeID, "typeId")
	body := b.buildExpr(ctx, ctx.BranchExpr, "branchExpr")

	return ast.NewBranch(b.anchor(ctx, ctx.Start(), "start token"), name, typeName, body)
}

// typeId and objectId anchor an identifier on its own token; the identifier
// shares the provenance of the rule it appears in.
func (b *AstBuilder) typeId(ctx cst.Context, token *lexer.Token, field string) *ast.TypeId {
	return ast.NewTypeId(b.anchor(ctx, token, field))
}

func (b *AstBuilder) objectId(ctx cst.Context, token *lexer.Token, field string) *ast.ObjectId {
	return ast.NewObjectId(b.anchor(ctx, token, field))
}

func (b *AstBuilder) anchor(ctx cst.Context, token *lexer.Token, field string) ast.Anchor {
	if token == nil {
		b.defect(ctx, field)
	}

	return ast.Anchor{
		Token: *token,
		Origin: ast.Origin{
			Tree:      b.tree.ID,
			Node:      ctx.ID(),
			Enclosing: ctx.Parent(),
		},
	}
}

// checkIndexed makes sure ctx is the context the tree knows under its id,
// otherwise the node's provenance would point at something else.
func (b *AstBuilder) checkIndexed(ctx cst.Context) {
	indexed, ok := b.tree.Node(ctx.ID())
	if !ok || indexed != ctx {
		b.defect(ctx, "an index in the parse tree")
	}
}

func (b *AstBuilder) defect(ctx cst.Context, missing string) {
	defect := &DefectError{
		Rule:    ctx.RuleName(),
		Missing: missing,

		FileName: b.tree.FileName,
	}

	if start := ctx.Start(); start != nil {
		defect.Line = start.Metadata.Line
		defect.Column = start.Metadata.Column
	}

	panic(defect)
}
