// Package ast defines the typed, immutable syntax tree of a COOL compilation
// unit.
//
// Nodes are built once by the ast_builder package and never modified after
// that: fields are unexported and exposed through accessors, and accessors
// returning sequences hand out copies. Later phases add behavior through the
// Visitor interface (see Accept), which has one method per concrete node
// type.
package ast

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/kievzenit/coolfront/internal/cst"
	"github.com/kievzenit/coolfront/internal/lexer"
)

type Node interface {
	FirstToken() lexer.Token
	Pos() Position
	Origin() Origin

	accept(v Visitor[struct{}]) struct{}
}

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Origin points back into the parse tree a node was built from. It is a pair
// of indices, never a reference, so the AST stays usable after the parse tree
// is gone. Node is the context the node was built from, Enclosing the context
// that contains it.
type Origin struct {
	Tree      uuid.UUID
	Node      cst.NodeID
	Enclosing cst.NodeID
}

// Resolve looks the originating context up in t. It fails when t is not the
// tree the node was built from.
func (o Origin) Resolve(t *cst.Tree) (cst.Context, bool) {
	if t == nil || t.ID != o.Tree {
		return nil, false
	}

	return t.Node(o.Node)
}

func (o Origin) ResolveEnclosing(t *cst.Tree) (cst.Context, bool) {
	if t == nil || t.ID != o.Tree {
		return nil, false
	}

	return t.Node(o.Enclosing)
}

// Anchor is what every node is built from: the token that positions it and
// its provenance.
type Anchor struct {
	Token  lexer.Token
	Origin Origin
}

type nodeBase struct {
	anchor Anchor
}

func (b *nodeBase) FirstToken() lexer.Token { return b.anchor.Token }
func (b *nodeBase) Origin() Origin          { return b.anchor.Origin }

func (b *nodeBase) Pos() Position {
	return Position{
		Line:   b.anchor.Token.Metadata.Line,
		Column: b.anchor.Token.Metadata.Column,
	}
}

type Program struct {
	nodeBase

	classes []*Class
}

func NewProgram(at Anchor, classes []*Class) *Program {
	return &Program{
		nodeBase: nodeBase{at},

		classes: classes,
	}
}

func (p *Program) Classes() []*Class { return slices.Clone(p.classes) }

type Class struct {
	nodeBase

	name     *TypeId
	parent   *TypeId
	features []Feature
}

// NewClass builds a class; parent is nil when the class has no inherits
// clause.
func NewClass(at Anchor, name *TypeId, parent *TypeId, features []Feature) *Class {
	return &Class{
		nodeBase: nodeBase{at},

		name:     name,
		parent:   parent,
		features: features,
	}
}

func (c *Class) Name() *TypeId { return c.name }

func (c *Class) Parent() (*TypeId, bool) {
	return c.parent, c.parent != nil
}

func (c *Class) Features() []Feature { return slices.Clone(c.features) }

type Feature interface {
	Node
	featureNode()
}

type Field struct {
	nodeBase

	name     *ObjectId
	typeName *TypeId
	init     Expression
}

func NewField(at Anchor, name *ObjectId, typeName *TypeId, init Expression) *Field {
	return &Field{
		nodeBase: nodeBase{at},

		name:     name,
		typeName: typeName,
		init:     init,
	}
}

func (f *Field) Name() *ObjectId { return f.name }
func (f *Field) Type() *TypeId   { return f.typeName }

func (f *Field) Init() (Expression, bool) {
	return f.init, f.init != nil
}

type Method struct {
	nodeBase

	name       *ObjectId
	formals    []*Formal
	returnType *TypeId
	body       Expression
}

func NewMethod(at Anchor, name *ObjectId, formals []*Formal, returnType *TypeId, body Expression) *Method {
	return &Method{
		nodeBase: nodeBase{at},

		name:       name,
		formals:    formals,
		returnType: returnType,
		body:       body,
	}
}

func (m *Method) Name() *ObjectId     { return m.name }
func (m *Method) Formals() []*Formal  { return slices.Clone(m.formals) }
func (m *Method) ReturnType() *TypeId { return m.returnType }
func (m *Method) Body() Expression    { return m.body }

type Formal struct {
	nodeBase

	name     *ObjectId
	typeName *TypeId
}

func NewFormal(at Anchor, name *ObjectId, typeName *TypeId) *Formal {
	return &Formal{
		nodeBase: nodeBase{at},

		name:     name,
		typeName: typeName,
	}
}

func (f *Formal) Name() *ObjectId { return f.name }
func (f *Formal) Type() *TypeId   { return f.typeName }

// Local is one binding of a let. Each local is in scope for the locals that
// follow it and for the let body.
type Local struct {
	nodeBase

	name     *ObjectId
	typeName *TypeId
	init     Expression
}

func NewLocal(at Anchor, name *ObjectId, typeName *TypeId, init Expression) *Local {
	return &Local{
		nodeBase: nodeBase{at},

		name:     name,
		typeName: typeName,
		init:     init,
	}
}

func (l *Local) Name() *ObjectId { return l.name }
func (l *Local) Type() *TypeId   { return l.typeName }

func (l *Local) Init() (Expression, bool) {
	return l.init, l.init != nil
}

type Branch struct {
	nodeBase

	name     *ObjectId
	typeName *TypeId
	body     Expression
}

func NewBranch(at Anchor, name *ObjectId, typeName *TypeId, body Expression) *Branch {
	return &Branch{
		nodeBase: nodeBase{at},

		name:     name,
		typeName: typeName,
		body:     body,
	}
}

func (b *Branch) Name() *ObjectId  { return b.name }
func (b *Branch) Type() *TypeId    { return b.typeName }
func (b *Branch) Body() Expression { return b.body }

// TypeId is an unresolved type name.
type TypeId struct {
	nodeBase
}

func NewTypeId(at Anchor) *TypeId {
	return &TypeId{
		nodeBase: nodeBase{at},
	}
}

func (t *TypeId) Name() string { return t.anchor.Token.Value }

func (*Field) featureNode()  {}
func (*Method) featureNode() {}
