package ast

// Visitor has exactly one method per concrete node type. A type that misses
// one of them does not implement Visitor and cannot be passed to Accept, so
// adding a node type breaks every existing visitor at compile time.
type Visitor[T any] interface {
	VisitProgram(n *Program) T
	VisitClass(n *Class) T
	VisitField(n *Field) T
	VisitMethod(n *Method) T
	VisitFormal(n *Formal) T
	VisitLocal(n *Local) T
	VisitBranch(n *Branch) T
	VisitTypeId(n *TypeId) T

	VisitNew(n *New) T
	VisitObjectId(n *ObjectId) T
	VisitInt(n *Int) T
	VisitStr(n *Str) T
	VisitBool(n *Bool) T
	VisitAssign(n *Assign) T
	VisitImplicitCall(n *ImplicitCall) T
	VisitExplicitCall(n *ExplicitCall) T
	VisitLet(n *Let) T
	VisitParen(n *Paren) T
	VisitUnary(n *Unary) T
	VisitWhile(n *While) T
	VisitIf(n *If) T
	VisitBlock(n *Block) T
	VisitCase(n *Case) T
	VisitArithmetic(n *Arithmetic) T
	VisitLogical(n *Logical) T
}

// Accept calls the method of v that matches the dynamic type of n.
func Accept[T any](n Node, v Visitor[T]) T {
	d := &dispatcher[T]{visitor: v}
	n.accept(d)
	return d.result
}

// dispatcher lets the non-generic accept methods call a Visitor[T] for any T.
type dispatcher[T any] struct {
	visitor Visitor[T]
	result  T
}

var done = struct{}{}

func (d *dispatcher[T]) VisitProgram(n *Program) struct{} {
	d.result = d.visitor.VisitProgram(n)
	return done
}

func (d *dispatcher[T]) VisitClass(n *Class) struct{} {
	d.result = d.visitor.VisitClass(n)
	return done
}

func (d *dispatcher[T]) VisitField(n *Field) struct{} {
	d.result = d.visitor.VisitField(n)
	return done
}

func (d *dispatcher[T]) VisitMethod(n *Method) struct{} {
	d.result = d.visitor.VisitMethod(n)
	return done
}

func (d *dispatcher[T]) VisitFormal(n *Formal) struct{} {
	d.result = d.visitor.VisitFormal(n)
	return done
}

func (d *dispatcher[T]) VisitLocal(n *Local) struct{} {
	d.result = d.visitor.VisitLocal(n)
	return done
}

func (d *dispatcher[T]) VisitBranch(n *Branch) struct{} {
	d.result = d.visitor.VisitBranch(n)
	return done
}

func (d *dispatcher[T]) VisitTypeId(n *TypeId) struct{} {
	d.result = d.visitor.VisitTypeId(n)
	return done
}

func (d *dispatcher[T]) VisitNew(n *New) struct{} {
	d.result = d.visitor.VisitNew(n)
	return done
}

func (d *dispatcher[T]) VisitObjectId(n *ObjectId) struct{} {
	d.result = d.visitor.VisitObjectId(n)
	return done
}

func (d *dispatcher[T]) VisitInt(n *Int) struct{} {
	d.result = d.visitor.VisitInt(n)
	return done
}

func (d *dispatcher[T]) VisitStr(n *Str) struct{} {
	d.result = d.visitor.VisitStr(n)
	return done
}

func (d *dispatcher[T]) VisitBool(n *Bool) struct{} {
	d.result = d.visitor.VisitBool(n)
	return done
}

func (d *dispatcher[T]) VisitAssign(n *Assign) struct{} {
	d.result = d.visitor.VisitAssign(n)
	return done
}

func (d *dispatcher[T]) VisitImplicitCall(n *ImplicitCall) struct{} {
	d.result = d.visitor.VisitImplicitCall(n)
	return done
}

func (d *dispatcher[T]) VisitExplicitCall(n *ExplicitCall) struct{} {
	d.result = d.visitor.VisitExplicitCall(n)
	return done
}

func (d *dispatcher[T]) VisitLet(n *Let) struct{} {
	d.result = d.visitor.VisitLet(n)
	return done
}

func (d *dispatcher[T]) VisitParen(n *Paren) struct{} {
	d.result = d.visitor.VisitParen(n)
	return done
}

func (d *dispatcher[T]) VisitUnary(n *Unary) struct{} {
	d.result = d.visitor.VisitUnary(n)
	return done
}

func (d *dispatcher[T]) VisitWhile(n *While) struct{} {
	d.result = d.visitor.VisitWhile(n)
	return done
}

func (d *dispatcher[T]) VisitIf(n *If) struct{} {
	d.result = d.visitor.VisitIf(n)
	return done
}

func (d *dispatcher[T]) VisitBlock(n *Block) struct{} {
	d.result = d.visitor.VisitBlock(n)
	return done
}

func (d *dispatcher[T]) VisitCase(n *Case) struct{} {
	d.result = d.visitor.VisitCase(n)
	return done
}

func (d *dispatcher[T]) VisitArithmetic(n *Arithmetic) struct{} {
	d.result = d.visitor.VisitArithmetic(n)
	return done
}

func (d *dispatcher[T]) VisitLogical(n *Logical) struct{} {
	d.result = d.visitor.VisitLogical(n)
	return done
}

func (n *Program) accept(v Visitor[struct{}]) struct{} { return v.VisitProgram(n) }
func (n *Class) accept(v Visitor[struct{}]) struct{}   { return v.VisitClass(n) }
func (n *Field) accept(v Visitor[struct{}]) struct{}   { return v.VisitField(n) }
func (n *Method) accept(v Visitor[struct{}]) struct{}  { return v.VisitMethod(n) }
func (n *Formal) accept(v Visitor[struct{}]) struct{}  { return v.VisitFormal(n) }
func (n *Local) accept(v Visitor[struct{}]) struct{}   { return v.VisitLocal(n) }
func (n *Branch) accept(v Visitor[struct{}]) struct{}  { return v.VisitBranch(n) }
func (n *TypeId) accept(v Visitor[struct{}]) struct{}  { return v.VisitTypeId(n) }

func (n *New) accept(v Visitor[struct{}]) struct{}          { return v.VisitNew(n) }
func (n *ObjectId) accept(v Visitor[struct{}]) struct{}     { return v.VisitObjectId(n) }
func (n *Int) accept(v Visitor[struct{}]) struct{}          { return v.VisitInt(n) }
func (n *Str) accept(v Visitor[struct{}]) struct{}          { return v.VisitStr(n) }
func (n *Bool) accept(v Visitor[struct{}]) struct{}         { return v.VisitBool(n) }
func (n *Assign) accept(v Visitor[struct{}]) struct{}       { return v.VisitAssign(n) }
func (n *ImplicitCall) accept(v Visitor[struct{}]) struct{} { return v.VisitImplicitCall(n) }
func (n *ExplicitCall) accept(v Visitor[struct{}]) struct{} { return v.VisitExplicitCall(n) }
func (n *Let) accept(v Visitor[struct{}]) struct{}          { return v.VisitLet(n) }
func (n *Paren) accept(v Visitor[struct{}]) struct{}        { return v.VisitParen(n) }
func (n *Unary) accept(v Visitor[struct{}]) struct{}        { return v.VisitUnary(n) }
func (n *While) accept(v Visitor[struct{}]) struct{}        { return v.VisitWhile(n) }
func (n *If) accept(v Visitor[struct{}]) struct{}           { return v.VisitIf(n) }
func (n *Block) accept(v Visitor[struct{}]) struct{}        { return v.VisitBlock(n) }
func (n *Case) accept(v Visitor[struct{}]) struct{}         { return v.VisitCase(n) }
func (n *Arithmetic) accept(v Visitor[struct{}]) struct{}   { return v.VisitArithmetic(n) }
func (n *Logical) accept(v Visitor[struct{}]) struct{}      { return v.VisitLogical(n) }
