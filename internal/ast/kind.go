package ast

import "fmt"

// Kind tags the concrete type of a node.
type Kind int

const (
	ProgramKind Kind = iota
	ClassKind
	FieldKind
	MethodKind
	FormalKind
	LocalKind
	BranchKind
	TypeIdKind

	NewKind
	ObjectIdKind
	IntKind
	StrKind
	BoolKind
	AssignKind
	ImplicitCallKind
	ExplicitCallKind
	LetKind
	ParenKind
	UnaryKind
	WhileKind
	IfKind
	BlockKind
	CaseKind
	ArithmeticKind
	LogicalKind
)

// ExprKinds lists every expression variant.
var ExprKinds = []Kind{
	NewKind,
	ObjectIdKind,
	IntKind,
	StrKind,
	BoolKind,
	AssignKind,
	ImplicitCallKind,
	ExplicitCallKind,
	LetKind,
	ParenKind,
	UnaryKind,
	WhileKind,
	IfKind,
	BlockKind,
	CaseKind,
	ArithmeticKind,
	LogicalKind,
}

func (k Kind) String() string {
	switch k {
	case ProgramKind:
		return "Program"
	case ClassKind:
		return "Class"
	case FieldKind:
		return "Field"
	case MethodKind:
		return "Method"
	case FormalKind:
		return "Formal"
	case LocalKind:
		return "Local"
	case BranchKind:
		return "Branch"
	case TypeIdKind:
		return "TypeId"
	case NewKind:
		return "New"
	case ObjectIdKind:
		return "ObjectId"
	case IntKind:
		return "Int"
	case StrKind:
		return "Str"
	case BoolKind:
		return "Bool"
	case AssignKind:
		return "Assign"
	case ImplicitCallKind:
		return "ImplicitCall"
	case ExplicitCallKind:
		return "ExplicitCall"
	case LetKind:
		return "Let"
	case ParenKind:
		return "Paren"
	case UnaryKind:
		return "Unary"
	case WhileKind:
		return "While"
	case IfKind:
		return "If"
	case BlockKind:
		return "Block"
	case CaseKind:
		return "Case"
	case ArithmeticKind:
		return "Arithmetic"
	case LogicalKind:
		return "Logical"
	default:
		panic(fmt.Sprintf("Kind.String(): received illegal node kind: %d", k))
	}
}

func KindOf(n Node) Kind {
	return Accept[Kind](n, kindVisitor{})
}

type kindVisitor struct{}

func (kindVisitor) VisitProgram(*Program) Kind           { return ProgramKind }
func (kindVisitor) VisitClass(*Class) Kind               { return ClassKind }
func (kindVisitor) VisitField(*Field) Kind               { return FieldKind }
func (kindVisitor) VisitMethod(*Method) Kind             { return MethodKind }
func (kindVisitor) VisitFormal(*Formal) Kind             { return FormalKind }
func (kindVisitor) VisitLocal(*Local) Kind               { return LocalKind }
func (kindVisitor) VisitBranch(*Branch) Kind             { return BranchKind }
func (kindVisitor) VisitTypeId(*TypeId) Kind             { return TypeIdKind }
func (kindVisitor) VisitNew(*New) Kind                   { return NewKind }
func (kindVisitor) VisitObjectId(*ObjectId) Kind         { return ObjectIdKind }
func (kindVisitor) VisitInt(*Int) Kind                   { return IntKind }
func (kindVisitor) VisitStr(*Str) Kind                   { return StrKind }
func (kindVisitor) VisitBool(*Bool) Kind                 { return BoolKind }
func (kindVisitor) VisitAssign(*Assign) Kind             { return AssignKind }
func (kindVisitor) VisitImplicitCall(*ImplicitCall) Kind { return ImplicitCallKind }
func (kindVisitor) VisitExplicitCall(*ExplicitCall) Kind { return ExplicitCallKind }
func (kindVisitor) VisitLet(*Let) Kind                   { return LetKind }
func (kindVisitor) VisitParen(*Paren) Kind               { return ParenKind }
func (kindVisitor) VisitUnary(*Unary) Kind               { return UnaryKind }
func (kindVisitor) VisitWhile(*While) Kind               { return WhileKind }
func (kindVisitor) VisitIf(*If) Kind                     { return IfKind }
func (kindVisitor) VisitBlock(*Block) Kind               { return BlockKind }
func (kindVisitor) VisitCase(*Case) Kind                 { return CaseKind }
func (kindVisitor) VisitArithmetic(*Arithmetic) Kind     { return ArithmeticKind }
func (kindVisitor) VisitLogical(*Logical) Kind           { return LogicalKind }
