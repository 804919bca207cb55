package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota

	INT
	STRING
	BOOL

	TYPEID
	IDENT

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	TILDE    // ~

	LT  // <
	LEQ // <=
	EQ  // =

	ASSIGN  // <-
	RESULTS // =>

	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	COLON     // :
	SEMICOLON // ;
	COMMA     // ,
	DOT       // .
	AT        // @

	CLASS
	INHERITS
	IF
	THEN
	ELSE
	FI
	WHILE
	LOOP
	POOL
	LET
	IN
	CASE
	OF
	ESAC
	NEW
	ISVOID
	NOT

	ONELINE_COMMENT
	MULTILINE_COMMENT
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case INT:
		return "INT"
	case STRING:
		return "STRING"
	case BOOL:
		return "BOOL"
	case TYPEID:
		return "TYPEID"
	case IDENT:
		return "IDENT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case TILDE:
		return "TILDE"
	case LT:
		return "LT"
	case LEQ:
		return "LEQ"
	case EQ:
		return "EQ"
	case ASSIGN:
		return "ASSIGN"
	case RESULTS:
		return "RESULTS"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case COLON:
		return "COLON"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case AT:
		return "AT"
	case CLASS:
		return "CLASS"
	case INHERITS:
		return "INHERITS"
	case IF:
		return "IF"
	case THEN:
		return "THEN"
	case ELSE:
		return "ELSE"
	case FI:
		return "FI"
	case WHILE:
		return "WHILE"
	case LOOP:
		return "LOOP"
	case POOL:
		return "POOL"
	case LET:
		return "LET"
	case IN:
		return "IN"
	case CASE:
		return "CASE"
	case OF:
		return "OF"
	case ESAC:
		return "ESAC"
	case NEW:
		return "NEW"
	case ISVOID:
		return "ISVOID"
	case NOT:
		return "NOT"
	case ONELINE_COMMENT:
		return "ONELINE_COMMENT"
	case MULTILINE_COMMENT:
		return "MULTILINE_COMMENT"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

var keywords = map[string]TokenKind{
	"class":    CLASS,
	"inherits": INHERITS,
	"if":       IF,
	"then":     THEN,
	"else":     ELSE,
	"fi":       FI,
	"while":    WHILE,
	"loop":     LOOP,
	"pool":     POOL,
	"let":      LET,
	"in":       IN,
	"case":     CASE,
	"of":       OF,
	"esac":     ESAC,
	"new":      NEW,
	"isvoid":   ISVOID,
	"not":      NOT,
}

// Metadata locates a token in its source file. Line and Column are 1-based,
// Length is in bytes.
type Metadata struct {
	Line   int
	Column int
	Length int
}

type Token struct {
	Kind  TokenKind
	Value string

	Metadata Metadata
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case INT, STRING, BOOL, TYPEID, IDENT:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

func (t *Token) IsComment() bool {
	return t.Kind == ONELINE_COMMENT || t.Kind == MULTILINE_COMMENT
}
