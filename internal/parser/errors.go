package parser

import (
	"fmt"
	"strings"

	"github.com/kievzenit/coolfront/internal/lexer"
)

type UnexpectedExpectedError struct {
	Unexpected lexer.TokenKind
	Expected   lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedExpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s', expected: '%s'", e.Unexpected.String(), e.Expected.String())
}

func (e *UnexpectedExpectedError) GetFileName() string { return e.FileName }
func (e *UnexpectedExpectedError) GetLine() int        { return e.Line }
func (e *UnexpectedExpectedError) GetColumn() int      { return e.Column }
func (e *UnexpectedExpectedError) GetLength() int      { return e.Length }

type UnexpectedExpectedManyError struct {
	Unexpected lexer.TokenKind
	Expected   []lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedExpectedManyError) GetMessage() string {
	expectedKinds := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expectedKinds[i] = kind.String()
	}
	return fmt.Sprintf(
		"unexpected token: '%s', expected one of: '%s'",
		e.Unexpected.String(),
		strings.Join(expectedKinds, "', '"))
}

func (e *UnexpectedExpectedManyError) GetFileName() string { return e.FileName }
func (e *UnexpectedExpectedManyError) GetLine() int        { return e.Line }
func (e *UnexpectedExpectedManyError) GetColumn() int      { return e.Column }
func (e *UnexpectedExpectedManyError) GetLength() int      { return e.Length }

type UnexpectedError struct {
	Unexpected lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s'", e.Unexpected.String())
}

func (e *UnexpectedError) GetFileName() string { return e.FileName }
func (e *UnexpectedError) GetLine() int        { return e.Line }
func (e *UnexpectedError) GetColumn() int      { return e.Column }
func (e *UnexpectedError) GetLength() int      { return e.Length }
