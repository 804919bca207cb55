package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

// PositionedError is a CompilerError that can point at the offending source.
type PositionedError interface {
	CompilerError
	GetFileName() string
	GetLine() int
	GetColumn() int
	GetLength() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Errors() []CompilerError
	FailNow()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer

	exit func()
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return NewErrorHandlerWithExit(outputWriter, func() { os.Exit(1) })
}

// NewErrorHandlerWithExit returns a handler that calls exit instead of
// terminating the process once the errors have been reported.
func NewErrorHandlerWithExit(outputWriter io.Writer, exit func()) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
		exit:   exit,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

func (eh *CompilerErrorHandler) FailNow() {
	fmt.Fprintln(eh.writer, "Build failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", Format(err))
	}

	eh.exit()
	panic("unreachable")
}

// Format renders err as "file:line:col: message" when it carries a position.
func Format(err CompilerError) string {
	positioned, ok := err.(PositionedError)
	if !ok || positioned.GetLine() == 0 {
		return err.GetMessage()
	}

	if positioned.GetFileName() == "" {
		return fmt.Sprintf("%d:%d: %s", positioned.GetLine(), positioned.GetColumn(), err.GetMessage())
	}

	return fmt.Sprintf(
		"%s:%d:%d: %s",
		positioned.GetFileName(),
		positioned.GetLine(),
		positioned.GetColumn(),
		err.GetMessage())
}
