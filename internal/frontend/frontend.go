// Package frontend runs one compilation unit through the whole front end:
// source text to tokens, tokens to a parse tree, parse tree to an AST.
package frontend

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kievzenit/coolfront/internal/ast"
	"github.com/kievzenit/coolfront/internal/ast_builder"
	"github.com/kievzenit/coolfront/internal/compiler_errors"
	"github.com/kievzenit/coolfront/internal/cst"
	"github.com/kievzenit/coolfront/internal/lexer"
	"github.com/kievzenit/coolfront/internal/parser"
)

// ErrSyntax is matched by every error caused by the user's source text.
var ErrSyntax = errors.New("syntax error")

type SyntaxError struct {
	Errors []compiler_errors.CompilerError
}

func (e *SyntaxError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, compiler_errors.Format(err))
	}

	return fmt.Sprintf("%s: %s", ErrSyntax, strings.Join(messages, "; "))
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Unit is the result of compiling one source file.
type Unit struct {
	FileName string
	Tokens   []lexer.Token
	Tree     *cst.Tree
	Program  *ast.Program
}

type Frontend struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Frontend {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Frontend{
		logger: logger,
	}
}

func (f *Frontend) CompileFile(path string) (*Unit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %q: %w", path, err)
	}

	return f.Compile(path, src)
}

func (f *Frontend) Compile(fileName string, src []byte) (*Unit, error) {
	unit := &Unit{FileName: fileName}

	err := f.guard(func(eh compiler_errors.ErrorHandler) {
		unit.Tokens = lexer.NewLexer(fileName, src, eh).Tokenize()
		f.logger.Debug("lexed", "file", fileName, "tokens", len(unit.Tokens))

		scanner := lexer.NewTokenScannerWithoutComments(unit.Tokens)
		unit.Tree = parser.NewParser(fileName, scanner, eh).Parse()
		f.logger.Debug("parsed", "file", fileName, "unit", unit.Tree.ID, "contexts", unit.Tree.Len())
	})
	if err != nil {
		f.logger.Debug("syntax errors", "file", fileName, "error", err)
		return nil, err
	}

	program, err := ast_builder.Build(unit.Tree)
	if err != nil {
		f.logger.Error("malformed parse tree", "file", fileName, "error", err)
		return nil, fmt.Errorf("failed to build ast for %q: %w", fileName, err)
	}
	unit.Program = program

	f.logger.Debug("built ast", "file", fileName, "unit", unit.Tree.ID, "classes", len(program.Classes()))
	return unit, nil
}

// Tokens lexes src, comments included.
func (f *Frontend) Tokens(fileName string, src []byte) ([]lexer.Token, error) {
	var tokens []lexer.Token
	err := f.guard(func(eh compiler_errors.ErrorHandler) {
		tokens = lexer.NewLexer(fileName, src, eh).Tokenize()
	})
	if err != nil {
		return nil, err
	}

	f.logger.Debug("lexed", "file", fileName, "tokens", len(tokens))
	return tokens, nil
}

// abort is what the error handler's exit hook panics with.
type abort struct{}

// guard runs fn with an error handler that unwinds back here instead of
// exiting the process, and turns the collected errors into a *SyntaxError.
func (f *Frontend) guard(fn func(eh compiler_errors.ErrorHandler)) (err error) {
	eh := compiler_errors.NewErrorHandlerWithExit(io.Discard, func() { panic(abort{}) })

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(abort); !ok {
			panic(r)
		}

		err = &SyntaxError{Errors: eh.Errors()}
	}()

	fn(eh)

	if eh.HasErrors() {
		return &SyntaxError{Errors: eh.Errors()}
	}

	return nil
}
