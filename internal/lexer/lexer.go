package lexer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kievzenit/coolfront/internal/compiler_errors"
)

type LexerError struct {
	Message string

	FileName string
	Line     int
	Column   int
	Length   int
}

func newUnexpectedError(unexpected byte) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", string(unexpected)),
	}
}

func newMessageError(message string) *LexerError {
	return &LexerError{
		Message: message,
	}
}

func (e *LexerError) GetMessage() string  { return e.Message }
func (e *LexerError) GetFileName() string { return e.FileName }
func (e *LexerError) GetLine() int        { return e.Line }
func (e *LexerError) GetColumn() int      { return e.Column }
func (e *LexerError) GetLength() int      { return e.Length }

type Lexer struct {
	fileName string

	buf []byte
	pos int

	lineStarts []int

	eh compiler_errors.ErrorHandler
}

func NewLexer(fileName string, buf []byte, eh compiler_errors.ErrorHandler) *Lexer {
	lineStarts := []int{0}
	for i, c := range buf {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &Lexer{
		fileName: fileName,

		buf: buf,
		pos: 0,

		lineStarts: lineStarts,

		eh: eh,
	}
}

// Tokenize returns every token of the buffer, comments included, terminated
// by a single EOF token.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)

	for l.hasChars() {
		start := l.pos

		switch {
		case l.isCurrSkippable():

		case l.isCurrDigit():
			tokens = append(tokens, l.located(l.processNumber(), start))

		case l.isCurrLetter():
			tokens = append(tokens, l.located(l.processIdentifier(), start))

		case l.read() == '"':
			tokens = append(tokens, l.located(l.processStringLiteral(start), start))

		case l.isCurrPunctuation():
			tokens = append(tokens, l.located(l.processPunctuation(start), start))

		default:
			l.fail(start, newUnexpectedError(l.read()))
		}

		l.advance()
	}

	eof := Token{
		Kind:  EOF,
		Value: EOF.String(),
	}
	eof.Metadata = l.metadata(len(l.buf), len(l.buf))
	tokens = append(tokens, eof)

	return tokens
}

func (l *Lexer) located(token Token, start int) Token {
	end := l.pos + 1
	if end > len(l.buf) {
		end = len(l.buf)
	}

	token.Metadata = l.metadata(start, end)
	return token
}

func (l *Lexer) metadata(start, end int) Metadata {
	line := sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > start
	})

	return Metadata{
		Line:   line,
		Column: start - l.lineStarts[line-1] + 1,
		Length: end - start,
	}
}

func (l *Lexer) fail(start int, err *LexerError) {
	md := l.metadata(start, start+1)
	err.FileName = l.fileName
	err.Line = md.Line
	err.Column = md.Column
	err.Length = md.Length

	l.eh.AddError(err)
	l.eh.FailNow()
}

func (l *Lexer) isCurrLetter() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z')
}

func (l *Lexer) isCurrIdentifier() bool {
	return l.isCurrLetter() || l.isCurrDigit() || l.read() == '_'
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '~', '<', '=', '(', ')', '{', '}', ':', ';', ',', '.', '@':
		return true
	}
	return false
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrIdentifier() {
			l.unread()
			break
		}

		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	identifier := string(identifierBuf)

	lower := strings.ToLower(identifier)
	if kind, ok := keywords[lower]; ok {
		return Token{
			Kind:  kind,
			Value: identifier,
		}
	}

	// true and false must start with a lower case letter, the rest is case-insensitive
	if (lower == "true" || lower == "false") && identifier[0] == lower[0] {
		return Token{
			Kind:  BOOL,
			Value: identifier,
		}
	}

	if identifier[0] >= 'A' && identifier[0] <= 'Z' {
		return Token{
			Kind:  TYPEID,
			Value: identifier,
		}
	}

	return Token{
		Kind:  IDENT,
		Value: identifier,
	}
}

func (l *Lexer) processNumber() Token {
	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrDigit() {
			l.unread()
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}

	return Token{
		Kind:  INT,
		Value: string(numberBuf),
	}
}

// processStringLiteral keeps the raw text between the quotes, escapes
// included.
func (l *Lexer) processStringLiteral(start int) Token {
	l.advance()

	stringBuf := make([]byte, 0)
	var foundClosingQuote bool
	for l.hasChars() {
		switch l.read() {
		case '"':
			foundClosingQuote = true
		case '\n':
			l.fail(start, newMessageError("unterminated string constant"))
		case 0:
			l.fail(start, newMessageError("string contains null character"))
		case '\\':
			stringBuf = append(stringBuf, l.read())
			l.advance()
			if !l.hasChars() {
				continue
			}
		}

		if foundClosingQuote {
			break
		}

		stringBuf = append(stringBuf, l.read())
		l.advance()
	}

	if !foundClosingQuote {
		l.fail(start, newMessageError("EOF in string constant"))
	}

	return Token{
		Kind:  STRING,
		Value: string(stringBuf),
	}
}

func (l *Lexer) processOneLineComment() Token {
	content := make([]byte, 0)

	l.advance()
	for l.hasChars() {
		if l.read() == '\n' {
			l.unread()
			break
		}

		content = append(content, l.read())
		l.advance()
	}

	return Token{
		Kind:  ONELINE_COMMENT,
		Value: string(content),
	}
}

// processMultiLineComment handles nested (* *) comments.
func (l *Lexer) processMultiLineComment(start int) Token {
	content := make([]byte, 0)
	depth := 1

	l.advance()
	for l.hasChars() {
		if l.read() == '(' && l.hasNext() && l.next() == '*' {
			depth++
			content = append(content, '(', '*')
			l.advance()
			l.advance()
			continue
		}

		if l.read() == '*' && l.hasNext() && l.next() == ')' {
			depth--
			l.advance()
			if depth == 0 {
				break
			}

			content = append(content, '*', ')')
			l.advance()
			continue
		}

		content = append(content, l.read())
		l.advance()
	}

	if depth > 0 {
		l.fail(start, newMessageError("EOF in comment"))
	}

	return Token{
		Kind:  MULTILINE_COMMENT,
		Value: string(content),
	}
}

func (l *Lexer) processMinus() Token {
	l.advance()
	if l.hasChars() && l.read() == '-' {
		return l.processOneLineComment()
	}

	l.unread()
	return Token{
		Kind:  MINUS,
		Value: "-",
	}
}

func (l *Lexer) processAsterisk(start int) Token {
	l.advance()
	if l.hasChars() && l.read() == ')' {
		l.fail(start, newMessageError("unmatched *)"))
	}

	l.unread()
	return Token{
		Kind:  ASTERISK,
		Value: "*",
	}
}

func (l *Lexer) processLessThan() Token {
	l.advance()
	if !l.hasChars() {
		l.unread()
		return Token{
			Kind:  LT,
			Value: "<",
		}
	}

	if l.read() == '-' {
		return Token{
			Kind:  ASSIGN,
			Value: "<-",
		}
	}

	if l.read() == '=' {
		return Token{
			Kind:  LEQ,
			Value: "<=",
		}
	}

	l.unread()
	return Token{
		Kind:  LT,
		Value: "<",
	}
}

func (l *Lexer) processEquals() Token {
	l.advance()
	if l.hasChars() && l.read() == '>' {
		return Token{
			Kind:  RESULTS,
			Value: "=>",
		}
	}

	l.unread()
	return Token{
		Kind:  EQ,
		Value: "=",
	}
}

func (l *Lexer) processLeftParen(start int) Token {
	l.advance()
	if l.hasChars() && l.read() == '*' {
		return l.processMultiLineComment(start)
	}

	l.unread()
	return Token{
		Kind:  LPAREN,
		Value: "(",
	}
}

func (l *Lexer) processPunctuation(start int) Token {
	switch l.read() {
	case '+':
		return Token{
			Kind:  PLUS,
			Value: "+",
		}
	case '-':
		return l.processMinus()
	case '*':
		return l.processAsterisk(start)
	case '/':
		return Token{
			Kind:  SLASH,
			Value: "/",
		}
	case '~':
		return Token{
			Kind:  TILDE,
			Value: "~",
		}
	case '<':
		return l.processLessThan()
	case '=':
		return l.processEquals()
	case '(':
		return l.processLeftParen(start)
	case ')':
		return Token{
			Kind:  RPAREN,
			Value: ")",
		}
	case '{':
		return Token{
			Kind:  LBRACE,
			Value: "{",
		}
	case '}':
		return Token{
			Kind:  RBRACE,
			Value: "}",
		}
	case ':':
		return Token{
			Kind:  COLON,
			Value: ":",
		}
	case ';':
		return Token{
			Kind:  SEMICOLON,
			Value: ";",
		}
	case ',':
		return Token{
			Kind:  COMMA,
			Value: ",",
		}
	case '.':
		return Token{
			Kind:  DOT,
			Value: ".",
		}
	case '@':
		return Token{
			Kind:  AT,
			Value: "@",
		}
	}

	panic("unreachable")
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) hasNext() bool {
	return l.pos+1 < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) next() byte { return l.buf[l.pos+1] }
func (l *Lexer) read() byte { return l.buf[l.pos] }
func (l *Lexer) unread()    { l.pos-- }
