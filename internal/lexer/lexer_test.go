package lexer

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/sanity-io/litter"

	"github.com/kievzenit/coolfront/internal/compiler_errors"
)

type lexFailed struct{}

func tokenize(t *testing.T, src string) ([]Token, []compiler_errors.CompilerError) {
	t.Helper()

	var out bytes.Buffer
	eh := compiler_errors.NewErrorHandlerWithExit(&out, func() { panic(lexFailed{}) })

	var tokens []Token
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(lexFailed); !ok {
					panic(r)
				}
			}
		}()
		tokens = NewLexer("test.cl", []byte(src), eh).Tokenize()
	}()

	return tokens, eh.Errors()
}

func kinds(tokens []Token) []TokenKind {
	result := make([]TokenKind, len(tokens))
	for i, token := range tokens {
		result[i] = token.Kind
	}
	return result
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []TokenKind
	}{
		{
			name: "class header",
			src:  "class Main inherits IO {",
			want: []TokenKind{CLASS, TYPEID, INHERITS, TYPEID, LBRACE, EOF},
		},
		{
			name: "operators",
			src:  "<- <= < => = + - * / ~ @ . , : ; ( ) { }",
			want: []TokenKind{
				ASSIGN, LEQ, LT, RESULTS, EQ, PLUS, MINUS, ASTERISK, SLASH, TILDE,
				AT, DOT, COMMA, COLON, SEMICOLON, LPAREN, RPAREN, LBRACE, RBRACE, EOF,
			},
		},
		{
			name: "operators without spaces",
			src:  "x<-y<=z<1",
			want: []TokenKind{IDENT, ASSIGN, IDENT, LEQ, IDENT, LT, INT, EOF},
		},
		{
			name: "keywords ignore case",
			src:  "CLASS If fI wHiLe LOOP pool Let IN case OF esac NEW isVoid NoT tHeN ElSe InHeRiTs",
			want: []TokenKind{
				CLASS, IF, FI, WHILE, LOOP, POOL, LET, IN, CASE, OF, ESAC, NEW, ISVOID, NOT, THEN, ELSE, INHERITS, EOF,
			},
		},
		{
			name: "identifiers",
			src:  "x_1 Foo_Bar self SELF_TYPE a1b2",
			want: []TokenKind{IDENT, TYPEID, IDENT, TYPEID, IDENT, EOF},
		},
		{
			name: "booleans start lower case",
			src:  "true fALSE True False",
			want: []TokenKind{BOOL, BOOL, TYPEID, TYPEID, EOF},
		},
		{
			name: "comments are kept",
			src:  "x -- hi\n(* a (* b *) c *) y",
			want: []TokenKind{IDENT, ONELINE_COMMENT, MULTILINE_COMMENT, IDENT, EOF},
		},
		{
			name: "comment at end of input",
			src:  "x --",
			want: []TokenKind{IDENT, ONELINE_COMMENT, EOF},
		},
		{
			name: "empty",
			src:  "",
			want: []TokenKind{EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.src)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %s", litter.Sdump(errs))
			}

			if got := kinds(tokens); !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenize_Values(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{src: "42 007", want: []string{"42", "007", "EOF"}},
		{src: `"a\"b\n"`, want: []string{`a\"b\n`, "EOF"}},
		{src: `""`, want: []string{"", "EOF"}},
		{src: "x -- hi\n", want: []string{"x", " hi", "EOF"}},
		{src: "(* a (* b *) c *)", want: []string{" a (* b *) c ", "EOF"}},
		{src: "Class tRUE", want: []string{"Class", "tRUE", "EOF"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, errs := tokenize(t, tt.src)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %s", litter.Sdump(errs))
			}

			got := make([]string, len(tokens))
			for i, token := range tokens {
				got[i] = token.Value
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("values = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenize_Metadata(t *testing.T) {
	src := "class A {\n  x : Int;\n}"

	tokens, errs := tokenize(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %s", litter.Sdump(errs))
	}

	want := []Metadata{
		{Line: 1, Column: 1, Length: 5}, // class
		{Line: 1, Column: 7, Length: 1}, // A
		{Line: 1, Column: 9, Length: 1}, // {
		{Line: 2, Column: 3, Length: 1}, // x
		{Line: 2, Column: 5, Length: 1}, // :
		{Line: 2, Column: 7, Length: 3}, // Int
		{Line: 2, Column: 10, Length: 1},
		{Line: 3, Column: 1, Length: 1},
		{Line: 3, Column: 2, Length: 0}, // EOF
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %s", len(tokens), len(want), litter.Sdump(tokens))
	}

	for i := range want {
		if tokens[i].Metadata != want[i] {
			t.Errorf("token %d (%s): metadata = %+v, want %+v", i, tokens[i].String(), tokens[i].Metadata, want[i])
		}
	}
}

func TestTokenize_TwoCharOperatorLength(t *testing.T) {
	tokens, _ := tokenize(t, "a <- b => c <= d")

	for _, token := range tokens {
		switch token.Kind {
		case ASSIGN, RESULTS, LEQ:
			if token.Metadata.Length != 2 {
				t.Errorf("%s: length = %d, want 2", token.Kind, token.Metadata.Length)
			}
		}
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
		line    int
		column  int
	}{
		{name: "unterminated string", src: "x <- \"abc\ndef\"", message: "unterminated string constant", line: 1, column: 6},
		{name: "eof in string", src: "\"abc", message: "EOF in string constant", line: 1, column: 1},
		{name: "null in string", src: "\"a\x00b\"", message: "string contains null character", line: 1, column: 1},
		{name: "eof in comment", src: "x\n(* never closed", message: "EOF in comment", line: 2, column: 1},
		{name: "unmatched comment end", src: "x *)", message: "unmatched *)", line: 1, column: 3},
		{name: "unexpected character", src: "x # y", message: "unexpected character: '#'", line: 1, column: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := tokenize(t, tt.src)
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %s", len(errs), litter.Sdump(errs))
			}

			err, ok := errs[0].(*LexerError)
			if !ok {
				t.Fatalf("error is %T, want *LexerError", errs[0])
			}
			if err.GetMessage() != tt.message {
				t.Errorf("message = %q, want %q", err.GetMessage(), tt.message)
			}
			if err.GetLine() != tt.line || err.GetColumn() != tt.column {
				t.Errorf("position = %d:%d, want %d:%d", err.GetLine(), err.GetColumn(), tt.line, tt.column)
			}
			if err.GetFileName() != "test.cl" {
				t.Errorf("file name = %q, want %q", err.GetFileName(), "test.cl")
			}
		})
	}
}

func TestTokenize_FailNowReports(t *testing.T) {
	var out bytes.Buffer
	eh := compiler_errors.NewErrorHandlerWithExit(&out, func() { panic(lexFailed{}) })

	func() {
		defer func() { _ = recover() }()
		NewLexer("bad.cl", []byte("#"), eh).Tokenize()
	}()

	report := out.String()
	if !strings.HasPrefix(report, "Build failed with errors:\n") {
		t.Errorf("report does not start with the failure header: %q", report)
	}
	if !strings.Contains(report, "ERROR: bad.cl:1:1: unexpected character: '#'") {
		t.Errorf("report is missing the error line: %q", report)
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{Token{Kind: IDENT, Value: "x"}, "IDENT(x)"},
		{Token{Kind: INT, Value: "7"}, "INT(7)"},
		{Token{Kind: BOOL, Value: "true"}, "BOOL(true)"},
		{Token{Kind: PLUS, Value: "+"}, "PLUS()"},
		{Token{Kind: CLASS, Value: "class"}, "CLASS()"},
	}

	for _, tt := range tests {
		if got := tt.token.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTokenKind_StringPanicsOnIllegalKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()

	_ = TokenKind(1000).String()
}
