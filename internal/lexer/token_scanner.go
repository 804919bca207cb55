package lexer

type TokenScanner interface {
	Read() *Token
	Unread() *Token
	Peek() *Token
	HasTokens() bool
}

// SimpleTokenScanner walks a token slice that ends with EOF. Reading past
// the end keeps returning the EOF token.
type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		tokens = append(tokens, Token{Kind: EOF, Value: EOF.String()})
	}

	return &SimpleTokenScanner{
		tokens: tokens,
		pos:    -1,
	}
}

// NewTokenScannerWithoutComments drops comment tokens before scanning.
func NewTokenScannerWithoutComments(tokens []Token) TokenScanner {
	sanitizedTokens := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if token.IsComment() {
			continue
		}

		sanitizedTokens = append(sanitizedTokens, token)
	}

	return NewTokenScanner(sanitizedTokens)
}

func (s *SimpleTokenScanner) Read() *Token {
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}

	return &s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Unread() *Token {
	if s.pos > 0 {
		s.pos--
	}

	return &s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Peek() *Token {
	if s.pos < len(s.tokens)-1 {
		return &s.tokens[s.pos+1]
	}

	return &s.tokens[len(s.tokens)-1]
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < 0 || s.tokens[s.pos].Kind != EOF
}
