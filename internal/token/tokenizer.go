package token

// Source hands out tokens one at a time. Once EOF has been returned every
// further call returns EOF again.
type Source interface {
	NextToken() (Token, error)
}

// Tokenize drains a Lexer over input and returns every token up to and
// including EOF. It stops at the first lexical error.
func Tokenize(input string) ([]Token, error) {
	lx := NewLexer(input)

	var tokens []Token
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
