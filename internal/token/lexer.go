package token

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
)

const (
	impliesSymbol = "->"
	iffSymbol     = "<->"
)

var variablePattern = regexp.MustCompile(`^p[0-9]+$`)

// IsVariableName reports whether name is a propositional variable: a lower
// case 'p' followed by one or more ASCII digits.
func IsVariableName(name string) bool {
	return variablePattern.MatchString(name)
}

// Lexer turns formula text into tokens on demand.
// Example: Input: `(p1 & p2) -> ~p3`
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// NextToken skips whitespace and returns the next token. A failed call
// consumes the offending text, so a following call resumes after it.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: EOF, Pos: len(l.input)}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch == '~':
		return l.single(NOT), nil
	case ch == '&':
		return l.single(AND), nil
	case ch == '|':
		return l.single(OR), nil
	case ch == '(':
		return l.single(LPAREN), nil
	case ch == ')':
		return l.single(RPAREN), nil
	case ch == '-':
		return l.symbol(IMPLIES, impliesSymbol)
	case ch == '<':
		return l.symbol(IFF, iffSymbol)
	case isWordChar(ch):
		return l.readVariable()
	default:
		l.pos++
		return Token{}, &apperr.LexError{
			Pos:     start,
			Symbol:  string(ch),
			Message: fmt.Sprintf("unexpected character '%c'", ch),
		}
	}
}

func (l *Lexer) single(t Type) Token {
	tok := Token{Type: t, Value: string(l.input[l.pos]), Pos: l.pos}
	l.pos++
	return tok
}

// symbol matches a multi-character operator by fixed-length lookahead.
func (l *Lexer) symbol(t Type, want string) (Token, error) {
	start := l.pos
	end := min(start+len(want), len(l.input))

	got := string(l.input[start:end])
	l.pos = end
	if got != want {
		return Token{}, &apperr.LexError{
			Pos:     start,
			Symbol:  got,
			Message: fmt.Sprintf("malformed symbol '%s', expected '%s'", got, want),
		}
	}

	return Token{Type: t, Value: want, Pos: start}, nil
}

func (l *Lexer) readVariable() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		l.pos++
	}

	word := string(l.input[start:l.pos])
	if !IsVariableName(word) {
		return Token{}, &apperr.LexError{
			Pos:     start,
			Symbol:  word,
			Message: fmt.Sprintf("'%s' is not a propositional variable", word),
		}
	}

	return Token{Type: VARIABLE, Value: word, Pos: start}, nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

func isWordChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
