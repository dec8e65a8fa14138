package token

import "fmt"

type Type int

const (
	EOF Type = iota
	VARIABLE
	NOT
	AND
	OR
	IMPLIES
	IFF
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case VARIABLE:
		return "VARIABLE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case IMPLIES:
		return "IMPLIES"
	case IFF:
		return "IFF"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type, literal value and the
// character offset it starts at.
type Token struct {
	Type  Type
	Value string
	Pos   int
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case VARIABLE:
		return fmt.Sprintf("VARIABLE(%s)", t.Value)
	default:
		return fmt.Sprintf("%s '%s'", t.Type, t.Value)
	}
}
