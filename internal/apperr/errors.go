package apperr

import (
	"errors"
	"fmt"
)

// Kind is a stable, programmatic name for a failure class. Hosts may map it
// to their own messages instead of showing Error() verbatim.
type Kind int

const (
	UnknownKind Kind = iota
	ValidationKind
	LexKind
	ParseKind
	DepthKind
	UndefinedVariableKind
	TooManyVariablesKind
)

var kindNames = map[Kind]string{
	UnknownKind:           "unknown",
	ValidationKind:        "validation",
	LexKind:               "lex",
	ParseKind:             "parse",
	DepthKind:             "depth",
	UndefinedVariableKind: "undefined_variable",
	TooManyVariablesKind:  "too_many_variables",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := KindFromName(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindFromName converts a kind name back into a Kind.
func KindFromName(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return UnknownKind, fmt.Errorf("unknown error kind %q", s)
}

// Kinded is implemented by every error defined in this package.
type Kinded interface {
	error
	Kind() Kind
}

// KindOf returns the Kind of the first Kinded error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return UnknownKind
	}
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return UnknownKind
}

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Kind() Kind { return ValidationKind }

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// LexError reports input the lexer could not turn into a token.
// Pos is the zero-based character offset where the offending text starts.
type LexError struct {
	Pos     int
	Symbol  string
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Pos)
}

func (e *LexError) Kind() Kind { return LexKind }

// ParseError reports a token that does not fit the grammar at its position.
type ParseError struct {
	Pos     int
	Found   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s, found %s at position %d", e.Message, e.Found, e.Pos)
}

func (e *ParseError) Kind() Kind { return ParseKind }

// DepthError is raised when a tree grows deeper than the configured maximum.
// Pos is the offset of the operator that crossed the limit, or -1 for a tree
// that was not parsed from text.
type DepthError struct {
	Pos int
	Max int
}

func (e *DepthError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("expression nests deeper than %d levels", e.Max)
	}
	return fmt.Sprintf("expression nests deeper than %d levels at position %d", e.Max, e.Pos)
}

func (e *DepthError) Kind() Kind { return DepthKind }

type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("no value defined for variable '%s'", e.Name)
}

func (e *UndefinedVariableError) Kind() Kind { return UndefinedVariableKind }

type TooManyVariablesError struct {
	Count int
	Max   int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("formula has %d distinct variables, the truth table limit is %d", e.Count, e.Max)
}

func (e *TooManyVariablesError) Kind() Kind { return TooManyVariablesKind }
