package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
)

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("duplicate variable")
	err := apperr.NewValidationWrap("invalid table request", inner)

	if err.Error() != "invalid table request: duplicate variable" {
		t.Errorf("expected 'invalid table request: duplicate variable', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestLexError_Message(t *testing.T) {
	err := &apperr.LexError{Pos: 3, Symbol: "*", Message: "unexpected character '*'"}

	if err.Error() != "unexpected character '*' at position 3" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestParseError_Message(t *testing.T) {
	err := &apperr.ParseError{Pos: 8, Found: "EOF", Message: "expected ')'"}

	if err.Error() != "expected ')', found EOF at position 8" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestDepthError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *apperr.DepthError
		want string
	}{
		{name: "parsed", err: &apperr.DepthError{Pos: 12, Max: 4}, want: "expression nests deeper than 4 levels at position 12"},
		{name: "decoded tree", err: &apperr.DepthError{Pos: -1, Max: 4}, want: "expression nests deeper than 4 levels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestKindOf_SurvivesFmtWrapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{name: "lex", err: &apperr.LexError{Symbol: "q1"}, want: apperr.LexKind},
		{name: "parse", err: &apperr.ParseError{Found: "RPAREN"}, want: apperr.ParseKind},
		{name: "depth", err: &apperr.DepthError{Max: 4}, want: apperr.DepthKind},
		{name: "undefined", err: &apperr.UndefinedVariableError{Name: "p9"}, want: apperr.UndefinedVariableKind},
		{name: "too many", err: &apperr.TooManyVariablesError{Count: 40, Max: 24}, want: apperr.TooManyVariablesKind},
		{name: "validation", err: apperr.NewValidation("empty formula"), want: apperr.ValidationKind},
		{name: "plain", err: fmt.Errorf("disk full"), want: apperr.UnknownKind},
		{name: "nil", err: nil, want: apperr.UnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.err != nil {
				err = fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", tt.err))
			}
			if got := apperr.KindOf(err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUndefinedVariableError_As(t *testing.T) {
	wrapped := fmt.Errorf("row 3: %w", &apperr.UndefinedVariableError{Name: "p2"})

	var ue *apperr.UndefinedVariableError
	if !errors.As(wrapped, &ue) {
		t.Fatal("errors.As should find UndefinedVariableError through wrapping")
	}
	if ue.Name != "p2" {
		t.Errorf("expected 'p2', got %q", ue.Name)
	}
}

func TestKindFromName_RoundTrip(t *testing.T) {
	for _, k := range []apperr.Kind{apperr.LexKind, apperr.ParseKind, apperr.DepthKind, apperr.UndefinedVariableKind, apperr.TooManyVariablesKind} {
		got, err := apperr.KindFromName(k.String())
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", k, err)
		}
		if got != k {
			t.Errorf("expected %v, got %v", k, got)
		}
	}

	if _, err := apperr.KindFromName("segfault"); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestStatusOf(t *testing.T) {
	if apperr.StatusOf(apperr.LexKind) != http.StatusBadRequest {
		t.Error("lex errors should be bad requests")
	}
	if apperr.StatusOf(apperr.UndefinedVariableKind) != http.StatusUnprocessableEntity {
		t.Error("undefined variables should be unprocessable")
	}
	if apperr.StatusOf(apperr.TooManyVariablesKind) != http.StatusRequestEntityTooLarge {
		t.Error("too many variables should be request entity too large")
	}
	if apperr.StatusOf(apperr.UnknownKind) != http.StatusInternalServerError {
		t.Error("unknown errors should be internal")
	}
}
