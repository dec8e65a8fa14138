// Package eval computes the truth value of a formula tree under an
// assignment.
//
// And, Or and Implies evaluate their left operand first and skip the right
// one when the left already decides the result. A variable that only occurs
// on a skipped operand is therefore never looked up for that assignment, and
// its absence is not reported. Iff always evaluates both sides.
package eval

import (
	"fmt"

	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
	"github.com/DjordjeVuckovic/propcheck/internal/ast"
)

// Assignment maps variable names to truth values.
type Assignment map[string]bool

func Evaluate(e ast.Expr, a Assignment) (bool, error) {
	switch n := e.(type) {
	case *ast.Variable:
		value, ok := a[n.Name]
		if !ok {
			return false, &apperr.UndefinedVariableError{Name: n.Name}
		}
		return value, nil

	case *ast.Not:
		x, err := Evaluate(n.X, a)
		if err != nil {
			return false, err
		}
		return !x, nil

	case *ast.Grouped:
		return Evaluate(n.X, a)

	case *ast.And:
		l, err := Evaluate(n.Left, a)
		if err != nil || !l {
			return false, err
		}
		return Evaluate(n.Right, a)

	case *ast.Or:
		l, err := Evaluate(n.Left, a)
		if err != nil {
			return false, err
		}
		if l {
			return true, nil
		}
		return Evaluate(n.Right, a)

	case *ast.Implies:
		l, err := Evaluate(n.Left, a)
		if err != nil {
			return false, err
		}
		if !l {
			return true, nil
		}
		return Evaluate(n.Right, a)

	case *ast.Iff:
		l, err := Evaluate(n.Left, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.Right, a)
		if err != nil {
			return false, err
		}
		return l == r, nil

	default:
		return false, fmt.Errorf("unsupported expression %T", e)
	}
}
