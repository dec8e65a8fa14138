// Package sat decides satisfiability and validity of a formula with a SAT
// solver instead of a truth table, so it is not bounded by the number of
// variables.
//
// Every variable is handed to the solver, which makes the check total: there
// is no notion of an unassigned variable here.
package sat

import (
	"fmt"

	"github.com/DjordjeVuckovic/propcheck/internal/ast"
	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"github.com/DjordjeVuckovic/propcheck/internal/eval"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

type Result struct {
	Satisfiable bool `json:"satisfiable"`
	Valid       bool `json:"valid"`
	// Witness makes the formula true; nil when it is unsatisfiable.
	Witness eval.Assignment `json:"witness,omitempty"`
	// Counterexample makes the formula false; nil when it is valid.
	Counterexample eval.Assignment `json:"counterexample,omitempty"`
}

func (r *Result) Classification() classify.Classification {
	switch {
	case r.Valid:
		return classify.Tautology
	case !r.Satisfiable:
		return classify.Contradiction
	default:
		return classify.Contingent
	}
}

// Check solves e twice: once for a model of e and once for a model of ~e.
func Check(e ast.Expr) (*Result, error) {
	b := newCircuitBuilder()
	f, err := b.build(e)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	res.Satisfiable, res.Witness = b.solve(f)

	var falsifiable bool
	falsifiable, res.Counterexample = b.solve(f.Not())
	res.Valid = !falsifiable

	return res, nil
}

// circuitBuilder translates a formula tree into a gini logic circuit.
type circuitBuilder struct {
	c     *logic.C
	vars  map[string]z.Lit
	order []string
}

func newCircuitBuilder() *circuitBuilder {
	return &circuitBuilder{
		c:    logic.NewC(),
		vars: make(map[string]z.Lit),
	}
}

func (b *circuitBuilder) build(e ast.Expr) (z.Lit, error) {
	switch n := e.(type) {
	case *ast.Variable:
		return b.variable(n.Name), nil
	case *ast.Not:
		x, err := b.build(n.X)
		if err != nil {
			return b.c.F, err
		}
		return x.Not(), nil
	case *ast.Grouped:
		return b.build(n.X)
	}

	l, r, ok := ast.Operands(e)
	if !ok {
		return b.c.F, fmt.Errorf("unsupported expression %T", e)
	}
	left, err := b.build(l)
	if err != nil {
		return b.c.F, err
	}
	right, err := b.build(r)
	if err != nil {
		return b.c.F, err
	}

	switch e.(type) {
	case *ast.And:
		return b.c.Ands(left, right), nil
	case *ast.Or:
		return b.c.Ors(left, right), nil
	case *ast.Implies:
		return b.c.Ors(left.Not(), right), nil
	default: // Iff
		return b.c.Ors(b.c.Ands(left, right), b.c.Ands(left.Not(), right.Not())), nil
	}
}

// variable returns the literal for name, creating it on first use.
func (b *circuitBuilder) variable(name string) z.Lit {
	if lit, ok := b.vars[name]; ok {
		return lit
	}
	lit := b.c.Lit()
	b.vars[name] = lit
	b.order = append(b.order, name)
	return lit
}

// solve reports whether f has a model and returns it over the formula's
// variables.
func (b *circuitBuilder) solve(f z.Lit) (bool, eval.Assignment) {
	g := gini.New()
	b.c.ToCnf(g)
	// The circuit folds trivial gates such as p1 & ~p1 away, which can leave
	// a variable in no clause at all. Declare each one so the model covers it.
	for _, name := range b.order {
		lit := b.vars[name]
		g.Add(lit)
		g.Add(lit.Not())
		g.Add(0)
	}
	g.Assume(f)

	if g.Solve() != 1 {
		return false, nil
	}

	model := make(eval.Assignment, len(b.order))
	for _, name := range b.order {
		model[name] = g.Value(b.vars[name])
	}
	return true, model
}
