// Package analysis wires the parser, truth table, classifier and SAT check
// into the entry points a host calls.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
	"github.com/DjordjeVuckovic/propcheck/internal/ast"
	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"github.com/DjordjeVuckovic/propcheck/internal/eval"
	"github.com/DjordjeVuckovic/propcheck/internal/parser"
	"github.com/DjordjeVuckovic/propcheck/internal/sat"
	"github.com/DjordjeVuckovic/propcheck/internal/table"
	"github.com/DjordjeVuckovic/propcheck/internal/token"
	"github.com/google/uuid"
)

type Analyzer struct {
	limits Limits
}

func New(limits Limits) *Analyzer {
	return &Analyzer{limits: limits}
}

// Parsed is a formula together with its tree and ordered variables.
type Parsed struct {
	Formula   string   `json:"formula"`
	AST       ast.Node `json:"ast"`
	Variables []string `json:"variables"`
	Tree      string   `json:"tree"`
}

// Row is one truth table row with the formula's value on it.
type Row struct {
	Assignment eval.Assignment `json:"assignment"`
	Result     bool            `json:"result"`
}

type Report struct {
	ID uuid.UUID `json:"id"`
	Parsed
	Classification classify.Classification `json:"classification"`
	TrueRows       int                     `json:"true_rows"`
	Rows           []Row                   `json:"rows"`
}

func (a *Analyzer) Parse(formula string) (*Parsed, error) {
	expr, vars, err := parser.Parse(formula, parser.WithMaxDepth(a.limits.MaxDepth))
	if err != nil {
		return nil, err
	}

	if vars == nil {
		vars = []string{}
	}
	return &Parsed{
		Formula:   formula,
		AST:       ast.Node{Expr: expr},
		Variables: vars,
		Tree:      ast.Tree(expr),
	}, nil
}

func (a *Analyzer) Table(variables []string) ([]eval.Assignment, error) {
	if err := checkNames(variables); err != nil {
		return nil, err
	}
	return table.Build(variables, a.limits.MaxVariables)
}

// Classify evaluates expr on every row over variables and classifies it.
// Rows are visited one at a time and never kept.
func (a *Analyzer) Classify(ctx context.Context, expr ast.Expr, variables []string) (classify.Classification, error) {
	if err := a.checkDepth(expr); err != nil {
		return classify.Unknown, err
	}
	if err := checkNames(variables); err != nil {
		return classify.Unknown, err
	}

	var tally classify.Tally
	err := table.Each(variables, a.limits.MaxVariables, func(i int, row eval.Assignment) error {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		_, err := tally.Add(expr, i, row)
		return err
	})
	if err != nil {
		return classify.Unknown, err
	}
	return tally.Classification(), nil
}

func (a *Analyzer) Evaluate(expr ast.Expr, assignment eval.Assignment) (bool, error) {
	if err := a.checkDepth(expr); err != nil {
		return false, err
	}
	return eval.Evaluate(expr, assignment)
}

// Analyze runs the whole pipeline on formula and fills in the result column
// of every row.
func (a *Analyzer) Analyze(ctx context.Context, formula string) (*Report, error) {
	parsed, err := a.Parse(formula)
	if err != nil {
		return nil, err
	}
	return a.analyze(ctx, parsed)
}

// AnalyzeExpr is Analyze for a tree that did not come from the parser, such
// as one decoded from JSON.
func (a *Analyzer) AnalyzeExpr(ctx context.Context, expr ast.Expr) (*Report, error) {
	if err := a.checkDepth(expr); err != nil {
		return nil, err
	}
	return a.analyze(ctx, &Parsed{
		AST:       ast.Node{Expr: expr},
		Variables: ast.Variables(expr),
		Tree:      ast.Tree(expr),
	})
}

func (a *Analyzer) analyze(ctx context.Context, parsed *Parsed) (*Report, error) {
	rows, err := a.Table(parsed.Variables)
	if err != nil {
		return nil, err
	}

	expr := parsed.AST.Expr
	report := &Report{
		ID:     uuid.New(),
		Parsed: *parsed,
		Rows:   make([]Row, 0, len(rows)),
	}

	var tally classify.Tally
	for i, row := range rows {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		ok, err := tally.Add(expr, i, row)
		if err != nil {
			return nil, err
		}
		report.Rows = append(report.Rows, Row{Assignment: row, Result: ok})
	}
	report.TrueRows = tally.True
	report.Classification = tally.Classification()

	slog.Debug("Formula analyzed",
		"id", report.ID,
		"variables", len(parsed.Variables),
		"rows", len(rows),
		"classification", report.Classification)

	return report, nil
}

// SatReport is the SAT solver's verdict on a parsed formula.
type SatReport struct {
	Variables      []string                `json:"variables"`
	Classification classify.Classification `json:"classification"`
	*sat.Result
}

// Satisfiability checks formula with the SAT solver. It is not bounded by
// MaxVariables.
func (a *Analyzer) Satisfiability(formula string) (*SatReport, error) {
	parsed, err := a.Parse(formula)
	if err != nil {
		return nil, err
	}
	return satisfiability(parsed)
}

func satisfiability(parsed *Parsed) (*SatReport, error) {
	res, err := sat.Check(parsed.AST.Expr)
	if err != nil {
		return nil, err
	}
	return &SatReport{
		Variables:      parsed.Variables,
		Classification: res.Classification(),
		Result:         res,
	}, nil
}

// CrossCheck classifies formula both by truth table and by SAT and reports
// an error if they disagree.
func (a *Analyzer) CrossCheck(ctx context.Context, formula string) (classify.Classification, error) {
	parsed, err := a.Parse(formula)
	if err != nil {
		return classify.Unknown, err
	}

	byTable, err := a.Classify(ctx, parsed.AST.Expr, parsed.Variables)
	if err != nil {
		return classify.Unknown, err
	}

	report, err := satisfiability(parsed)
	if err != nil {
		return classify.Unknown, err
	}

	if bySAT := report.Classification; bySAT != byTable {
		return classify.Unknown, fmt.Errorf("truth table says %s but SAT check says %s", byTable, bySAT)
	}
	return byTable, nil
}

// checkDepth bounds trees that did not come from the parser, such as ones
// decoded from JSON.
func (a *Analyzer) checkDepth(expr ast.Expr) error {
	if expr == nil {
		return apperr.NewValidation("expression is required")
	}
	if ast.Depth(expr) > a.limits.MaxDepth {
		return &apperr.DepthError{Pos: -1, Max: a.limits.MaxDepth}
	}
	return nil
}

func checkNames(variables []string) error {
	for _, name := range variables {
		if !token.IsVariableName(name) {
			return apperr.NewValidation(fmt.Sprintf("'%s' is not a propositional variable", name))
		}
	}
	return nil
}

// ParseAssignment reads "p1=true,p2=0" style assignments. Accepted values
// are true/false, t/f, 1/0 in any case.
func ParseAssignment(s string) (eval.Assignment, error) {
	out := make(eval.Assignment)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, raw, ok := strings.Cut(part, "=")
		if !ok {
			return nil, apperr.NewValidation(fmt.Sprintf("assignment %q must look like p1=true", part))
		}
		name = strings.TrimSpace(name)
		if !token.IsVariableName(name) {
			return nil, apperr.NewValidation(fmt.Sprintf("'%s' is not a propositional variable", name))
		}

		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "t", "1":
			out[name] = true
		case "false", "f", "0":
			out[name] = false
		default:
			return nil, apperr.NewValidation(fmt.Sprintf("'%s' is not a truth value", raw))
		}
	}
	return out, nil
}
