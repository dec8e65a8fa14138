package classify

import (
	"fmt"

	"github.com/DjordjeVuckovic/propcheck/internal/ast"
	"github.com/DjordjeVuckovic/propcheck/internal/eval"
)

type Classification int

const (
	Unknown Classification = iota
	// Tautology is true on every row.
	Tautology
	// Contradiction is true on no row.
	Contradiction
	// Contingent is true on some rows and false on others.
	Contingent
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "Tautology"
	case Contradiction:
		return "Contradiction"
	case Contingent:
		return "Contingent"
	default:
		return "Unknown"
	}
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse converts a classification name such as "Tautology" into its value.
func Parse(s string) (Classification, error) {
	switch s {
	case "Tautology":
		return Tautology, nil
	case "Contradiction":
		return Contradiction, nil
	case "Contingent":
		return Contingent, nil
	default:
		return Unknown, fmt.Errorf("unknown classification %q", s)
	}
}

// FromCount classifies a formula that is true on trueRows of totalRows rows.
func FromCount(trueRows, totalRows int) Classification {
	switch {
	case trueRows == 0:
		return Contradiction
	case trueRows == totalRows:
		return Tautology
	default:
		return Contingent
	}
}

// Tally counts the rows a formula is true on, one row at a time.
type Tally struct {
	True  int
	Total int
}

// Add evaluates e on row i and records the result.
func (t *Tally) Add(e ast.Expr, i int, row eval.Assignment) (bool, error) {
	ok, err := eval.Evaluate(e, row)
	if err != nil {
		return false, fmt.Errorf("row %d: %w", i, err)
	}
	t.Total++
	if ok {
		t.True++
	}
	return ok, nil
}

func (t Tally) Classification() Classification {
	return FromCount(t.True, t.Total)
}

// Count evaluates e on every row and returns how many rows are true. The
// first failing row aborts the count.
func Count(e ast.Expr, rows []eval.Assignment) (int, error) {
	var t Tally
	for i, row := range rows {
		if _, err := t.Add(e, i, row); err != nil {
			return 0, err
		}
	}
	return t.True, nil
}

func Classify(e ast.Expr, rows []eval.Assignment) (Classification, error) {
	trueRows, err := Count(e, rows)
	if err != nil {
		return Unknown, err
	}
	return FromCount(trueRows, len(rows)), nil
}
