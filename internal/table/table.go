// Package table enumerates every assignment over an ordered list of variables.
package table

import (
	"fmt"

	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
	"github.com/DjordjeVuckovic/propcheck/internal/eval"
)

const (
	// DefaultMaxVariables keeps a table at 16M rows or fewer.
	DefaultMaxVariables = 24
	// MaxVariablesCeiling is the largest bound a caller may configure.
	MaxVariablesCeiling = 30
)

// Build returns the 2^k assignments over names. In row i the variable at
// position j is assigned bit j of i, so the first variable toggles fastest.
// Names must be distinct; limit <= 0 selects DefaultMaxVariables.
func Build(names []string, limit int) ([]eval.Assignment, error) {
	if err := check(names, limit); err != nil {
		return nil, err
	}

	size := 1 << len(names)
	rows := make([]eval.Assignment, size)
	for i := 0; i < size; i++ {
		row := make(eval.Assignment, len(names))
		fill(row, names, i)
		rows[i] = row
	}

	return rows, nil
}

// Each visits the rows Build would return, in the same order, without keeping
// them. The assignment passed to fn is reused between calls, so fn must copy
// it to retain it. An error from fn stops the walk and is returned.
func Each(names []string, limit int, fn func(i int, row eval.Assignment) error) error {
	if err := check(names, limit); err != nil {
		return err
	}

	size := 1 << len(names)
	row := make(eval.Assignment, len(names))
	for i := 0; i < size; i++ {
		fill(row, names, i)
		if err := fn(i, row); err != nil {
			return err
		}
	}
	return nil
}

func fill(row eval.Assignment, names []string, i int) {
	for j, name := range names {
		row[name] = (i>>j)&1 == 1
	}
}

func check(names []string, limit int) error {
	if limit <= 0 {
		limit = DefaultMaxVariables
	}
	if limit > MaxVariablesCeiling {
		limit = MaxVariablesCeiling
	}
	if len(names) > limit {
		return &apperr.TooManyVariablesError{Count: len(names), Max: limit}
	}
	return checkDistinct(names)
}

func checkDistinct(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return apperr.NewValidation(fmt.Sprintf("variable '%s' is listed twice", name))
		}
		seen[name] = struct{}{}
	}
	return nil
}
