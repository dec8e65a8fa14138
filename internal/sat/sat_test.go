package sat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"github.com/DjordjeVuckovic/propcheck/internal/eval"
	"github.com/DjordjeVuckovic/propcheck/internal/parser"
	"github.com/DjordjeVuckovic/propcheck/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Classification(t *testing.T) {
	tests := []struct {
		input string
		want  classify.Classification
	}{
		{input: "p1 & ~p1", want: classify.Contradiction},
		{input: "(p1 & p2) -> (p1 | p2)", want: classify.Tautology},
		{input: "(p1 | p2) & p3", want: classify.Contingent},
		{input: "p1 | ~p1", want: classify.Tautology},
		{input: "(p1 -> p2) & p1 & ~p2", want: classify.Contradiction},
		{input: "(p1 <-> p2) <-> (p2 <-> p1)", want: classify.Tautology},
		{input: "p1 <-> ~p1", want: classify.Contradiction},
		{input: "p1", want: classify.Contingent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, _, err := parser.Parse(tt.input)
			require.NoError(t, err)

			res, err := Check(e)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Classification())
		})
	}
}

func TestCheck_ModelsAreGenuine(t *testing.T) {
	for _, input := range []string{"(p1 | p2) & p3", "p1 -> p2", "~(p1 <-> p2) & p3", "p1 | ~p1", "p1 & ~p1"} {
		t.Run(input, func(t *testing.T) {
			e, vars, err := parser.Parse(input)
			require.NoError(t, err)

			res, err := Check(e)
			require.NoError(t, err)

			if res.Satisfiable {
				require.Len(t, res.Witness, len(vars))
				got, err := eval.Evaluate(e, res.Witness)
				require.NoError(t, err)
				assert.True(t, got, "witness %v", res.Witness)
			} else {
				assert.Nil(t, res.Witness)
			}

			if !res.Valid {
				require.Len(t, res.Counterexample, len(vars))
				got, err := eval.Evaluate(e, res.Counterexample)
				require.NoError(t, err)
				assert.False(t, got, "counterexample %v", res.Counterexample)
			} else {
				assert.Nil(t, res.Counterexample)
			}
		})
	}
}

func TestCheck_AgreesWithTruthTable(t *testing.T) {
	inputs := []string{
		"p1 -> (p2 -> p1)",
		"(p1 -> p2) -> ((p2 -> p3) -> (p1 -> p3))",
		"~(p1 & p2) <-> (~p1 | ~p2)",
		"(p1 | p2) & (~p1 | p3) & (~p2 | ~p3)",
		"p1 & p2 & p3 & ~(p1 | p4)",
	}

	for _, input := range inputs {
		e, vars, err := parser.Parse(input)
		require.NoError(t, err)
		rows, err := table.Build(vars, 0)
		require.NoError(t, err)

		want, err := classify.Classify(e, rows)
		require.NoError(t, err)

		res, err := Check(e)
		require.NoError(t, err)
		assert.Equal(t, want, res.Classification(), input)
	}
}

func TestCheck_BeyondTruthTableLimit(t *testing.T) {
	// p1 & p2 & ... & p40, far beyond what a truth table may enumerate.
	parts := make([]string, 40)
	for i := range parts {
		parts[i] = fmt.Sprintf("p%d", i+1)
	}
	e, vars, err := parser.Parse(strings.Join(parts, " & "))
	require.NoError(t, err)
	require.Greater(t, len(vars), table.DefaultMaxVariables)

	res, err := Check(e)
	require.NoError(t, err)
	assert.Equal(t, classify.Contingent, res.Classification())
	for _, name := range vars {
		assert.True(t, res.Witness[name])
	}
}
