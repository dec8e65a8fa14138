package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"github.com/DjordjeVuckovic/propcheck/internal/sat"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestWriteTable(t *testing.T) {
	report, err := analysis.New(analysis.DefaultLimits()).Analyze(context.Background(), "p1 -> p2")
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable(&buf, report)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"p1", "p2", "result"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"F", "F", "T"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"T", "F", "F"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"F", "T", "T"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"T", "T", "T"}, strings.Fields(lines[5]))
}

func TestWriteReport(t *testing.T) {
	report, err := analysis.New(analysis.DefaultLimits()).Analyze(context.Background(), "p1 & ~p1")
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "Formula: p1 & ~p1")
	assert.Contains(t, out, "└── Not")
	assert.Contains(t, out, "Contradiction (0 of 2 rows true)")
}

func TestClassification(t *testing.T) {
	assert.Equal(t, "Tautology", Classification(classify.Tautology))
	assert.Equal(t, "Contingent", Classification(classify.Contingent))
	assert.Equal(t, "Unknown", Classification(classify.Unknown))
}

func TestWriteSat(t *testing.T) {
	var buf bytes.Buffer
	WriteSat(&buf, &analysis.SatReport{
		Variables:      []string{"p1", "p2"},
		Classification: classify.Contingent,
		Result: &sat.Result{
			Satisfiable:    true,
			Witness:        map[string]bool{"p1": true, "p2": false},
			Counterexample: map[string]bool{"p1": false, "p2": false},
		},
	})

	assert.Equal(t, "Contingent\nwitness:        p1=T p2=F\ncounterexample: p1=F p2=F\n", buf.String())
}
