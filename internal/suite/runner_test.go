package suite

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBasic(t *testing.T, cfg Config) *Result {
	t.Helper()
	s, err := LoadFromFile(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	res, err := NewRunner(analysis.New(analysis.DefaultLimits()), cfg).Run(context.Background(), s)
	require.NoError(t, err)
	return res
}

func TestRunner_Run(t *testing.T) {
	res := runBasic(t, Config{Runs: 3, CrossCheck: true})

	require.Len(t, res.Cases, 5)
	assert.Equal(t, 5, res.Passed())
	for _, c := range res.Cases {
		assert.True(t, c.Passed, c.ID)
		assert.NoError(t, c.Error, c.ID)
		assert.Equal(t, 3, c.Latency.SampleCount, c.ID)
	}
	assert.Equal(t, "Tautology", res.Cases[1].Got)
	assert.Equal(t, "parse", res.Cases[4].Got)
}

func TestRunner_Mismatch(t *testing.T) {
	s := &Suite{
		Name: "wrong",
		Cases: []Case{
			{ID: "a", Formula: "p1 | ~p1", Expect: classify.Contradiction},
			{ID: "b", Formula: "p1 & q1", Expect: classify.Tautology},
		},
	}

	res, err := NewRunner(analysis.New(analysis.DefaultLimits()), DefaultConfig()).Run(context.Background(), s)
	require.NoError(t, err)

	assert.False(t, res.Cases[0].Passed)
	assert.Equal(t, "Tautology", res.Cases[0].Got)
	assert.NoError(t, res.Cases[0].Error)

	assert.False(t, res.Cases[1].Passed)
	assert.Equal(t, "lex", res.Cases[1].Got)
	assert.Error(t, res.Cases[1].Error)
}

func TestRunner_Canceled(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewRunner(analysis.New(analysis.DefaultLimits()), DefaultConfig()).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate(t *testing.T) {
	res := &Result{
		SuiteName: "s",
		Cases: []CaseResult{
			{ID: "a", Passed: true, Latency: LatencyStats{Mean: time.Millisecond, SampleCount: 1}},
			{ID: "b", Passed: true, Latency: LatencyStats{Mean: 3 * time.Millisecond, SampleCount: 1}},
			{ID: "c", Passed: false},
		},
	}

	r := Generate(res)
	assert.Equal(t, 3, r.Summary.Total)
	assert.Equal(t, 2, r.Summary.Passed)
	assert.Equal(t, 1, r.Summary.Failed)
	assert.Equal(t, 0.6667, r.Summary.PassRate)
	assert.Equal(t, 2*time.Millisecond, r.Summary.Latency.Mean)
	assert.NotEmpty(t, r.RunID)
}

func TestWriteTable(t *testing.T) {
	r := Generate(runBasic(t, DefaultConfig()))

	var buf bytes.Buffer
	WriteTable(r, &buf)

	out := buf.String()
	assert.Contains(t, out, "=== Formula Suite: basic ===")
	assert.Contains(t, out, "weakening")
	assert.Contains(t, out, "Passed 5/5 (100.00%)")
	assert.NotContains(t, out, "FAIL")
}

func TestWriteJSON(t *testing.T) {
	r := Generate(runBasic(t, DefaultConfig()))
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, WriteJSON(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r.RunID, got.RunID)
	assert.Equal(t, "basic", got.Suite)
	assert.Len(t, got.Cases, 5)
}
