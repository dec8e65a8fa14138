package suite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
)

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	WarmupRuns int
	Runs       int
	// CrossCheck confirms every classification with the SAT solver.
	CrossCheck bool
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}

type CaseResult struct {
	ID       string
	Formula  string
	Expected string
	Got      string
	Passed   bool
	Latency  LatencyStats
	// Error is set when the case failed for a reason other than a mismatch,
	// or when an unexpected error was raised.
	Error error
}

type Result struct {
	SuiteName string
	Config    Config
	Cases     []CaseResult
}

func (r *Result) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Passed {
			n++
		}
	}
	return n
}

type Runner struct {
	analyzer *analysis.Analyzer
	config   Config
}

func NewRunner(analyzer *analysis.Analyzer, cfg Config) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = DefaultRuns
	}
	return &Runner{analyzer: analyzer, config: cfg}
}

func (r *Runner) Run(ctx context.Context, s *Suite) (*Result, error) {
	res := &Result{
		SuiteName: s.Name,
		Config:    r.config,
		Cases:     make([]CaseResult, 0, len(s.Cases)),
	}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := &s.Cases[i]
		cr := r.runCase(ctx, c)
		if !cr.Passed {
			slog.Warn("suite case failed", "case", c.ID, "expected", cr.Expected, "got", cr.Got, "error", cr.Error)
		}
		res.Cases = append(res.Cases, cr)
	}

	return res, nil
}

func (r *Runner) runCase(ctx context.Context, c *Case) CaseResult {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = r.analyzer.Analyze(ctx, c.Formula)
	}

	var (
		latencies = make([]time.Duration, 0, r.config.Runs)
		report    *analysis.Report
		err       error
	)
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		report, err = r.analyzer.Analyze(ctx, c.Formula)
		latencies = append(latencies, time.Since(start))
	}

	cr := CaseResult{
		ID:       c.ID,
		Formula:  c.Formula,
		Expected: c.Expected(),
		Latency:  computeLatencyStats(latencies),
	}

	if err != nil {
		kind := apperr.KindOf(err)
		cr.Got = kind.String()
		cr.Passed = c.ExpectsError() && kind == c.ErrorKind
		if !c.ExpectsError() {
			cr.Error = err
		}
		return cr
	}

	cr.Got = report.Classification.String()
	cr.Passed = !c.ExpectsError() && report.Classification == c.Expect

	if cr.Passed && r.config.CrossCheck {
		if _, err := r.analyzer.CrossCheck(ctx, c.Formula); err != nil {
			cr.Passed = false
			cr.Error = fmt.Errorf("cross check: %w", err)
		}
	}

	return cr
}
