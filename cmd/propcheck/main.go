package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
	"github.com/DjordjeVuckovic/propcheck/internal/render"
	"github.com/DjordjeVuckovic/propcheck/internal/suite"
	"github.com/DjordjeVuckovic/propcheck/pkg/config/env"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: env.LogLevel()})))

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("propcheck failed", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, w io.Writer) error {
	a := analysis.New(cfg.limits())

	switch cfg.Mode {
	case "parse":
		return runParse(a, cfg, w)
	case "table":
		return runClassify(ctx, a, cfg, w)
	case "classify":
		if cfg.Sat {
			return runSat(a, cfg, w)
		}
		return runClassify(ctx, a, cfg, w)
	case "eval":
		return runEval(a, cfg, w)
	case "suite":
		return runSuite(ctx, a, cfg, w)
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func runParse(a *analysis.Analyzer, cfg cliConfig, w io.Writer) error {
	parsed, err := a.Parse(cfg.Formula)
	if err != nil {
		return err
	}
	if cfg.Format == "json" {
		return writeJSON(w, parsed)
	}
	render.WriteTree(w, parsed)
	return nil
}

func runClassify(ctx context.Context, a *analysis.Analyzer, cfg cliConfig, w io.Writer) error {
	report, err := a.Analyze(ctx, cfg.Formula)
	if err != nil {
		return err
	}
	if cfg.Format == "json" {
		return writeJSON(w, report)
	}

	if cfg.Mode == "table" {
		render.WriteTable(w, report)
		return nil
	}
	render.WriteReport(w, report)
	return nil
}

func runSat(a *analysis.Analyzer, cfg cliConfig, w io.Writer) error {
	report, err := a.Satisfiability(cfg.Formula)
	if err != nil {
		return err
	}
	if cfg.Format == "json" {
		return writeJSON(w, report)
	}
	render.WriteSat(w, report)
	return nil
}

func runEval(a *analysis.Analyzer, cfg cliConfig, w io.Writer) error {
	assignment, err := analysis.ParseAssignment(cfg.Assign)
	if err != nil {
		return err
	}
	parsed, err := a.Parse(cfg.Formula)
	if err != nil {
		return err
	}

	result, err := a.Evaluate(parsed.AST.Expr, assignment)
	if err != nil {
		return err
	}
	if cfg.Format == "json" {
		return writeJSON(w, map[string]bool{"result": result})
	}
	_, err = fmt.Fprintln(w, result)
	return err
}

func runSuite(ctx context.Context, a *analysis.Analyzer, cfg cliConfig, w io.Writer) error {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		return err
	}

	r := suite.NewRunner(a, suite.Config{
		WarmupRuns: cfg.Warmup,
		Runs:       max(cfg.Runs, 1),
		CrossCheck: cfg.Sat,
	})
	result, err := r.Run(ctx, s)
	if err != nil {
		return fmt.Errorf("run suite %q: %w", s.Name, err)
	}

	rpt := suite.Generate(result)
	if cfg.Format == "json" {
		if err := writeJSON(w, rpt); err != nil {
			return err
		}
	} else {
		suite.WriteTable(rpt, w)
	}

	if cfg.Output != "" {
		if err := suite.WriteJSON(rpt, cfg.Output); err != nil {
			return err
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if rpt.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d cases failed", rpt.Summary.Failed, rpt.Summary.Total)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
