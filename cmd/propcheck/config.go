package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
)

type cliConfig struct {
	Mode      string
	Formula   string
	Assign    string
	MaxVars   int
	MaxDepth  int
	Format    string
	SuitePath string
	Output    string
	Runs      int
	Warmup    int
	Sat       bool
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	cfg := cliConfig{}
	defaults := analysis.DefaultLimits()

	fs := flag.NewFlagSet("propcheck", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Mode, "mode", "classify", "Run mode: parse, table, classify, eval, or suite")
	fs.StringVar(&cfg.Formula, "formula", "", "Formula to analyze, e.g. \"(p1 | p2) -> p3\"")
	fs.StringVar(&cfg.Assign, "assign", "", "Assignment for eval mode, e.g. p1=true,p2=false")
	fs.IntVar(&cfg.MaxVars, "max-vars", defaults.MaxVariables, "Maximum distinct variables for a truth table")
	fs.IntVar(&cfg.MaxDepth, "max-depth", defaults.MaxDepth, "Maximum depth of the formula tree")
	fs.StringVar(&cfg.Format, "format", "text", "Output format: text or json")
	fs.StringVar(&cfg.SuitePath, "suite", "suites/classic.yaml", "Path to formula suite YAML (suite mode)")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the suite JSON report")
	fs.IntVar(&cfg.Runs, "runs", 1, "Number of measured iterations per suite case")
	fs.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs per suite case")
	fs.BoolVar(&cfg.Sat, "sat", false, "Classify with the SAT solver instead of a truth table; in suite mode, cross-check every case")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c cliConfig) validate() error {
	switch c.Mode {
	case "parse", "table", "classify", "eval":
		if c.Formula == "" {
			return fmt.Errorf("mode %s requires -formula", c.Mode)
		}
	case "suite":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	if c.Mode == "eval" && c.Assign == "" {
		return fmt.Errorf("mode eval requires -assign")
	}
	if c.Sat && c.Mode != "classify" && c.Mode != "suite" {
		return fmt.Errorf("-sat only applies to classify and suite modes, not %s", c.Mode)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return c.limits().Validate()
}

func (c cliConfig) limits() analysis.Limits {
	return analysis.Limits{MaxVariables: c.MaxVars, MaxDepth: c.MaxDepth}
}
