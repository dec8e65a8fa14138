// Package main Propcheck API
// @title Propcheck API
// @version 1.0
// @description Parses propositional formulas, builds truth tables and classifies formulas as tautologies, contradictions or contingent.
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/propcheck/internal/analysis"
	"github.com/DjordjeVuckovic/propcheck/internal/api/router"
	"github.com/DjordjeVuckovic/propcheck/internal/api/server"
	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"github.com/DjordjeVuckovic/propcheck/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/propcheck/pkg/server"
	"github.com/labstack/echo/v4"
)

// healthFormula is a fixed tautology; the analyzer is healthy while it still
// classifies it as one.
const healthFormula = "p1 | ~p1"

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(env.LogLevel())

	limits, err := analysis.LoadLimits(analysis.HostLimits())
	if err != nil {
		slog.Error("Failed to load analysis limits", "error", err)
		os.Exit(1)
	}
	analyzer := analysis.New(limits)

	healthChecker := pkgserver.NewFuncHealthChecker(func(ctx context.Context) error {
		parsed, err := analyzer.Parse(healthFormula)
		if err != nil {
			return err
		}
		got, err := analyzer.Classify(ctx, parsed.AST.Expr, parsed.Variables)
		if err != nil {
			return err
		}
		if got != classify.Tautology {
			return fmt.Errorf("health formula classified as %s", got)
		}
		return nil
	})

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Propcheck API is running")
	})

	router.NewAnalysisRouter(s.Echo, analyzer).Bind()

	slog.Info("Analysis limits", "maxVariables", limits.MaxVariables, "maxDepth", limits.MaxDepth)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
