package analysis

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/propcheck/internal/parser"
	"github.com/DjordjeVuckovic/propcheck/internal/table"
)

// Limits bounds the work a single request may cause.
type Limits struct {
	MaxVariables int
	MaxDepth     int
}

func DefaultLimits() Limits {
	return Limits{
		MaxVariables: table.DefaultMaxVariables,
		MaxDepth:     parser.DefaultMaxDepth,
	}
}

// HostMaxVariables bounds tables served by a long-running host, where every
// row of a report is held in memory until the response is written.
const HostMaxVariables = 16

// HostLimits are the defaults for the HTTP API.
func HostLimits() Limits {
	return Limits{
		MaxVariables: HostMaxVariables,
		MaxDepth:     parser.DefaultMaxDepth,
	}
}

// LoadLimits reads MAX_VARIABLES and MAX_DEPTH from the environment, keeping
// defaults for unset values.
func LoadLimits(defaults Limits) (Limits, error) {
	limits := defaults

	if raw := os.Getenv("MAX_VARIABLES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return limits, fmt.Errorf("MAX_VARIABLES must be a number: %w", err)
		}
		limits.MaxVariables = n
	}

	if raw := os.Getenv("MAX_DEPTH"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return limits, fmt.Errorf("MAX_DEPTH must be a number: %w", err)
		}
		limits.MaxDepth = n
	}

	if err := limits.Validate(); err != nil {
		return limits, err
	}

	slog.Debug("Analysis limits loaded", "maxVariables", limits.MaxVariables, "maxDepth", limits.MaxDepth)
	return limits, nil
}

func (l Limits) Validate() error {
	if l.MaxVariables < 0 || l.MaxVariables > table.MaxVariablesCeiling {
		return fmt.Errorf("max variables must be between 0 and %d, got %d", table.MaxVariablesCeiling, l.MaxVariables)
	}
	if l.MaxDepth < 1 {
		return fmt.Errorf("max depth must be positive, got %d", l.MaxDepth)
	}
	return nil
}
