package suite

import (
	"github.com/DjordjeVuckovic/propcheck/internal/apperr"
	"github.com/DjordjeVuckovic/propcheck/internal/classify"
)

// Suite is a named list of formulas with the outcome each should produce.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

// Case expects either a classification or an error of a given kind, never
// both.
type Case struct {
	ID          string                  `yaml:"id"`
	Description string                  `yaml:"description,omitempty"`
	Formula     string                  `yaml:"formula"`
	Expect      classify.Classification `yaml:"expect,omitempty"`
	ErrorKind   apperr.Kind             `yaml:"error_kind,omitempty"`
}

func (c *Case) ExpectsError() bool {
	return c.ErrorKind != apperr.UnknownKind
}

// Expected is the classification or error kind name the case asks for.
func (c *Case) Expected() string {
	if c.ExpectsError() {
		return c.ErrorKind.String()
	}
	return c.Expect.String()
}
