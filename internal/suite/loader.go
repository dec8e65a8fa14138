package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/propcheck/internal/classify"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("case id %q is used twice", c.ID)
		}
		seen[c.ID] = struct{}{}

		hasExpect := c.Expect != classify.Unknown
		if hasExpect == c.ExpectsError() {
			return fmt.Errorf("case %q must set exactly one of expect and error_kind", c.ID)
		}
	}
	return nil
}
