package storage

import (
	"fmt"
	"os"

	"github.com/valter-silva-au/bookmark-brain/pkg/models"
	"gopkg.in/yaml.v3"
)

// RuleStore defines the interface for loading classification rule sets
// from YAML files. A missing file yields an empty rule set so callers can
// fall back to the built-in defaults.
type RuleStore interface {
	Load(path string) (*models.RuleSet, error)
	Save(path string, rules *models.RuleSet) error
}

type fileRuleStore struct{}

// NewRuleStore creates a RuleStore backed by YAML files on disk.
func NewRuleStore() RuleStore {
	return &fileRuleStore{}
}

func (s *fileRuleStore) Load(path string) (*models.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.RuleSet{}, nil
		}
		return nil, fmt.Errorf("loading rules from %s: %w", path, err)
	}

	var rules models.RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules from %s: %w", path, err)
	}
	return &rules, nil
}

func (s *fileRuleStore) Save(path string, rules *models.RuleSet) error {
	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("saving rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("saving rules to %s: %w", path, err)
	}
	return nil
}
