package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of selection rules
type Loader struct {
	path string
}

// NewLoader creates a new rules loader. An empty path yields the built-in rules.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the rules file, applies defaults and validates the result
func (l *Loader) Load() (*Rules, error) {
	if l.path == "" {
		return Default(), nil
	}

	rules, err := l.loadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", l.path, err)
	}

	if err := l.validate(rules); err != nil {
		return nil, fmt.Errorf("invalid rules %s: %w", l.path, err)
	}

	slog.Debug("Loaded selection rules", "path", l.path, "keywords", rules.TermCount())

	return rules, nil
}

// loadFile decodes the file over the built-in rules, so absent keys keep their
// defaults and explicit values, zero included, replace them. A keywords list
// that is present replaces the default list as a whole.
func (l *Loader) loadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	rules := Default()
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// "keywords:" with no value decodes to nil
	if rules.Keywords == nil {
		rules.Keywords = Default().Keywords
	}

	return rules, nil
}

func (l *Loader) validate(rules *Rules) error {
	t := rules.Thresholds
	if t.ReplyMinLength < 0 || t.MinLength < 0 || t.LongFormLength < 0 || t.KeywordLength < 0 {
		return fmt.Errorf("length thresholds must be non-negative")
	}
	if t.ViralLikes < 0 || t.ViralRetweets < 0 || t.KeywordLikes < 0 || t.KeywordRetweets < 0 {
		return fmt.Errorf("engagement thresholds must be non-negative")
	}

	if rules.Document.Limit < 0 {
		return fmt.Errorf("document limit must be non-negative")
	}

	for i, group := range rules.Keywords {
		if strings.TrimSpace(group.Category) == "" {
			return fmt.Errorf("keyword group at index %d must have a category", i)
		}
		if len(group.Terms) == 0 {
			return fmt.Errorf("keyword group %q must have at least one term", group.Category)
		}
		for j, term := range group.Terms {
			if strings.TrimSpace(term) == "" {
				return fmt.Errorf("keyword group %q has an empty term at index %d", group.Category, j)
			}
		}
	}

	return nil
}
