package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// DefaultRulesFile is looked up in the working directory when no rule file
// is given.
const DefaultRulesFile = ".trimsrc.yaml"

// RuleStore loads and saves rule sets.
type RuleStore interface {
	// Load reads the rule set at path. An empty path falls back to
	// DefaultRulesFile when it exists, and to an empty rule set otherwise.
	Load(path string) (m.RuleSet, error)
	Save(path string, rules m.RuleSet) error
}

// LocalRuleStore reads YAML rule files from disk.
type LocalRuleStore struct{}

// NewRuleStore constructs a RuleStore implementation.
func NewRuleStore() RuleStore {
	return &LocalRuleStore{}
}

// Load decodes a YAML rule file. Unknown keys are rejected so typos in rule
// names do not silently disable a rule.
func (s *LocalRuleStore) Load(path string) (m.RuleSet, error) {
	if path == "" {
		if _, err := os.Stat(DefaultRulesFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return m.RuleSet{}, nil
			}

			return m.RuleSet{}, err
		}

		path = DefaultRulesFile
	}

	// #nosec G304 - rule file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return m.RuleSet{}, err
	}

	return DecodeRuleSet(data)
}

// Save writes rules as YAML.
func (s *LocalRuleStore) Save(path string, rules m.RuleSet) error {
	if path == "" {
		path = DefaultRulesFile
	}

	data, err := EncodeRuleSet(rules)
	if err != nil {
		return err
	}

	// #nosec G306 - rule files are plain project configuration
	return os.WriteFile(path, data, 0o644)
}

// DecodeRuleSet parses a YAML rule set.
func DecodeRuleSet(data []byte) (m.RuleSet, error) {
	var rules m.RuleSet

	if len(bytes.TrimSpace(data)) == 0 {
		return rules, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&rules); err != nil {
		return m.RuleSet{}, fmt.Errorf("decode rules: %w", err)
	}

	return rules, nil
}

// EncodeRuleSet renders rules as YAML.
func EncodeRuleSet(rules m.RuleSet) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(rules); err != nil {
		return nil, fmt.Errorf("encode rules: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
