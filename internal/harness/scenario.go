package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance run.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Setup holds statements executed before the run, typically DDL and
	// inserts that seed the in-memory database.
	Setup []string `yaml:"setup,omitempty"`

	// SQL is the first positional argument, passed through untrimmed.
	SQL string `yaml:"sql"`

	// Field is the second positional argument.
	Field string `yaml:"field"`

	// Prefix overrides the column prefix. Empty means "participant".
	Prefix string `yaml:"prefix,omitempty"`

	// QualifiedColumns reports un-aliased columns as table.column.
	QualifiedColumns bool `yaml:"qualified_columns,omitempty"`

	// Existing, when set, is written to the result file before the run.
	Existing *string `yaml:"existing,omitempty"`

	// Expect describes the expected outcome.
	Expect Expect `yaml:"expect"`
}

// Expect specifies the expected outcome of a run. Exactly one of Output
// and Error must be set.
type Expect struct {
	// Output is the expected content of the result file.
	Output *string `yaml:"output,omitempty"`

	// Error is a substring the run error must contain. A failed run must
	// leave the result file exactly as Existing left it.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// FindScenarioFiles lists the .yaml and .yml files under dir whose base
// name matches filter. An empty filter matches everything.
func FindScenarioFiles(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if strings.TrimSpace(s.SQL) == "" {
		return fmt.Errorf("sql is required")
	}

	hasOutput := s.Expect.Output != nil
	hasError := s.Expect.Error != ""
	if hasOutput == hasError {
		return fmt.Errorf("expect must set exactly one of output or error")
	}

	return nil
}
