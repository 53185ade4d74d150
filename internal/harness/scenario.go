package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: two sorted inputs, a view, a
// comparator, and assertions over the produced output.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// View selects the output shape: "merge" for the flat value sequence,
	// "join" for one rendered row per alignment step.
	View string `yaml:"view"`

	// Compare names the comparator: "natural" (default), "length", or
	// "collate:<bcp47>".
	Compare string `yaml:"compare,omitempty"`

	// Left and Right are the two input sequences. Both must already be
	// sorted under the named comparator.
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`

	// Assertions validate the produced output.
	// Supported types: sorted, count, contains, output.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one property of the scenario output.
type Assertion struct {
	// Type specifies the assertion type:
	// - "sorted": output values are non-decreasing under the comparator
	// - "count": output has exactly Count entries
	// - "contains": output includes Value
	// - "output": output equals Lines exactly, in order
	Type string `yaml:"type"`

	// Count is the expected number of output entries (used by count).
	Count int `yaml:"count,omitempty"`

	// Value is the expected entry (used by contains).
	Value string `yaml:"value,omitempty"`

	// Lines is the full expected output (used by output).
	Lines []string `yaml:"lines,omitempty"`
}

// View constants.
const (
	ViewMerge = "merge"
	ViewJoin  = "join"
)

// Assertion type constants.
const (
	AssertSorted   = "sorted"
	AssertCount    = "count"
	AssertContains = "contains"
	AssertOutput   = "output"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected to catch typos like "assertion:" for "assertions:".
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.View != ViewMerge && s.View != ViewJoin {
		return fmt.Errorf("view must be %q or %q, got %q", ViewMerge, ViewJoin, s.View)
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case AssertSorted:
			if s.View != ViewMerge {
				return fmt.Errorf("assertion %d: sorted applies to the merge view only", i)
			}
		case AssertCount, AssertContains, AssertOutput:
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
	}
	return nil
}
