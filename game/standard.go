package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NewStandardRules returns the canonical variant: hops up to five squares,
// displacement toward home and any exited token wins.
func NewStandardRules() Rules {
	return Rules{
		MaxHop:       MaxHop,
		Displacement: DisplaceHome,
		Terminal:     AnyTokenExits,
	}
}

// LoadRules reads a YAML rule file. Keys missing from the file keep their
// standard values.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	return DecodeRules(data)
}

func DecodeRules(data []byte) (Rules, error) {
	rules := NewStandardRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to decode rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}
