package manifest

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest describes an expression chain as data: an ordered list of terms to
// fold onto a language.
type Manifest struct {
	Version string     `yaml:"version,omitempty"`
	Terms   []TermSpec `yaml:"terms"`
}

// TermSpec names one term, its construction args and the modifiers to apply
// to it, in order.
type TermSpec struct {
	Name      string         `yaml:"name"`
	Args      map[string]any `yaml:"args,omitempty"`
	Modifiers []ModifierSpec `yaml:"modifiers,omitempty"`
}

// ModifierSpec names one modifier and its args.
type ModifierSpec struct {
	Name string         `yaml:"name"`
	Args map[string]any `yaml:"args,omitempty"`
}

// Parse unmarshals a yaml manifest and validates it.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks the manifest structurally, collecting every problem rather
// than stopping at the first.
func (m Manifest) Validate() error {
	var errs []error

	if len(m.Terms) == 0 {
		errs = append(errs, errors.New("manifest must name at least one term"))
	}
	for i, term := range m.Terms {
		if term.Name == "" {
			errs = append(errs, fmt.Errorf("term %d: name is required", i))
		}
		for j, mod := range term.Modifiers {
			if mod.Name == "" {
				errs = append(errs, fmt.Errorf("term %d: modifier %d: name is required", i, j))
			}
		}
	}

	return errors.Join(errs...)
}
