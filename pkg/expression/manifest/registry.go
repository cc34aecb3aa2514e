package manifest

import (
	"errors"
	"fmt"

	"github.com/material-motion/material-motion-expression-go/pkg/expression"
)

// TermBuilder applies one named term, including its modifiers, to a language
// and returns the next forward handle.
type TermBuilder[L expression.Language[L]] func(language L, spec TermSpec) (L, error)

// Registry maps term names onto a concrete vocabulary.
type Registry[L expression.Language[L]] struct {
	builders map[string]TermBuilder[L]
}

func NewRegistry[L expression.Language[L]]() *Registry[L] {
	return &Registry[L]{builders: make(map[string]TermBuilder[L])}
}

// Register binds a term name to its builder. Empty names, nil builders and
// duplicate registrations are rejected.
func (r *Registry[L]) Register(name string, build TermBuilder[L]) error {
	if name == "" {
		return errors.New("term name is required")
	}
	if build == nil {
		return fmt.Errorf("term %q: builder is required", name)
	}
	if _, exists := r.builders[name]; exists {
		return fmt.Errorf("term %q: already registered", name)
	}

	r.builders[name] = build
	return nil
}

// Build folds the manifest's terms onto language, left to right, and returns
// the final forward handle. The language passed in is returned unchanged on
// error.
func (r *Registry[L]) Build(language L, m Manifest) (L, error) {
	if err := m.Validate(); err != nil {
		return language, err
	}

	next := language
	for _, spec := range m.Terms {
		build, ok := r.builders[spec.Name]
		if !ok {
			return language, fmt.Errorf("unknown term %q", spec.Name)
		}

		out, err := build(next, spec)
		if err != nil {
			return language, fmt.Errorf("term %q: %w", spec.Name, err)
		}
		next = out
	}

	return next, nil
}
