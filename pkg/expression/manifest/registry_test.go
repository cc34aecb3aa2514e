package manifest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/material-motion/material-motion-expression-go/pkg/expression"
)

// label fixture: a one-word vocabulary over string intentions.

type labelLanguage struct {
	work expression.Work
}

func (l labelLanguage) Chain(work expression.Work) labelLanguage {
	return labelLanguage{work: work}
}

func (l labelLanguage) Intentions() []expression.Intention {
	if l.work == nil {
		return nil
	}
	return l.work()
}

type labelTerm struct {
	expression.Term[labelTerm, labelLanguage]
}

func chainLabel(l labelLanguage, work expression.Work) labelTerm {
	return labelTerm{expression.ChainTerm(l, chainLabel, work)}
}

func (t labelTerm) suffixed(suffix string) labelTerm {
	return t.Modify(func(in []expression.Intention) []expression.Intention {
		out := make([]expression.Intention, len(in))
		for i, raw := range in {
			out[i] = raw.(string) + suffix
		}
		return out
	})
}

func buildLabel(language labelLanguage, spec TermSpec) (labelLanguage, error) {
	value, ok := spec.Args["value"].(string)
	if !ok {
		return language, errors.New("label: string arg \"value\" is required")
	}

	term := labelTerm{expression.NewTerm(language, chainLabel, nil, value)}
	for _, mod := range spec.Modifiers {
		switch mod.Name {
		case "suffix":
			with, _ := mod.Args["with"].(string)
			term = term.suffixed(with)
		default:
			return language, fmt.Errorf("label: unknown modifier %q", mod.Name)
		}
	}
	return term.And, nil
}

func labelRegistry(t *testing.T) *Registry[labelLanguage] {
	t.Helper()

	r := NewRegistry[labelLanguage]()
	if err := r.Register("label", buildLabel); err != nil {
		t.Fatalf("register: %v", err)
	}
	return r
}

func TestRegister_Rejections(t *testing.T) {
	t.Parallel()

	r := labelRegistry(t)

	if err := r.Register("", buildLabel); err == nil {
		t.Fatal("expected empty name to be rejected")
	}
	if err := r.Register("nil", nil); err == nil {
		t.Fatal("expected nil builder to be rejected")
	}
	if err := r.Register("label", buildLabel); err == nil {
		t.Fatal("expected duplicate registration to be rejected")
	}
}

func TestBuild_FoldsTermsInOrder(t *testing.T) {
	t.Parallel()

	r := labelRegistry(t)
	m := Manifest{Terms: []TermSpec{
		{Name: "label", Args: map[string]any{"value": "a"}},
		{Name: "label", Args: map[string]any{"value": "b"},
			Modifiers: []ModifierSpec{{Name: "suffix", Args: map[string]any{"with": "!"}}}},
	}}

	language, err := r.Build(labelLanguage{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := language.Intentions()
	if len(got) != 2 || got[0] != "a" || got[1] != "b!" {
		t.Fatalf("expected [a b!], got %v", got)
	}
}

func TestBuild_UnknownTerm(t *testing.T) {
	t.Parallel()

	r := labelRegistry(t)
	m := Manifest{Terms: []TermSpec{{Name: "spin"}}}

	_, err := r.Build(labelLanguage{}, m)
	if err == nil || !strings.Contains(err.Error(), `unknown term "spin"`) {
		t.Fatalf("expected unknown term error, got: %v", err)
	}
}

func TestBuild_BuilderErrorNamesTerm(t *testing.T) {
	t.Parallel()

	r := labelRegistry(t)
	m := Manifest{Terms: []TermSpec{{Name: "label"}}} // missing value arg

	_, err := r.Build(labelLanguage{}, m)
	if err == nil || !strings.Contains(err.Error(), `term "label"`) {
		t.Fatalf("expected wrapped builder error, got: %v", err)
	}
}

func TestBuild_InvalidManifest(t *testing.T) {
	t.Parallel()

	r := labelRegistry(t)

	_, err := r.Build(labelLanguage{}, Manifest{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}
}
