package tween

import (
	"time"

	"github.com/material-motion/material-motion-expression-go/pkg/expression"
)

// DefaultDuration is applied to motions whose duration was left unset.
const DefaultDuration = 300 * time.Millisecond

// Motion describes one property animation. It is the intention payload of
// this vocabulary; the chain treats it as opaque.
type Motion struct {
	Property string
	From     float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
}

// Language is the tween chain owner. The zero value is an empty chain.
type Language struct {
	work expression.Work
}

// New starts an empty tween chain.
func New() Language {
	return Language{}
}

// Chain registers a continuation and returns the next forward handle.
func (l Language) Chain(work expression.Work) Language {
	return Language{work: work}
}

// Intentions realizes everything accumulated so far.
func (l Language) Intentions() []expression.Intention {
	if l.work == nil {
		return nil
	}
	return l.work()
}

// FadeIn animates opacity from 0 to 1.
func (l Language) FadeIn() Term {
	return newTerm(l, &Motion{Property: "opacity", From: 0, To: 1})
}

// FadeOut animates opacity from 1 to 0.
func (l Language) FadeOut() Term {
	return newTerm(l, &Motion{Property: "opacity", From: 1, To: 0})
}

// MoveTo animates translation to the given position.
func (l Language) MoveTo(x, y float64) Term {
	return newTerm(l,
		&Motion{Property: "translationX", To: x},
		&Motion{Property: "translationY", To: y},
	)
}

// Scale animates uniform scale from 1 to factor.
func (l Language) Scale(factor float64) Term {
	return newTerm(l, &Motion{Property: "scale", From: 1, To: factor})
}

// Rotate animates rotation to the given angle in degrees.
func (l Language) Rotate(degrees float64) Term {
	return newTerm(l, &Motion{Property: "rotation", To: degrees})
}

// Term is a tween chain link. Modifiers replace motions with modified copies,
// so deriving a term never changes what an earlier link realizes.
type Term struct {
	expression.Term[Term, Language]
}

func newTerm(l Language, motions ...*Motion) Term {
	intentions := make([]expression.Intention, len(motions))
	for i, m := range motions {
		intentions[i] = m
	}
	return Term{expression.NewTerm(l, chainTerm, applyDefaults, intentions...)}
}

func chainTerm(l Language, work expression.Work) Term {
	return Term{expression.ChainTerm(l, chainTerm, work)}
}

// applyDefaults gives motions with no explicit duration the default one.
func applyDefaults(intentions []expression.Intention) {
	for _, in := range intentions {
		if m, ok := in.(*Motion); ok && m.Duration == 0 {
			m.Duration = DefaultDuration
		}
	}
}

// During sets the duration of every motion in the working set.
func (t Term) During(d time.Duration) Term {
	return t.update(func(m *Motion) {
		m.Duration = d
	})
}

// Delayed offsets every motion in the working set by the given delay.
func (t Term) Delayed(d time.Duration) Term {
	return t.update(func(m *Motion) {
		m.Delay = d
	})
}

// Reversed swaps the start and end values of every motion in the working set.
func (t Term) Reversed() Term {
	return t.update(func(m *Motion) {
		m.From, m.To = m.To, m.From
	})
}

func (t Term) update(apply func(m *Motion)) Term {
	return t.Modify(func(in []expression.Intention) []expression.Intention {
		out := make([]expression.Intention, len(in))
		for i, raw := range in {
			m, ok := raw.(*Motion)
			if !ok {
				out[i] = raw
				continue
			}
			c := *m
			apply(&c)
			out[i] = &c
		}
		return out
	})
}
