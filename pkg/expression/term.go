package expression

import (
	"time"

	"github.com/google/uuid"
)

// ChainFactory is the chaining-construction entry point every concrete Term
// subtype must provide: given the previous Language and a Work, it builds a
// new instance of the subtype around ChainTerm. Modify re-instantiates the
// subtype through it.
type ChainFactory[T any, L Language[L]] func(language L, work Work) T

// Term is an immutable link in an expression chain. It holds the previous
// Language, one deferred Work producing its own contribution, and the forward
// handle And for continuing the chain. Concrete subtypes embed Term with
// themselves as T.
type Term[T any, L Language[L]] struct {
	// And is the next Language on the expression chain. Use it to chain
	// further terms onto the expression.
	And L

	id        uuid.UUID
	createdAt time.Time
	language  L
	work      Work
	factory   ChainFactory[T, L]
}

// NewTerm is the initializing construction. It wraps the given working set in
// a terminal Work and registers the continuation with language. Subtypes call
// this from their own initializing constructors, passing the same factory
// they hand to ChainTerm.
func NewTerm[T any, L Language[L]](
	language L, factory ChainFactory[T, L], initializer Initializer, intentions ...Intention) Term[T, L] {
	return ChainTerm(language, factory, TerminalWork(initializer, intentions...))
}

// ChainTerm is the chaining construction: it stores work directly. Used by
// subtype chain factories and by Modify, not by end users.
func ChainTerm[T any, L Language[L]](language L, factory ChainFactory[T, L], work Work) Term[T, L] {
	t := Term[T, L]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		language:  language,
		work:      work,
		factory:   factory,
	}
	t.And = language.Chain(func() []Intention {
		return t.Intentions()
	})
	return t
}

// Modify derives a new Term whose Work realizes this Term's working set and
// applies modifier to it. The receiver is left untouched; the chain below is
// shared. Panics with *BadImplementationError when the subtype was wired
// without a chain factory. A panic raised inside the factory itself
// propagates unchanged.
func (t Term[T, L]) Modify(modifier Modifier) T {
	return t.chain(composedWork(t.work, modifier))
}

func (t Term[T, L]) chain(work Work) T {
	if t.factory == nil {
		panic(&BadImplementationError{Expr: t, Reason: ReasonMissingChainFactory})
	}
	return t.factory(t.language, work)
}

// Intentions realizes everything accumulated before this Term, then its own
// contribution, in chain-registration order.
func (t Term[T, L]) Intentions() []Intention {
	return Concat(t.language.Intentions(), t.work())
}

// Id identifies this link (each construction, including Modify, gets a fresh
// one).
func (t Term[T, L]) Id() uuid.UUID {
	return t.id
}

// CreatedAt is the construction time (UTC).
func (t Term[T, L]) CreatedAt() time.Time {
	return t.createdAt
}
