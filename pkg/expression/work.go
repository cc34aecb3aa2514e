package expression

import "sync"

// Work is a suspended, repeatable production of an Intention slice. Invoking
// a Work never returns a cached result: each call re-runs the composition it
// closes over, so the chain is realized from current state at read time.
type Work func() []Intention

// Initializer performs one-shot setup on a working set of Intentions. It runs
// exactly once per terminal Work, on first realization.
type Initializer func(intentions []Intention)

// Modifier transforms a working set of Intentions. The modifier has exclusive
// mutable access for the duration of the call: it may mutate entries in
// place, grow or shrink the set, and must return the working set. It must not
// retain the slice beyond the call.
type Modifier func(intentions []Intention) []Intention

// TerminalWork returns a Work producing the given fixed working set. The
// returned Work owns the slice; callers and modifiers that mutate its entries
// affect every later realization. If initializer is non-nil it runs once, on
// the first invocation.
func TerminalWork(initializer Initializer, intentions ...Intention) Work {
	var once sync.Once
	return func() []Intention {
		if initializer != nil {
			once.Do(func() {
				initializer(intentions)
			})
		}
		return intentions
	}
}

func composedWork(inner Work, modifier Modifier) Work {
	return func() []Intention {
		return modifier(inner())
	}
}
