package expression

// Intention is one opaque unit of accumulated motion work. The chain never
// interprets it; it only orders it.
type Intention any

// Expression is any node of an expression chain that can realize the full
// ordered set of Intentions accumulated up to and including itself.
type Expression interface {
	// Intentions realizes the accumulated directives in chain order.
	Intentions() []Intention
}

// Language is the chain-owner capability a Term requires from the
// collaborator that precedes it. L is the collaborator's own concrete type,
// so that chaining stays fluent (use sites constrain L Language[L]).
type Language[L any] interface {
	Expression
	// Chain registers a continuation and returns a new forward handle.
	Chain(work Work) L
}
