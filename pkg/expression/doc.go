// Package expression implements the chaining primitive behind fluent motion
// expressions: immutable Terms linked back through their owning Language,
// realizing an ordered Intention list lazily at read time.
//
// Key constructs:
// - Term: an immutable chain link; NewTerm/ChainTerm construct, Modify derives
// - Work: a suspended, repeatable production of an Intention slice
// - Initializer/Modifier: one-shot setup and working-set transformation hooks
// - Language: the chain-owner capability a Term composes against
// - Concat: order-preserving, nil-tolerant slice concatenation
//
// A Term never caches: every Intentions() call walks the chain again, so the
// expression is realized from the collaborators' current state at read time.
// Concrete vocabularies live in subpackages (see tween); declarative loading
// lives in manifest.
package expression
