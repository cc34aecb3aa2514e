// Package tween is a compact motion vocabulary built on the expression chain
// primitive. Its Language starts a chain and every term contributes Motion
// intentions describing property animations; nothing here executes them.
//
// Common usage:
// - New: start an empty chain
// - FadeIn/FadeOut/MoveTo/Scale/Rotate: contribute motions
// - During/Delayed/Reversed: modify the current term's working set
// - And: continue the chain with another term
// - Intentions: realize the accumulated motions in chain order
package tween
