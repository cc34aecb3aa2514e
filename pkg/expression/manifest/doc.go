// Package manifest loads expression chains from declarative yaml documents.
// A manifest names an ordered list of terms, each with args and modifiers; a
// Registry maps those names onto a concrete vocabulary and folds them into a
// chain.
//
// Key operations:
// - Parse: unmarshal and validate a yaml manifest
// - Manifest.Validate: structural validation, aggregating every problem
// - Registry.Register: bind a term name to a TermBuilder
// - Registry.Build: fold a manifest onto a language, returning the final
//   forward handle
package manifest
