// Package builder provides reusable "functional-composition"-style building
// blocks for assembling term.Term values. It lives alongside the term
// package to centralize the small set of convenience constructors an
// external caller (the cmd/ckaclosure CLI, tests, examples) reaches for
// instead of hand-folding Plus/Then/Parallel chains.
//
// The package offers the following key components:
//
//   - Re-exported smart constructors:
//     – Zero, One, Primitive: thin wrappers over term's own constructors.
//   - Variadic folds:
//     – Choice, Sequential, Parallel: fold term.Plus/Then/Parallel over a
//       slice, with a documented identity result for zero arguments.
//   - Word-level convenience:
//     – Word:     sequential chain of one Primitive per rune, in order.
//     – Alphabet: choice over one Primitive per rune.
//
// Guarantees:
//
//   - Idempotent composition: folding the same input slice always returns
//     an equal (by Term.Equal) result, since the underlying smart
//     constructors normalize deterministically.
//   - Never constructs a raw, unreduced term.Term: every path goes through
//     term's smart constructors, so a term returned here is always ready for
//     Nullable/IsTrivial/Width/closure.Closure as appropriate.
//   - Fast-fail on empty textual input via sentinel errors, never panics.
//
// See individual function documentation for contracts and edge cases.
package builder
