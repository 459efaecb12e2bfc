// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Re-exports are here so callers never need to import term directly for
//     the common construction path.
//   - Choice/Sequential/Parallel fold left-to-right over their arguments;
//     empty input returns the operation's identity (Zero, One, One
//     respectively), matching the algebraic identities of spec.md §2.
//   - Never panics; the only failure mode (empty textual input to
//     Word/Alphabet) returns ErrEmptyAlphabet.

package builder

import "github.com/ck-algebra/closure/term"

// Zero returns the additive identity term (the term that never completes).
func Zero() *term.Term { return term.Zero() }

// One returns the multiplicative identity term (the term that completes
// immediately, doing nothing).
func One() *term.Term { return term.One() }

// Primitive returns the atomic term for a single action letter.
func Primitive(letter string) *term.Term { return term.Primitive(letter) }

// Choice folds ts with Plus (+), left to right. Choice() with no arguments
// returns Zero, the identity of +.
func Choice(ts ...*term.Term) *term.Term {
	acc := term.Zero()
	for _, t := range ts {
		acc = acc.Plus(t)
	}
	return acc
}

// Sequential folds ts with Then (·), left to right. Sequential() with no
// arguments returns One, the identity of ·.
func Sequential(ts ...*term.Term) *term.Term {
	acc := term.One()
	for _, t := range ts {
		acc = acc.Then(t)
	}
	return acc
}

// Parallel folds ts with Parallel (‖), left to right. Parallel() with no
// arguments returns One, the identity of ‖.
func Parallel(ts ...*term.Term) *term.Term {
	acc := term.One()
	for _, t := range ts {
		acc = acc.Parallel(t)
	}
	return acc
}
