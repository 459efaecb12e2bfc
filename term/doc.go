// Package term implements the inductive term algebra of Concurrent Kleene
// Algebra (CKA): Zero, One, Primitive, Choice (+), Sequential (·),
// Parallel (‖), Star (*), and Variable — the placeholder used only inside
// diagnostic renderings of a solved linear system.
//
// Terms are immutable once constructed. The four combinators (Plus, Then,
// Parallel, Star) are smart constructors: they normalize on the fly
// (unit/annihilation absorption, idempotent choice via containment, and the
// two star-choice identities) rather than building raw variants, so equal
// terms under the algebra's laws tend to converge to the same canonical
// printed form. Equality, hashing, and set-membership all piggy-back on
// that canonical form (see Term.String), per the algebra's own convention.
//
// Closed, Nullable, IsTrivial, Width and Absorbs implement the structural
// predicates and measures of the algebra. Width, Nullable, and IsTrivial are
// defined only for closed terms (no Variable node anywhere in the term) and
// return ErrVariableInClosedTerm otherwise; Absorbs and the four combinators
// are total over every Term, Variable included.
package term
