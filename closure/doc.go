// Package closure computes the closure of a CKA term under the exchange
// law (§4.4–§4.6): every parallel composition is expanded into a choice
// that adds the sequential interleavings and narrower parallel splits the
// exchange law admits. The parallel composition itself stays in the result
// as one summand: closure(a‖b) has the summands a‖b, ab and ba.
//
// Closure dispatches structurally for every variant except Parallel, which
// it resolves by building a LinearSystem over the symbol set Σ = {raw
// Parallel(l',r') | l' ∈ remainders(L), r' ∈ remainders(R)} and solving the
// resulting inequation X ≥ AX + b by Gaussian-style elimination, using the
// Kleene algebra fixpoint identity X ≥ aX + b ⟹ X = a*b at each step.
// Preclosure supplies the matrix coefficients; it is the width-decreasing
// recursion that makes the mutual recursion closure → linear system →
// preclosure → closure terminate, since every Preclosure-produced term
// closure-recurses only on parallel terms strictly narrower than its
// caller.
//
// Every entry point requires a closed term (term.Term.Closed()) and
// returns term.ErrVariableInClosedTerm otherwise.
package closure
