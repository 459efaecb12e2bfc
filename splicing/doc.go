// Package splicing computes the finite sets of term pairs that decompose a
// closed CKA term either sequentially or in parallel (§4.2), and the
// transitive closure of sequential right-hand sides used as the symbol
// space for the linear system solver (§4.3, "remainders").
//
// Every function here requires a closed term (term.Term.Closed()) and
// returns ErrVariableInTerm otherwise. Results are memoized package-wide,
// keyed on term.Term.CanonKey, per spec §5's explicit license to cache pure
// functions of immutable terms.
package splicing
