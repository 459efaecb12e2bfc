package closure

import "github.com/ck-algebra/closure/term"

// Symbol is a raw Parallel(l', r') identifier used as a linear-system
// variable: an element of Σ. It deliberately does not fold l' and r' into
// a single normalized term — §4.6 distinguishes the raw pair used as a map
// key from the normalized l'‖r' used in matrix/vector entries, since the
// two sides of the pair may individually degenerate (e.g. l' = One) while
// the symbol itself must stay a distinct element of Σ.
type Symbol struct {
	L, R *term.Term
}

// Key returns the string used to index Symbol in LinearSystem's maps.
func (s Symbol) Key() string {
	return s.L.CanonKey() + "\x00" + s.R.CanonKey()
}

// Fold returns the normalized term l' ‖ r', i.e. b(s) of §4.6.
func (s Symbol) Fold() *term.Term {
	return s.L.Parallel(s.R)
}

// String renders s for diagnostics as "(l')‖(r')", always parenthesized
// since s is an identifier, not a term participating in further algebra.
func (s Symbol) String() string {
	return "(" + s.L.String() + ")‖(" + s.R.String() + ")"
}
