package closure

import (
	"github.com/ck-algebra/closure/splicing"
	"github.com/ck-algebra/closure/term"
)

// Preclosure computes the §4.4 preclosure of the raw parallel pair (g1, g2):
//
//	preclosure(g1 ‖ g2) = (g1 ‖ g2) + Σ { closure(g)‖closure(h) |
//	    (g,h) ∈ P(g1‖g2), width(g) < width(g1‖g2), width(h) < width(g1‖g2) }
//
// g1 and g2 are kept separate rather than pre-folded into a single term
// because this is always invoked from the linear system's matrix formula
// with splicing-derived operands that may individually degenerate (e.g.
// g1 = One) — the width/psplicing computation must still behave as if a
// genuine Parallel(g1, g2) node were present, per §4.6's note that the raw
// pair is the identifier, not its possibly-reduced fold. The width guard is
// the termination measure for the mutual recursion closure → linear system
// → preclosure → closure: every ClosureWith call below runs on a term
// strictly narrower than g1 ‖ g2.
func Preclosure(g1, g2 *term.Term, cache *Cache) (*term.Term, error) {
	if !g1.Closed() || !g2.Closed() {
		return nil, term.ErrVariableInClosedTerm
	}

	trivial1, _ := g1.IsTrivial() // safe: both operands validated closed above
	trivial2, _ := g2.IsTrivial()
	trivial := trivial1 || trivial2

	width := 0
	if !trivial {
		w1, _ := g1.Width()
		w2, _ := g2.Width()
		width = w1 + w2
	}

	acc := g1.Parallel(g2)

	pairs, err := splicing.ParallelCross(g1, g2)
	if err != nil {
		return nil, err
	}
	for _, key := range pairs.SortedKeys() {
		pr := pairs[key]
		wg, _ := pr.G.Width()
		wh, _ := pr.H.Width()
		if wg >= width || wh >= width {
			continue
		}

		cg, err := ClosureWith(pr.G, cache)
		if err != nil {
			return nil, err
		}
		ch, err := ClosureWith(pr.H, cache)
		if err != nil {
			return nil, err
		}
		acc = acc.Plus(cg.Parallel(ch))
	}

	return acc, nil
}
