package splicing

import (
	"sync"

	"github.com/ck-algebra/closure/term"
)

var parCache sync.Map // term.CanonKey -> Set

// Parallel computes P(t) = nontrivial-P(t) ∪ {(t, One), (One, t)} (§4.2).
// t must be closed; ErrVariableInTerm is returned otherwise.
func Parallel(t *term.Term) (Set, error) {
	if !t.Closed() {
		return nil, ErrVariableInTerm
	}
	return parallel(t), nil
}

func parallel(t *term.Term) Set {
	if cached, ok := parCache.Load(t.CanonKey()); ok {
		return cached.(Set)
	}

	trivialPairs := newSet().add(t, term.One()).add(term.One(), t)
	result := union(nontrivialParallel(t), trivialPairs)

	parCache.Store(t.CanonKey(), result)
	return result
}

// nontrivialParallel implements spec §4.2's nontrivial-P, excluding the
// (t, One)/(One, t) pairs that the parallel wrapper above always adds.
func nontrivialParallel(t *term.Term) Set {
	switch t.Kind() {
	case term.KindZero, term.KindOne, term.KindPrimitive:
		return newSet()

	case term.KindChoice:
		return union(parallel(t.Left()), parallel(t.Right()))

	case term.KindSequential:
		result := newSet()
		rNullable, _ := t.Right().Nullable()
		lNullable, _ := t.Left().Nullable()
		if rNullable {
			result = union(result, parallel(t.Left()))
		}
		if lNullable {
			result = union(result, parallel(t.Right()))
		}
		return result

	case term.KindParallel:
		return parallelCross(t.Left(), t.Right())

	case term.KindStar:
		// A parallel split may cross a star only by unrolling it; the
		// finite witnesses come entirely from the splits of the body.
		return parallel(t.Left())

	default:
		// Unreachable: t.Closed() rules out term.KindVariable.
		return newSet()
	}
}

// ParallelCross computes { (g1‖g2, h1‖h2) | (g1,h1) ∈ P(l), (g2,h2) ∈ P(r) }
// directly from l and r, independent of whether a smart-constructed l‖r
// would itself remain a Parallel term (it may reduce away if l or r is
// One/Zero). The closure package's matrix/preclosure formulas need exactly
// this raw-pair cross product — the source builds it from a literal
// Parallel(g1, g2) object rather than going through the normalizing ‖
// operator, so a degenerate l or r must not silently fall back to the
// Primitive/Zero/One splicing case. l and r must be closed.
func ParallelCross(l, r *term.Term) (Set, error) {
	if !l.Closed() || !r.Closed() {
		return nil, ErrVariableInTerm
	}
	return parallelCross(l, r), nil
}

func parallelCross(l, r *term.Term) Set {
	result := newSet()
	for _, pl := range parallel(l) {
		for _, pr := range parallel(r) {
			result.add(pl.G.Parallel(pr.G), pl.H.Parallel(pr.H))
		}
	}
	return result
}
