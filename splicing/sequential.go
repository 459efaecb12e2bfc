package splicing

import (
	"sync"

	"github.com/ck-algebra/closure/term"
)

// seqCache memoizes Sequential by canonical form, per spec §5's license to
// cache splicings package-wide since they depend only on their input term.
var seqCache sync.Map // term.CanonKey -> Set

// Sequential computes S(t), the set of pairs (g, h) such that g·h equals t
// under the algebra's sequential decomposition rules (§4.2). t must be
// closed; ErrVariableInTerm is returned otherwise.
func Sequential(t *term.Term) (Set, error) {
	if !t.Closed() {
		return nil, ErrVariableInTerm
	}
	return sequential(t), nil
}

// sequential is the unexported structural recursion; callers must have
// already validated t.Closed().
func sequential(t *term.Term) Set {
	if cached, ok := seqCache.Load(t.CanonKey()); ok {
		return cached.(Set)
	}

	var result Set
	switch t.Kind() {
	case term.KindZero:
		result = newSet()

	case term.KindOne:
		result = newSet().add(term.One(), term.One())

	case term.KindPrimitive:
		result = newSet().add(t, term.One()).add(term.One(), t)

	case term.KindChoice:
		result = union(sequential(t.Left()), sequential(t.Right()))

	case term.KindSequential:
		result = newSet()
		for _, p := range sequential(t.Right()) {
			result.add(t.Left().Then(p.G), p.H)
		}
		for _, p := range sequential(t.Left()) {
			result.add(p.G, p.H.Then(t.Right()))
		}

	case term.KindParallel:
		result = newSet()
		for _, pl := range sequential(t.Left()) {
			for _, pr := range sequential(t.Right()) {
				result.add(pl.G.Parallel(pr.G), pl.H.Parallel(pr.H))
			}
		}

	case term.KindStar:
		result = newSet()
		for _, p := range sequential(t.Left()) {
			result.add(t.Then(p.G), p.H.Then(t))
		}
		result.add(term.One(), term.One())

	default:
		// Unreachable: t.Closed() rules out term.KindVariable, and every
		// other Kind is handled above.
		result = newSet()
	}

	seqCache.Store(t.CanonKey(), result)
	return result
}
