package closure

import "github.com/ck-algebra/closure/term"

// Closure computes the §4 closure of a closed term using DefaultCache for
// memoization. Use ClosureWith to supply an isolated cache.
func Closure(t *term.Term) (*term.Term, error) {
	return ClosureWith(t, DefaultCache)
}

// ClosureWith computes the closure of t, memoizing intermediate and final
// results in cache. It recurses structurally per §4: Zero, One and
// Primitive are fixed points of closure; Variable is rejected since closure
// is defined only on closed terms; Choice distributes over its operands
// (closure(a+b) = closure(a)+closure(b)); Sequential folds each factor's
// own closure pointwise (closure(a·b) = closure(a)·closure(b), per §4.3);
// Star recurses into its body per §4.5 (closure(b*) = closure(b)*) — b may
// itself contain an unresolved Parallel node, so the body's own closure
// must be taken before re-wrapping in Star, never skipped as if b* were
// already a fixed point; Parallel is the hard case and is delegated to the
// linear-system solver of §4.6, whose construction and solving mutually
// recurse through Preclosure back into ClosureWith on strictly narrower
// parallel subterms.
func ClosureWith(t *term.Term, cache *Cache) (*term.Term, error) {
	if !t.Closed() {
		return nil, term.ErrVariableInClosedTerm
	}

	key := t.CanonKey()
	if v, ok := cache.get(key); ok {
		return v, nil
	}

	var result *term.Term
	var err error

	switch t.Kind() {
	case term.KindZero, term.KindOne, term.KindPrimitive:
		result = t

	case term.KindStar:
		var inner *term.Term
		inner, err = ClosureWith(t.Left(), cache)
		if err != nil {
			return nil, err
		}
		result = inner.Star()

	case term.KindChoice:
		var left, right *term.Term
		left, err = ClosureWith(t.Left(), cache)
		if err != nil {
			return nil, err
		}
		right, err = ClosureWith(t.Right(), cache)
		if err != nil {
			return nil, err
		}
		result = left.Plus(right)

	case term.KindSequential:
		var left, right *term.Term
		left, err = ClosureWith(t.Left(), cache)
		if err != nil {
			return nil, err
		}
		right, err = ClosureWith(t.Right(), cache)
		if err != nil {
			return nil, err
		}
		result = left.Then(right)

	case term.KindParallel:
		result, err = closeParallel(t, cache)
		if err != nil {
			return nil, err
		}

	default:
		return nil, term.ErrVariableInClosedTerm
	}

	cache.put(key, result)

	return result, nil
}

// closeParallel handles the term.KindParallel case of ClosureWith: build
// the §4.6 linear system for t = Parallel(L, R), solve it, and extract the
// entry at the symbol whose L and R are exactly t's own operands.
func closeParallel(t *term.Term, cache *Cache) (*term.Term, error) {
	sys, err := newLinearSystem(t, cache)
	if err != nil {
		return nil, err
	}

	solution, err := sys.Solve()
	if err != nil {
		return nil, err
	}

	rootKey := (Symbol{L: t.Left(), R: t.Right()}).Key()
	x, ok := solution[rootKey]
	if !ok {
		return nil, ErrMissingSymbol
	}

	return x, nil
}
