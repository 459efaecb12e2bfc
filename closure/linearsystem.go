package closure

import (
	"sort"

	"github.com/ck-algebra/closure/splicing"
	"github.com/ck-algebra/closure/term"
)

// LinearSystem is the inequation X ≥ A·X + b over the term Kleene algebra
// built for a Parallel(L, R) term, per §4.6. A and B are keyed by
// Symbol.Key(); every row/column present in A spans exactly the symbols in
// Symbols.
type LinearSystem struct {
	Symbols []Symbol
	A       map[string]map[string]*term.Term
	B       map[string]*term.Term
}

// MatrixEntry returns A(s1, s2), or nil if either symbol is not in the
// system.
func (ls *LinearSystem) MatrixEntry(s1, s2 Symbol) *term.Term {
	row, ok := ls.A[s1.Key()]
	if !ok {
		return nil
	}
	return row[s2.Key()]
}

// VectorEntry returns b(s), or nil if s is not in the system.
func (ls *LinearSystem) VectorEntry(s Symbol) *term.Term {
	return ls.B[s.Key()]
}

// BuildLinearSystem builds the §4.6 linear system for a closed Parallel
// term, exposing the same construction ClosureWith uses internally so that
// callers (symbolgraph, the CLI's -diagnostic flag) can inspect a system
// without re-deriving it by hand.
func BuildLinearSystem(p *term.Term, cache *Cache) (*LinearSystem, error) {
	if !p.Closed() {
		return nil, term.ErrVariableInClosedTerm
	}
	if p.Kind() != term.KindParallel {
		return nil, ErrNotParallel
	}
	return newLinearSystem(p, cache)
}

// newLinearSystem builds the §4.6 system for p = Parallel(L, R). cache is
// threaded through to the Preclosure calls that populate the matrix, since
// those recursively invoke Closure on strictly narrower parallel terms.
func newLinearSystem(p *term.Term, cache *Cache) (*LinearSystem, error) {
	l, r := p.Left(), p.Right()

	remL, err := splicing.Remainders(l)
	if err != nil {
		return nil, err
	}
	remR, err := splicing.Remainders(r)
	if err != nil {
		return nil, err
	}

	lKeys := splicing.SortedRemainderKeys(remL)
	rKeys := splicing.SortedRemainderKeys(remR)

	symbols := make([]Symbol, 0, len(lKeys)*len(rKeys))
	for _, lk := range lKeys {
		for _, rk := range rKeys {
			symbols = append(symbols, Symbol{L: remL[lk], R: remR[rk]})
		}
	}

	b := make(map[string]*term.Term, len(symbols))
	for _, s := range symbols {
		b[s.Key()] = s.Fold()
	}

	inSigma := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		inSigma[s.Key()] = true
	}

	a := make(map[string]map[string]*term.Term, len(symbols))
	for _, s1 := range symbols {
		row := make(map[string]*term.Term, len(symbols))
		for _, s2 := range symbols {
			row[s2.Key()] = term.Zero()
		}

		sp1, err := splicing.Sequential(s1.L)
		if err != nil {
			return nil, err
		}
		sp2, err := splicing.Sequential(s1.R)
		if err != nil {
			return nil, err
		}

		for _, k1 := range sp1.SortedKeys() {
			p1 := sp1[k1]
			for _, k2 := range sp2.SortedKeys() {
				p2 := sp2[k2]
				targetKey := p1.H.CanonKey() + "\x00" + p2.H.CanonKey()
				if !inSigma[targetKey] {
					// Remainders(L)/Remainders(R) are closed under
					// sequential splicing by construction, so every h1,h2
					// pair must land back in Σ; a miss is a bug upstream.
					return nil, ErrMissingSymbol
				}

				coef, err := Preclosure(p1.G, p2.G, cache)
				if err != nil {
					return nil, err
				}
				row[targetKey] = row[targetKey].Plus(coef)
			}
		}

		a[s1.Key()] = row
	}

	return &LinearSystem{Symbols: symbols, A: a, B: b}, nil
}

// Solve computes the least solution X ≥ A·X + b by variable elimination,
// per §4.6: pick a pivot e, recurse on the reduced system over Σ\{e}, then
// back-substitute. Symbols are eliminated in a fixed lexicographic order
// (by Symbol.Key) so that, for a given input term, the same symbol is
// always chosen first — the determinism spec §5 asks for, since different
// pivot choices yield algebraically equivalent but structurally different
// outputs.
func (ls *LinearSystem) Solve() (map[string]*term.Term, error) {
	keys := make([]string, len(ls.Symbols))
	for i, s := range ls.Symbols {
		keys[i] = s.Key()
	}
	sort.Strings(keys)

	return solveSystem(keys, ls.A, ls.B)
}

func solveSystem(keys []string, a map[string]map[string]*term.Term, b map[string]*term.Term) (map[string]*term.Term, error) {
	if len(keys) == 0 {
		return map[string]*term.Term{}, nil
	}

	e := keys[0]
	rest := keys[1:]

	aee, ok := lookup(a, e, e)
	if !ok {
		return nil, ErrMissingSymbol
	}
	be, ok := b[e]
	if !ok {
		return nil, ErrMissingSymbol
	}

	if len(rest) == 0 {
		// Base case: the fixpoint axiom of Kleene algebra, X = a*b.
		return map[string]*term.Term{e: aee.Star().Then(be)}, nil
	}

	// Reduced system over Σ \ {e}.
	bPrime := make(map[string]*term.Term, len(rest))
	for _, v := range rest {
		bv, ok := b[v]
		if !ok {
			return nil, ErrMissingSymbol
		}
		ave, ok := lookup(a, v, e)
		if !ok {
			return nil, ErrMissingSymbol
		}
		bPrime[v] = bv.Plus(ave.Then(be))
	}

	aPrime := make(map[string]map[string]*term.Term, len(rest))
	for _, v1 := range rest {
		row := make(map[string]*term.Term, len(rest))
		av1e, ok := lookup(a, v1, e)
		if !ok {
			return nil, ErrMissingSymbol
		}
		for _, v2 := range rest {
			aev2, ok := lookup(a, e, v2)
			if !ok {
				return nil, ErrMissingSymbol
			}
			av1v2, ok := lookup(a, v1, v2)
			if !ok {
				return nil, ErrMissingSymbol
			}
			row[v2] = av1e.Then(aee.Star()).Then(aev2).Plus(av1v2)
		}
		aPrime[v1] = row
	}

	solution, err := solveSystem(rest, aPrime, bPrime)
	if err != nil {
		return nil, err
	}

	// Back-substitute: X(e) = A(e,e)* · (b(e) + Σ_{v≠e} A(e,v)·X(v)).
	sum := be
	for _, v := range rest {
		aev, ok := lookup(a, e, v)
		if !ok {
			return nil, ErrMissingSymbol
		}
		xv, ok := solution[v]
		if !ok {
			return nil, ErrMissingSymbol
		}
		sum = sum.Plus(aev.Then(xv))
	}
	solution[e] = aee.Star().Then(sum)

	return solution, nil
}

func lookup(a map[string]map[string]*term.Term, row, col string) (*term.Term, bool) {
	r, ok := a[row]
	if !ok {
		return nil, false
	}
	v, ok := r[col]
	return v, ok
}
