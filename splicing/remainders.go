package splicing

import (
	"sort"
	"sync"

	"github.com/ck-algebra/closure/term"
)

var remCache sync.Map // term.CanonKey -> map[string]*term.Term

// Remainders computes R(t) (§4.3): the smallest set containing t and closed
// under "if u ∈ R(t) and (_, v) ∈ S(u), then v ∈ R(t)". t must be closed;
// ErrVariableInTerm is returned otherwise.
//
// The source computes this with a recursive method defaulting a mutable
// "seen" set argument, which silently accumulates across calls (spec §9's
// "default-mutable-argument hazard"). Here "seen" is a local map seeded
// fresh on every top-level call, and the recursion is an explicit
// worklist rather than recursive calls sharing mutable state.
func Remainders(t *term.Term) (map[string]*term.Term, error) {
	if !t.Closed() {
		return nil, ErrVariableInTerm
	}
	if cached, ok := remCache.Load(t.CanonKey()); ok {
		return cached.(map[string]*term.Term), nil
	}

	seen := map[string]*term.Term{t.CanonKey(): t}
	queue := []*term.Term{t}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		s := sequential(u) // u is closed, hereditarily, since t is
		for _, key := range s.SortedKeys() {
			v := s[key].H
			if _, ok := seen[v.CanonKey()]; !ok {
				seen[v.CanonKey()] = v
				queue = append(queue, v)
			}
		}
	}

	remCache.Store(t.CanonKey(), seen)
	return seen, nil
}

// SortedRemainderKeys returns the canonical keys of a remainder set in
// lexicographic order, giving callers (the closure package's symbol-set
// construction) a deterministic traversal order.
func SortedRemainderKeys(r map[string]*term.Term) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
