package splicing

import (
	"sort"

	"github.com/ck-algebra/closure/term"
)

// Pair is a single splicing: g followed by h (sequential) or g alongside h
// (parallel), together contained in the spliced term.
type Pair struct {
	G, H *term.Term
}

// Set is a finite, hash-set-shaped collection of Pairs, keyed on the
// canonical form of both components so that structurally equal pairs
// collapse to one entry regardless of how many times they're produced
// during recursion.
type Set map[string]Pair

func pairKey(g, h *term.Term) string {
	return g.CanonKey() + "\x00" + h.CanonKey()
}

func newSet() Set { return make(Set) }

func (s Set) add(g, h *term.Term) Set {
	s[pairKey(g, h)] = Pair{G: g, H: h}
	return s
}

// union returns a new Set containing every pair from both arguments.
func union(a, b Set) Set {
	out := make(Set, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// SortedKeys returns s's pair keys in lexicographic order, giving callers a
// deterministic iteration order over an otherwise unordered Go map — the
// determinism spec §5 asks implementations to provide when an operation's
// output depends on set iteration order.
func (s Set) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
