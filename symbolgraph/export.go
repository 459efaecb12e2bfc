package symbolgraph

import (
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/ck-algebra/closure/closure"
	"github.com/ck-algebra/closure/term"
)

// symbolHash keys a closure.Symbol vertex by its Symbol.Key(), matching the
// same string keys used throughout LinearSystem's A/B maps.
func symbolHash(s closure.Symbol) string { return s.Key() }

// Export builds a directed github.com/dominikbraun/graph graph with one
// vertex per symbol in ls.Symbols and one edge s1 -> s2 whenever the matrix
// entry A(s1, s2) is present and not the zero term — i.e. the dependency
// s1's equation has on s2's variable during elimination.
func Export(ls *closure.LinearSystem) (graph.Graph[string, closure.Symbol], error) {
	g := graph.New(symbolHash, graph.Directed())

	for _, s := range ls.Symbols {
		if err := g.AddVertex(s); err != nil {
			return nil, fmt.Errorf("symbolgraph: add vertex %s: %w", s, err)
		}
	}

	zeroKey := term.Zero().CanonKey()
	for _, s1 := range ls.Symbols {
		for _, s2 := range ls.Symbols {
			entry := ls.MatrixEntry(s1, s2)
			if entry == nil || entry.CanonKey() == zeroKey {
				continue
			}
			if err := g.AddEdge(s1.Key(), s2.Key()); err != nil {
				return nil, fmt.Errorf("symbolgraph: add edge %s -> %s: %w", s1, s2, err)
			}
		}
	}

	return g, nil
}
