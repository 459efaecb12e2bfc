package symbolgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ck-algebra/closure/closure"
	"github.com/ck-algebra/closure/term"
)

// Render formats ls and its solution as a diagnostic listing, one
// inequation per line:
//
//	b(s) + Σ A(s,s')·X[s'] ≤ X[s]  (X[s] = solution(s))
//
// A zero matrix entry is left out of the sum, and a symbol missing from
// solution prints its value as "?".
//
// Vector term first, matrix terms second — matching wcka.py's
// LinearSystem.__str__ term order, not the reverse. Symbols are sorted by
// their printed form (Symbol.String()) for stable output across runs, per
// spec.md §6.
func Render(ls *closure.LinearSystem, solution map[string]*term.Term) string {
	symbols := make([]closure.Symbol, len(ls.Symbols))
	copy(symbols, ls.Symbols)
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].String() < symbols[j].String()
	})

	zeroKey := term.Zero().CanonKey()

	var b strings.Builder
	for _, s := range symbols {
		parts := []string{ls.VectorEntry(s).String()}
		for _, s2 := range symbols {
			entry := ls.MatrixEntry(s, s2)
			if entry == nil || entry.CanonKey() == zeroKey {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s·X[%s]", entry.String(), s2.String()))
		}

		x := solution[s.Key()]
		xStr := "?"
		if x != nil {
			xStr = x.String()
		}

		fmt.Fprintf(&b, "%s ≤ X[%s]  (X[%s] = %s)\n", strings.Join(parts, " + "), s.String(), s.String(), xStr)
	}

	return b.String()
}
