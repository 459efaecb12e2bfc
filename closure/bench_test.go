package closure_test

import (
	"testing"

	"github.com/ck-algebra/closure/closure"
	"github.com/ck-algebra/closure/term"
)

// BenchmarkClosure_ParallelPair measures closing a two-primitive parallel
// term with a fresh cache each iteration, exercising the full
// linear-system build-and-solve path.
func BenchmarkClosure_ParallelPair(b *testing.B) {
	a, c := term.Primitive("a"), term.Primitive("c")
	p := a.Parallel(c)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := closure.ClosureWith(p, closure.NewCache()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClosure_ParallelPairCached measures the same closure with a
// shared cache reused across iterations, isolating memoization's effect.
func BenchmarkClosure_ParallelPairCached(b *testing.B) {
	a, c := term.Primitive("a"), term.Primitive("c")
	p := a.Parallel(c)
	cache := closure.NewCache()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := closure.ClosureWith(p, cache); err != nil {
			b.Fatal(err)
		}
	}
}
