package symbolgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ck-algebra/closure/closure"
	"github.com/ck-algebra/closure/symbolgraph"
	"github.com/ck-algebra/closure/term"
)

type SymbolGraphSuite struct {
	suite.Suite
}

func TestSymbolGraphSuite(t *testing.T) {
	suite.Run(t, new(SymbolGraphSuite))
}

func (s *SymbolGraphSuite) parallelTerm() *term.Term {
	a := term.Primitive("a")
	b := term.Primitive("b")
	return a.Parallel(b)
}

func (s *SymbolGraphSuite) buildSystem() *closure.LinearSystem {
	require := require.New(s.T())
	cache := closure.NewCache()
	ls, err := closure.BuildLinearSystem(s.parallelTerm(), cache)
	require.NoError(err)
	require.NotEmpty(ls.Symbols)
	return ls
}

func (s *SymbolGraphSuite) TestExportHasOneVertexPerSymbol() {
	require := require.New(s.T())
	ls := s.buildSystem()

	g, err := symbolgraph.Export(ls)
	require.NoError(err)

	order, err := g.Order()
	require.NoError(err)
	require.Equal(len(ls.Symbols), order)
}

func (s *SymbolGraphSuite) TestRenderListsEverySymbol() {
	require := require.New(s.T())
	ls := s.buildSystem()

	solution, err := ls.Solve()
	require.NoError(err)

	out := symbolgraph.Render(ls, solution)
	require.NotEmpty(out)
	for _, sym := range ls.Symbols {
		require.Contains(out, sym.String())
	}
}

func (s *SymbolGraphSuite) TestBuildLinearSystemRejectsNonParallel() {
	require := require.New(s.T())
	_, err := closure.BuildLinearSystem(term.Primitive("a"), closure.NewCache())
	require.ErrorIs(err, closure.ErrNotParallel)
}
