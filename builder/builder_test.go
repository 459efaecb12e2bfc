package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ck-algebra/closure/builder"
	"github.com/ck-algebra/closure/term"
)

type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) TestReExports() {
	require := require.New(s.T())
	require.True(builder.Zero().Equal(term.Zero()))
	require.True(builder.One().Equal(term.One()))
	require.True(builder.Primitive("a").Equal(term.Primitive("a")))
}

func (s *BuilderSuite) TestChoiceEmptyIsZero() {
	require := require.New(s.T())
	require.True(builder.Choice().Equal(term.Zero()))
}

func (s *BuilderSuite) TestSequentialEmptyIsOne() {
	require := require.New(s.T())
	require.True(builder.Sequential().Equal(term.One()))
}

func (s *BuilderSuite) TestParallelEmptyIsOne() {
	require := require.New(s.T())
	require.True(builder.Parallel().Equal(term.One()))
}

func (s *BuilderSuite) TestChoiceFold() {
	require := require.New(s.T())
	a, b, c := term.Primitive("a"), term.Primitive("b"), term.Primitive("c")
	got := builder.Choice(a, b, c)
	want := a.Plus(b).Plus(c)
	require.True(got.Equal(want), "got %s want %s", got, want)
}

func (s *BuilderSuite) TestSequentialFold() {
	require := require.New(s.T())
	a, b := term.Primitive("a"), term.Primitive("b")
	got := builder.Sequential(a, b)
	want := a.Then(b)
	require.True(got.Equal(want))
}

func (s *BuilderSuite) TestParallelFold() {
	require := require.New(s.T())
	a, b := term.Primitive("a"), term.Primitive("b")
	got := builder.Parallel(a, b)
	want := a.Parallel(b)
	require.True(got.Equal(want))
}

func (s *BuilderSuite) TestWord() {
	require := require.New(s.T())
	got, err := builder.Word("ab")
	require.NoError(err)
	want := term.Primitive("a").Then(term.Primitive("b"))
	require.True(got.Equal(want), "got %s want %s", got, want)
}

func (s *BuilderSuite) TestWordEmpty() {
	require := require.New(s.T())
	_, err := builder.Word("")
	require.True(errors.Is(err, builder.ErrEmptyAlphabet))
}

func (s *BuilderSuite) TestAlphabetDedup() {
	require := require.New(s.T())
	got, err := builder.Alphabet("aba")
	require.NoError(err)
	want := term.Primitive("a").Plus(term.Primitive("b"))
	require.True(got.Equal(want), "got %s want %s", got, want)
}

func (s *BuilderSuite) TestAlphabetEmpty() {
	require := require.New(s.T())
	_, err := builder.Alphabet("")
	require.True(errors.Is(err, builder.ErrEmptyAlphabet))
}
