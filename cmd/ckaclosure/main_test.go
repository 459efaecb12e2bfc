package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSequential(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	err := run(strings.NewReader("(. a b)"), &out, false)
	require.NoError(err)
	require.NotEmpty(out.String())
}

func TestRunStarOfClosedPrimitiveUnchanged(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	err := run(strings.NewReader("(* a)"), &out, false)
	require.NoError(err)
	require.Equal("a*\n", out.String())
}

func TestRunStarOfParallelRecursesIntoBody(t *testing.T) {
	require := require.New(t)
	var withStar, bare bytes.Buffer
	require.NoError(run(strings.NewReader("(* (|| a b))"), &withStar, false))
	require.NoError(run(strings.NewReader("(|| a b)"), &bare, false))

	require.NotEqual(strings.TrimSpace(withStar.String()), strings.TrimSpace(bare.String()))
	require.True(strings.HasSuffix(strings.TrimSpace(withStar.String()), "*"),
		"closure of a starred parallel term must print as a star, got %q", withStar.String())
}

func TestRunParallelDiagnostic(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	err := run(strings.NewReader("(|| a b)"), &out, true)
	require.NoError(err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.True(len(lines) > 1, "expected closure line plus diagnostic lines, got %q", out.String())
}

func TestParseTermBadArity(t *testing.T) {
	require := require.New(t)
	_, err := parseTerm("(* a b)")
	require.Error(err)
}
