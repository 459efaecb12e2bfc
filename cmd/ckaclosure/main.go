// Command ckaclosure reads a single CKA term from stdin in a small prefix
// s-expression syntax, computes its closure, and prints the result. It is
// an external driver over the term/splicing/closure/builder/symbolgraph
// packages, not part of their contract.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ck-algebra/closure/closure"
	"github.com/ck-algebra/closure/symbolgraph"
	"github.com/ck-algebra/closure/term"
)

func main() {
	diagnostic := flag.Bool("diagnostic", false, "print the linear system solved for the input term when it is a parallel composition")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *diagnostic); err != nil {
		fmt.Fprintln(os.Stderr, "ckaclosure:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, diagnostic bool) error {
	src, err := io.ReadAll(bufio.NewReader(in))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	t, err := parseTerm(string(src))
	if err != nil {
		return err
	}

	if !t.Closed() {
		return term.ErrVariableInClosedTerm
	}

	cache := closure.NewCache()
	result, err := closure.ClosureWith(t, cache)
	if err != nil {
		return fmt.Errorf("compute closure: %w", err)
	}

	fmt.Fprintln(out, result.String())

	if diagnostic && t.Kind() == term.KindParallel {
		sys, err := closure.BuildLinearSystem(t, cache)
		if err != nil {
			return fmt.Errorf("build diagnostic: %w", err)
		}
		solution, err := sys.Solve()
		if err != nil {
			return fmt.Errorf("solve diagnostic: %w", err)
		}
		fmt.Fprint(out, symbolgraph.Render(sys, solution))
	}

	return nil
}
