// Package term_test provides examples demonstrating the term algebra's
// smart constructors. Each example is runnable via "go test -run Example".
package term_test

import (
	"fmt"

	"github.com/ck-algebra/closure/term"
)

// ExampleTerm_Plus demonstrates choice's idempotent-absorption normalization.
func ExampleTerm_Plus() {
	a := term.Primitive("a")
	b := term.Primitive("b")

	sum := a.Plus(b).Plus(a) // a+b+a normalizes away the duplicate a
	fmt.Println(sum)
	// Output: a + b
}

// ExampleTerm_Star demonstrates the star-choice identity 1 + a·a* = a*.
func ExampleTerm_Star() {
	a := term.Primitive("a")
	astar := a.Star()

	folded := term.One().Plus(a.Then(astar))
	fmt.Println(folded.Equal(astar))
	// Output: true
}

// ExampleTerm_Width shows the maximum-parallelism measure of a term.
func ExampleTerm_Width() {
	a := term.Primitive("a")
	b := term.Primitive("b")

	w, err := a.Parallel(b).Width()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(w)
	// Output: 2
}
