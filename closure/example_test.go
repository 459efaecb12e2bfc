// Package closure_test provides examples demonstrating how to compute the
// closure of a term. Each example is runnable via "go test -run Example".
package closure_test

import (
	"fmt"

	"github.com/ck-algebra/closure/closure"
	"github.com/ck-algebra/closure/term"
)

// ExampleClosure_sequential shows closure distributing over sequential
// composition.
func ExampleClosure_sequential() {
	a := term.Primitive("a")
	b := term.Primitive("b")

	got, err := closure.Closure(a.Then(b))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(got)
	// Output: ab
}

// ExampleClosure_star shows closure recursing into a star's body: since the
// body here is already a fixed point of closure, re-wrapping it in Star
// leaves the printed form unchanged.
func ExampleClosure_star() {
	a := term.Primitive("a")

	got, err := closure.Closure(a.Star())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(got)
	// Output: a*
}
