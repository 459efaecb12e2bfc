// Package closure computes the closure of Concurrent Kleene Algebra terms
// under sequential and parallel composition.
//
// What is ck-algebra/closure?
//
//	A term algebra and a closure solver, built from three cooperating
//	subpackages:
//
//	  • Term algebra: Zero/One/Primitive/Variable/Star/Sequential/Parallel/
//	    Choice, with smart constructors that normalize on the fly (unit and
//	    zero annihilation, idempotent-choice absorption, the two star-choice
//	    identities).
//	  • Splicings: the sequential and parallel decompositions of a term used
//	    to drive the closure recursion.
//	  • Closure: a width-decreasing mutual recursion between closure,
//	    preclosure, and a linear system of term-algebra (in)equations solved
//	    by variable elimination.
//
// Under the hood, everything is organized under five subpackages:
//
//	term/        — the term algebra: types, smart constructors, containment,
//	               and the derived measures Nullable/IsTrivial/Width
//	splicing/    — sequential splicings S(t), parallel splicings P(t), and
//	               the remainder set R(t) they're built from
//	closure/     — Closure/ClosureWith, Preclosure, and LinearSystem/Solve
//	builder/     — convenience constructors (Word, Alphabet, variadic folds)
//	symbolgraph/ — exports a LinearSystem as a github.com/dominikbraun/graph
//	               dependency graph and renders its inequations for diagnosis
//
// cmd/ckaclosure is a small external CLI driver over these packages; it is
// not part of their contract.
//
//	go get github.com/ck-algebra/closure
package closure
