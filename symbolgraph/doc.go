// Package symbolgraph adapts a closure.LinearSystem into a
// github.com/dominikbraun/graph dependency graph and renders the system's
// inequations as human-readable diagnostics.
//
// This package is the concrete implementation of what the teacher library's
// converterts package only documented intent for: converting an internal
// structure into a third-party graph representation for inspection. Here
// the internal structure is a linear system's elimination dependencies
// rather than a core.Graph, but the shape of the problem — "expose our
// adjacency as someone else's graph type" — is the same.
package symbolgraph
