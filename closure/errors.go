package closure

import "errors"

// ErrMissingSymbol indicates the solver looked up a symbol absent from the
// linear system's matrix or vector. This is spec §7's "Internal invariant
// breach" kind: it signals a bug in symbol-set/matrix construction, not a
// malformed user input, and is never expected to occur given a correctly
// built LinearSystem.
var ErrMissingSymbol = errors.New("closure: symbol missing from linear system")

// ErrNotParallel indicates BuildLinearSystem was called on a term whose
// top-level Kind is not KindParallel; a linear system is only defined for
// the parallel case of closure (§4.6).
var ErrNotParallel = errors.New("closure: linear system requires a parallel term")
