package splicing

import "errors"

// ErrVariableInTerm indicates a Variable node was found in a term passed to
// a splicing/remainder operation, all of which are defined only for closed
// terms. This is the "Malformed term" error kind of spec §7.
var ErrVariableInTerm = errors.New("splicing: variable node in term")
