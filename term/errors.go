package term

import "errors"

// ErrVariableInClosedTerm indicates that a Variable node was found while
// evaluating an operation defined only for closed terms (Width, Nullable,
// IsTrivial). This is the "Malformed term" error kind: Variable exists only
// to label placeholders inside a solved linear system's diagnostic
// rendering and must never reach a closed-term operation.
var ErrVariableInClosedTerm = errors.New("term: variable node in closed-term operation")
