// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.

package builder

import "errors"

// ErrEmptyAlphabet indicates Word or Alphabet was called with an empty
// string, which has no well-defined term (there is no "empty primitive").
// Usage: if errors.Is(err, ErrEmptyAlphabet) { /* reject empty input */ }.
var ErrEmptyAlphabet = errors.New("builder: empty alphabet or word")
