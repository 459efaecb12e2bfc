package builder

import (
	"fmt"

	"github.com/ck-algebra/closure/term"
)

// Word returns the sequential composition of one Primitive per rune of
// letters, in input order: Word("ab") = Primitive("a").Then(Primitive("b")).
// Word("") returns ErrEmptyAlphabet.
func Word(letters string) (*term.Term, error) {
	if letters == "" {
		return nil, fmt.Errorf("Word: %w", ErrEmptyAlphabet)
	}

	runes := []rune(letters)
	acc := term.Primitive(string(runes[0]))
	for _, r := range runes[1:] {
		acc = acc.Then(term.Primitive(string(r)))
	}
	return acc, nil
}

// Alphabet returns the choice of one Primitive per distinct rune of
// letters, in first-occurrence order: Alphabet("aba") = Primitive("a").Plus(Primitive("b")).
// Alphabet("") returns ErrEmptyAlphabet.
func Alphabet(letters string) (*term.Term, error) {
	if letters == "" {
		return nil, fmt.Errorf("Alphabet: %w", ErrEmptyAlphabet)
	}

	seen := make(map[rune]bool)
	var acc *term.Term
	for _, r := range letters {
		if seen[r] {
			continue
		}
		seen[r] = true
		p := term.Primitive(string(r))
		if acc == nil {
			acc = p
		} else {
			acc = acc.Plus(p)
		}
	}
	return acc, nil
}
