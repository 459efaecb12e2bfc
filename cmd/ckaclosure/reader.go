package main

import (
	"fmt"
	"strings"

	"github.com/ck-algebra/closure/builder"
	"github.com/ck-algebra/closure/term"
)

// parseTerm reads a single term.Term from a tiny prefix s-expression
// syntax: "0", "1", a bare letter, or a parenthesized operator application
// "(+ t1 t2 ...)", "(. t1 t2 ...)", "(|| t1 t2 ...)", "(* t)". This reader
// is a CLI-only convenience; term/splicing/closure never import it.
func parseTerm(src string) (*term.Term, error) {
	toks := tokenize(src)
	if len(toks) == 0 {
		return nil, fmt.Errorf("ckaclosure: empty input")
	}

	p := &parser{toks: toks}
	t, err := p.parseOne()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("ckaclosure: trailing input after term: %q", strings.Join(p.toks[p.pos:], " "))
	}
	return t, nil
}

func tokenize(src string) []string {
	src = strings.ReplaceAll(src, "(", " ( ")
	src = strings.ReplaceAll(src, ")", " ) ")
	return strings.Fields(src)
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) parseOne() (*term.Term, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("ckaclosure: unexpected end of input")
	}

	switch {
	case tok == "(":
		return p.parseApplication()
	case tok == ")":
		return nil, fmt.Errorf("ckaclosure: unexpected %q", tok)
	case tok == "0":
		return term.Zero(), nil
	case tok == "1":
		return term.One(), nil
	default:
		return term.Primitive(tok), nil
	}
}

func (p *parser) parseApplication() (*term.Term, error) {
	op, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("ckaclosure: unexpected end of input after %q", "(")
	}

	var operands []*term.Term
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("ckaclosure: unterminated %q application", op)
		}
		if tok == ")" {
			p.pos++
			break
		}
		t, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		operands = append(operands, t)
	}

	switch op {
	case "+":
		return builder.Choice(operands...), nil
	case ".":
		return builder.Sequential(operands...), nil
	case "||":
		return builder.Parallel(operands...), nil
	case "*":
		if len(operands) != 1 {
			return nil, fmt.Errorf("ckaclosure: %q takes exactly one operand, got %d", op, len(operands))
		}
		return operands[0].Star(), nil
	default:
		return nil, fmt.Errorf("ckaclosure: unknown operator %q", op)
	}
}
