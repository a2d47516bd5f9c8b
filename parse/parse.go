package parse

import (
	"fmt"

	"github.com/truthtab/truthtab/ir"
	"github.com/truthtab/truthtab/token"
)

const maxDepth = 512

// Parse consumes the whole token sequence and returns the formula
// tree.  Unconsumed trailing tokens are an error.
func Parse(toks []token.Token) (ir.Node, error) {
	p := &parser{toks: toks}
	n, err := p.equiv(0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, &ParseErr{Tok: t, Want: "end of input"}
	}
	return n, nil
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) at(tt token.TokenType) bool {
	t := p.peek()
	return t != nil && t.Type == tt
}

func (p *parser) equiv(depth int) (ir.Node, error) {
	return p.binary(depth, token.TEquiv, ir.Equiv, p.implies)
}

func (p *parser) implies(depth int) (ir.Node, error) {
	return p.binary(depth, token.TImplies, ir.Implies, p.or)
}

func (p *parser) or(depth int) (ir.Node, error) {
	return p.binary(depth, token.TOr, ir.Or, p.and)
}

func (p *parser) and(depth int) (ir.Node, error) {
	return p.binary(depth, token.TAnd, ir.And, p.not)
}

// binary parses next ( tt next )*, folding left.
func (p *parser) binary(depth int, tt token.TokenType, op ir.Op, next func(int) (ir.Node, error)) (ir.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, maxDepth)
	}
	left, err := next(depth + 1)
	if err != nil {
		return nil, err
	}
	for p.at(tt) {
		p.i++
		right, err := next(depth + 1)
		if err != nil {
			return nil, err
		}
		left = &ir.Binary{Op: op, L: left, R: right}
	}
	return left, nil
}

func (p *parser) not(depth int) (ir.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, maxDepth)
	}
	if p.at(token.TNot) {
		p.i++
		x, err := p.not(depth + 1)
		if err != nil {
			return nil, err
		}
		return &ir.Not{X: x}, nil
	}
	return p.primary(depth + 1)
}

func (p *parser) primary(depth int) (ir.Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, maxDepth)
	}
	t := p.peek()
	if t == nil {
		return nil, &ParseErr{Want: "a variable or '('"}
	}
	switch t.Type {
	case token.TVar:
		p.i++
		return &ir.Var{Name: string(t.Bytes)}, nil
	case token.TLParen:
		p.i++
		n, err := p.equiv(depth + 1)
		if err != nil {
			return nil, err
		}
		if !p.at(token.TRParen) {
			return nil, &ParseErr{Tok: p.peek(), Want: "')'"}
		}
		p.i++
		return n, nil
	default:
		return nil, &ParseErr{Tok: t, Want: "a variable or '('"}
	}
}
