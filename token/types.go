package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TNot
	TAnd
	TOr
	TImplies
	TEquiv
	TVar
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TNot:     "TNot",
		TAnd:     "TAnd",
		TOr:      "TOr",
		TImplies: "TImplies",
		TEquiv:   "TEquiv",
		TVar:     "TVar",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, string(t.Bytes), t.Pos)
}

// ErrLex is the sentinel for all scanning failures.
var ErrLex = errors.New("lex error")

// LexErr reports an unrecognized character and where it was found.
type LexErr struct {
	Rune rune
	Pos  Pos
}

func NewLexErr(r rune, p *Pos) *LexErr {
	return &LexErr{Rune: r, Pos: *p}
}

func (e *LexErr) Error() string {
	return fmt.Sprintf("%s: unrecognized character %q at %s (offset %d)",
		ErrLex, e.Rune, &e.Pos, e.Pos.I)
}

func (e *LexErr) Unwrap() error {
	return ErrLex
}
