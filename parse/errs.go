package parse

import (
	"errors"
	"fmt"

	"github.com/truthtab/truthtab/token"
)

var (
	ErrParse = errors.New("parse error")

	// ErrTooDeep guards the recursive descent against inputs nested
	// past maxDepth, which would otherwise exhaust the call stack.
	ErrTooDeep = errors.New("formula too deeply nested")
)

// ParseErr carries the offending token, or nil at end of input.
type ParseErr struct {
	Tok  *token.Token
	Want string
}

func (e *ParseErr) Error() string {
	if e.Tok == nil {
		return fmt.Sprintf("%s: unexpected end of input, expected %s", ErrParse, e.Want)
	}
	return fmt.Sprintf("%s: unexpected %q at %s, expected %s",
		ErrParse, string(e.Tok.Bytes), e.Tok.Pos, e.Want)
}

func (e *ParseErr) Unwrap() error {
	return ErrParse
}
