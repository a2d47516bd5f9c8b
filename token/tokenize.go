package token

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Tokenize scans a formula into its token sequence.  It either consumes
// the whole input or fails with a LexErr at the first unrecognized
// character.
func Tokenize(d []byte) ([]Token, error) {
	pd := NewPosDoc(d)
	toks := []Token{}
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		switch {
		case unicode.IsSpace(r):
			i += sz

		case r == '(':
			toks = append(toks, tok(TLParen, pd, i, d[i:i+sz]))
			i += sz
		case r == ')':
			toks = append(toks, tok(TRParen, pd, i, d[i:i+sz]))
			i += sz

		case r == '~' || r == '!' || r == '¬':
			toks = append(toks, tok(TNot, pd, i, d[i:i+sz]))
			i += sz
		case r == '&' || r == '∧':
			toks = append(toks, tok(TAnd, pd, i, d[i:i+sz]))
			i += sz
		case r == '|' || r == '∨':
			toks = append(toks, tok(TOr, pd, i, d[i:i+sz]))
			i += sz

		case r == '<':
			// "<->" and "<=>" are the only lexemes starting with '<';
			// checked before any shorter arrow so a leading '<' is
			// never mistaken for one.
			if bytes.HasPrefix(d[i:], []byte("<->")) || bytes.HasPrefix(d[i:], []byte("<=>")) {
				toks = append(toks, tok(TEquiv, pd, i, d[i:i+3]))
				i += 3
				break
			}
			return nil, NewLexErr(r, pd.Pos(i))

		case r == '-':
			if bytes.HasPrefix(d[i:], []byte("->")) {
				toks = append(toks, tok(TImplies, pd, i, d[i:i+2]))
				i += 2
				break
			}
			return nil, NewLexErr(r, pd.Pos(i))
		case r == '=':
			if bytes.HasPrefix(d[i:], []byte("=>")) {
				toks = append(toks, tok(TImplies, pd, i, d[i:i+2]))
				i += 2
				break
			}
			return nil, NewLexErr(r, pd.Pos(i))

		case unicode.IsLetter(r):
			end := i + sz
			for end < len(d) {
				rr, rsz := utf8.DecodeRune(d[end:])
				if rr != '_' && !unicode.IsLetter(rr) && !unicode.IsDigit(rr) {
					break
				}
				end += rsz
			}
			toks = append(toks, tok(TVar, pd, i, d[i:end]))
			i = end

		default:
			return nil, NewLexErr(r, pd.Pos(i))
		}
	}
	return toks, nil
}

func tok(tt TokenType, pd *PosDoc, i int, b []byte) Token {
	return Token{Type: tt, Pos: pd.Pos(i), Bytes: b}
}
