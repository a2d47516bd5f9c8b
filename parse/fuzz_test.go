package parse

import (
	"testing"

	"github.com/truthtab/truthtab/token"
)

// FuzzParse checks that arbitrary input either fails with a typed
// error or yields a tree whose canonical rendering is a fixed point of
// the tokenizer and parser.
func FuzzParse(f *testing.F) {
	f.Add("A -> B")
	f.Add("(A | B) & ~C")
	f.Add("A <-> B <=> C")
	f.Add("¬x ∧ y ∨ z")
	f.Add("((((P))))")
	f.Add("p -> q -> r")
	f.Fuzz(func(t *testing.T, src string) {
		toks, err := token.Tokenize([]byte(src))
		if err != nil {
			return
		}
		n, err := Parse(toks)
		if err != nil {
			return
		}
		s := n.String()
		toks2, err := token.Tokenize([]byte(s))
		if err != nil {
			t.Fatalf("rendering %q of %q does not tokenize: %v", s, src, err)
		}
		n2, err := Parse(toks2)
		if err != nil {
			t.Fatalf("rendering %q of %q does not parse: %v", s, src, err)
		}
		if s2 := n2.String(); s != s2 {
			t.Fatalf("rendering is not a fixed point: %q vs %q", s, s2)
		}
	})
}
