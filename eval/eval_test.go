package eval

import (
	"errors"
	"testing"

	"github.com/truthtab/truthtab/ir"
	"github.com/truthtab/truthtab/parse"
	"github.com/truthtab/truthtab/token"
)

func mustParse(t *testing.T, src string) ir.Node {
	t.Helper()
	toks, err := token.Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	n, err := parse.Parse(toks)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n
}

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		a    Assignment
		want bool
	}{
		{"A", Assignment{"A": true}, true},
		{"A", Assignment{"A": false}, false},
		{"~A", Assignment{"A": true}, false},
		{"~~A", Assignment{"A": true}, true},

		{"A & B", Assignment{"A": true, "B": true}, true},
		{"A & B", Assignment{"A": true, "B": false}, false},
		{"A | B", Assignment{"A": false, "B": false}, false},
		{"A | B", Assignment{"A": false, "B": true}, true},

		// implication is false only for true -> false
		{"A -> B", Assignment{"A": true, "B": false}, false},
		{"A -> B", Assignment{"A": false, "B": false}, true},
		{"A -> B", Assignment{"A": false, "B": true}, true},

		{"A <-> B", Assignment{"A": true, "B": true}, true},
		{"A <-> B", Assignment{"A": false, "B": false}, true},
		{"A <-> B", Assignment{"A": true, "B": false}, false},

		{"(A | B) & ~C", Assignment{"A": false, "B": true, "C": false}, true},
	}
	for _, tc := range tests {
		got, err := Eval(mustParse(t, tc.src), tc.a)
		if err != nil {
			t.Errorf("Eval(%q, %v): %v", tc.src, tc.a, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Eval(%q, %v) = %v, want %v", tc.src, tc.a, got, tc.want)
		}
	}
}

func TestEvalUnbound(t *testing.T) {
	n := mustParse(t, "A & B")
	_, err := Eval(n, Assignment{"A": true})
	if err == nil {
		t.Fatal("expected unbound variable error")
	}
	if !errors.Is(err, ErrUnboundVar) {
		t.Errorf("error %v does not wrap ErrUnboundVar", err)
	}
	var ue *UnboundVarErr
	if !errors.As(err, &ue) {
		t.Fatalf("error %v is not a *UnboundVarErr", err)
	}
	if ue.Name != "B" {
		t.Errorf("unbound name %q, want B", ue.Name)
	}
}
