package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokLite struct {
	Type TokenType
	Text string
}

func lite(toks []Token) []tokLite {
	res := make([]tokLite, len(toks))
	for i := range toks {
		res[i] = tokLite{Type: toks[i].Type, Text: string(toks[i].Bytes)}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []tokLite
	}{
		{
			in: "A -> B",
			want: []tokLite{
				{TVar, "A"}, {TImplies, "->"}, {TVar, "B"},
			},
		},
		{
			in: "(A & B) | ~C",
			want: []tokLite{
				{TLParen, "("}, {TVar, "A"}, {TAnd, "&"}, {TVar, "B"},
				{TRParen, ")"}, {TOr, "|"}, {TNot, "~"}, {TVar, "C"},
			},
		},
		{
			in: "A <-> B <=> C",
			want: []tokLite{
				{TVar, "A"}, {TEquiv, "<->"}, {TVar, "B"}, {TEquiv, "<=>"}, {TVar, "C"},
			},
		},
		{
			in: "¬A ∧ B ∨ C",
			want: []tokLite{
				{TNot, "¬"}, {TVar, "A"}, {TAnd, "∧"}, {TVar, "B"}, {TOr, "∨"}, {TVar, "C"},
			},
		},
		{
			in: "!p1 => q_2",
			want: []tokLite{
				{TNot, "!"}, {TVar, "p1"}, {TImplies, "=>"}, {TVar, "q_2"},
			},
		},
		{
			in: "  rain\t->\nwet ",
			want: []tokLite{
				{TVar, "rain"}, {TImplies, "->"}, {TVar, "wet"},
			},
		},
		{
			in:   "",
			want: []tokLite{},
		},
	}
	for _, tc := range tests {
		toks, err := Tokenize([]byte(tc.in))
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, lite(toks)); d != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", tc.in, d)
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	tests := []struct {
		in       string
		wantRune rune
		wantOff  int
	}{
		{"A @ B", '@', 2},
		{"A - B", '-', 2},
		{"A = B", '=', 2},
		{"A < B", '<', 2},
		{"<", '<', 0},
		{"A & 1", '1', 4},
		{"¬A ? B", '?', 4}, // '¬' is two bytes
	}
	for _, tc := range tests {
		_, err := Tokenize([]byte(tc.in))
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", tc.in)
			continue
		}
		if !errors.Is(err, ErrLex) {
			t.Errorf("Tokenize(%q): error %v does not wrap ErrLex", tc.in, err)
		}
		var le *LexErr
		if !errors.As(err, &le) {
			t.Errorf("Tokenize(%q): error %v is not a *LexErr", tc.in, err)
			continue
		}
		if le.Rune != tc.wantRune {
			t.Errorf("Tokenize(%q): rune %q, want %q", tc.in, le.Rune, tc.wantRune)
		}
		if le.Pos.I != tc.wantOff {
			t.Errorf("Tokenize(%q): offset %d, want %d", tc.in, le.Pos.I, tc.wantOff)
		}
	}
}

func TestTokenPos(t *testing.T) {
	toks, err := Tokenize([]byte("A &\nB"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens", len(toks))
	}
	if got := toks[2].Pos.String(); got != "2:1" {
		t.Errorf("pos of B: %s, want 2:1", got)
	}
	if l, c := toks[1].Pos.LineCol(); l != 0 || c != 2 {
		t.Errorf("pos of &: %d:%d, want 0:2", l, c)
	}
}
