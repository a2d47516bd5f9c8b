package encode

import (
	"encoding/json"
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/truthtab/truthtab"
	"github.com/truthtab/truthtab/format"
)

func mustCompile(t *testing.T, src string) *truthtab.Result {
	t.Helper()
	res, err := truthtab.Compile(src)
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return res
}

func diffErr(t *testing.T, what, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffpatch.New()
	t.Errorf("%s mismatch:\n%s", what,
		dmp.DiffPrettyText(dmp.DiffMain(want, got, false)))
}

func TestEncodeText(t *testing.T) {
	res := mustCompile(t, "A -> B")
	want := `A  B | A -> B
T  T | T
T  F | F
F  T | T
F  F | T

dnf: (A & B) | (~A & B) | (~A & ~B)
cnf: (~A | B)
`
	diffErr(t, "text", want, MustString(res))
}

func TestEncodeTextNoForms(t *testing.T) {
	res := mustCompile(t, "A & B")
	want := `A  B | A & B
T  T | T
T  F | F
F  T | F
F  F | F
`
	diffErr(t, "text", want, MustString(res, EncodeForms(false)))
}

func TestEncodeTextGlyphs(t *testing.T) {
	res := mustCompile(t, "p")
	want := `p | p
1 | 1
0 | 0
`
	diffErr(t, "text", want, MustString(res, EncodeGlyphs("1", "0"), EncodeForms(false)))
}

func TestEncodeMarkdown(t *testing.T) {
	res := mustCompile(t, "A -> B")
	want := "| A | B | `A -> B` |\n" +
		"| --- | --- | --- |\n" +
		"| T | T | T |\n" +
		"| T | F | F |\n" +
		"| F | T | T |\n" +
		"| F | F | T |\n" +
		"\n" +
		"- DNF: `(A & B) | (~A & B) | (~A & ~B)`\n" +
		"- CNF: `(~A | B)`\n"
	diffErr(t, "markdown", want, MustString(res, EncodeFormat(format.MarkdownFormat)))
}

func TestEncodeJSON(t *testing.T) {
	res := mustCompile(t, "A -> B")
	var d struct {
		Source string   `json:"source"`
		Vars   []string `json:"vars"`
		Rows   []struct {
			Values []bool `json:"values"`
			Result bool   `json:"result"`
		} `json:"rows"`
		DNF string `json:"dnf"`
		CNF string `json:"cnf"`
	}
	s := MustString(res, EncodeFormat(format.JSONFormat))
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		t.Fatalf("unmarshal %q: %v", s, err)
	}
	if d.Source != "A -> B" || len(d.Vars) != 2 || len(d.Rows) != 4 {
		t.Errorf("unexpected doc: %+v", d)
	}
	if d.CNF != "(~A | B)" {
		t.Errorf("cnf %q", d.CNF)
	}
	if d.Rows[1].Result {
		t.Errorf("row 1 should be false: %+v", d.Rows[1])
	}
}

func TestEncodeYAML(t *testing.T) {
	res := mustCompile(t, "A & B")
	s := MustString(res, EncodeFormat(format.YAMLFormat))
	for _, want := range []string{"source: A & B", "vars:", "- A", "- B", "dnf: (A & B)"} {
		if !strings.Contains(s, want) {
			t.Errorf("yaml output missing %q:\n%s", want, s)
		}
	}
}

func TestEncodeDimacs(t *testing.T) {
	res := mustCompile(t, "A & B")
	s := MustString(res, EncodeFormat(format.DimacsFormat))
	if !strings.HasPrefix(s, "p cnf 2 3\n") {
		t.Errorf("dimacs output:\n%s", s)
	}
}

func TestEncodeColorsTTY(t *testing.T) {
	// the color hook runs over every cell; with a pass-through hook
	// output equals the plain rendering
	res := mustCompile(t, "A | B")
	c := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	plain := MustString(res)
	hooked := MustString(res, EncodeColors(c))
	diffErr(t, "pass-through colors", plain, hooked)
}
