package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/truthtab/truthtab"
	"github.com/truthtab/truthtab/format"
	"github.com/truthtab/truthtab/nf"
)

type EncState struct {
	format     format.Format
	glyphTrue  string
	glyphFalse string
	forms      bool

	Color func(ColorAttr, string) string
}

// Encode writes res to w in the configured format.
func Encode(res *truthtab.Result, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		glyphTrue:  "T",
		glyphFalse: "F",
		forms:      true,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(res, w, es)
	case format.MarkdownFormat:
		return encodeMarkdown(res, w, es)
	case format.JSONFormat:
		return encodeDoc(res, w, json.Marshal)
	case format.YAMLFormat:
		return encodeDoc(res, w, yaml.Marshal)
	case format.DimacsFormat:
		return nf.Dimacs(res.CNF, res.Vars, w)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) color(attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

func (es *EncState) glyph(v bool) (string, ColorAttr) {
	if v {
		return es.glyphTrue, TrueColor
	}
	return es.glyphFalse, FalseColor
}

func encodeText(res *truthtab.Result, w io.Writer, es *EncState) error {
	widths := make([]int, len(res.Vars))
	cells := make([]string, len(res.Vars))
	for j, name := range res.Vars {
		widths[j] = len(name)
		cells[j] = es.color(HeaderColor, name)
	}
	sep := es.color(SepColor, " | ")
	header := strings.Join(cells, "  ") + sep + es.color(HeaderColor, res.Source)
	if err := writeLn(w, header); err != nil {
		return err
	}
	for _, row := range res.Table.Rows {
		for j, v := range row.Values {
			g, attr := es.glyph(v)
			cells[j] = es.color(attr, pad(g, widths[j]))
		}
		g, attr := es.glyph(row.Result)
		if err := writeLn(w, strings.Join(cells, "  ")+sep+es.color(attr, g)); err != nil {
			return err
		}
	}
	if !es.forms {
		return nil
	}
	if err := writeLn(w, ""); err != nil {
		return err
	}
	if err := writeLn(w, "dnf: "+es.color(FormColor, res.DNF.String())); err != nil {
		return err
	}
	return writeLn(w, "cnf: "+es.color(FormColor, res.CNF.String()))
}

func encodeMarkdown(res *truthtab.Result, w io.Writer, es *EncState) error {
	cols := append(append([]string{}, res.Vars...), "`"+res.Source+"`")
	if err := writeLn(w, "| "+strings.Join(cols, " | ")+" |"); err != nil {
		return err
	}
	for j := range cols {
		cols[j] = "---"
	}
	if err := writeLn(w, "| "+strings.Join(cols, " | ")+" |"); err != nil {
		return err
	}
	for _, row := range res.Table.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		for _, v := range row.Values {
			g, _ := es.glyph(v)
			cells = append(cells, g)
		}
		g, _ := es.glyph(row.Result)
		cells = append(cells, g)
		if err := writeLn(w, "| "+strings.Join(cells, " | ")+" |"); err != nil {
			return err
		}
	}
	if !es.forms {
		return nil
	}
	if err := writeLn(w, ""); err != nil {
		return err
	}
	if err := writeLn(w, "- DNF: `"+res.DNF.String()+"`"); err != nil {
		return err
	}
	return writeLn(w, "- CNF: `"+res.CNF.String()+"`")
}

// doc is the wire shape shared by the JSON and YAML encodings.
type doc struct {
	Source string   `json:"source" yaml:"source"`
	Vars   []string `json:"vars" yaml:"vars"`
	Rows   []docRow `json:"rows" yaml:"rows"`
	DNF    string   `json:"dnf" yaml:"dnf"`
	CNF    string   `json:"cnf" yaml:"cnf"`
}

type docRow struct {
	Values []bool `json:"values" yaml:"values"`
	Result bool   `json:"result" yaml:"result"`
}

func encodeDoc(res *truthtab.Result, w io.Writer, marshal func(any) ([]byte, error)) error {
	d := doc{
		Source: res.Source,
		Vars:   res.Vars,
		Rows:   make([]docRow, len(res.Table.Rows)),
		DNF:    res.DNF.String(),
		CNF:    res.CNF.String(),
	}
	for i, row := range res.Table.Rows {
		d.Rows[i] = docRow{Values: row.Values, Result: row.Result}
	}
	b, err := marshal(d)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	if len(b) > 0 && b[len(b)-1] != '\n' {
		_, err = w.Write([]byte{'\n'})
	}
	return err
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func writeLn(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
