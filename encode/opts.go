package encode

import "github.com/truthtab/truthtab/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeGlyphs sets the glyphs printed for true and false cells.
// Defaults are "T" and "F".
func EncodeGlyphs(tGlyph, fGlyph string) EncodeOption {
	return func(es *EncState) {
		es.glyphTrue = tGlyph
		es.glyphFalse = fGlyph
	}
}

// EncodeForms controls whether the dnf/cnf lines follow the table in
// text and markdown output.
func EncodeForms(v bool) EncodeOption {
	return func(es *EncState) { es.forms = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
