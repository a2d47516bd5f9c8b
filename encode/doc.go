// Package encode renders a compiled formula result as text, markdown,
// JSON, YAML or DIMACS.
//
// The core pipeline produces structure only; everything about glyphs,
// alignment, grouping and color lives here.
package encode
