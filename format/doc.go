// Package format names the output formats the renderers understand.
package format
