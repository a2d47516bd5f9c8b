package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	MarkdownFormat
	JSONFormat
	YAMLFormat
	DimacsFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":        TextFormat,
		"text":     TextFormat,
		"m":        MarkdownFormat,
		"md":       MarkdownFormat,
		"markdown": MarkdownFormat,
		"j":        JSONFormat,
		"json":     JSONFormat,
		"y":        YAMLFormat,
		"yaml":     YAMLFormat,
		"d":        DimacsFormat,
		"dimacs":   DimacsFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case MarkdownFormat:
		return []byte("markdown"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case DimacsFormat:
		return []byte("dimacs"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
