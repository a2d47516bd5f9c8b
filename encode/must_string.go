package encode

import (
	"bytes"

	"github.com/truthtab/truthtab"
)

// MustString renders res to a string, panicking on encoding failure.
// Handy in tests and examples where the writer cannot fail.
func MustString(res *truthtab.Result, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(res, &buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
