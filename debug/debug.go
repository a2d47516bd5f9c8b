package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	AST    bool
	Table  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("TT_DEBUG_TOKENS")
	d.AST = boolEnv("TT_DEBUG_AST")
	d.Table = boolEnv("TT_DEBUG_TABLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func AST() bool {
	return d.AST
}
func Table() bool {
	return d.Table
}

func Logf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
}
