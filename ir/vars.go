package ir

import (
	"sort"

	"github.com/xtgo/set"
)

// Vars returns the distinct variable names referenced anywhere in the
// tree, sorted bytewise ascending.  The result is the canonical
// column and bit order for truth-table enumeration, so it must come
// out identical for a given tree no matter the traversal.
func Vars(n Node) []string {
	names := collect(n, nil)
	sort.Strings(names)
	names = names[:set.Uniq(sort.StringSlice(names))]
	return names
}

func collect(n Node, names []string) []string {
	switch n := n.(type) {
	case *Var:
		return append(names, n.Name)
	case *Not:
		return collect(n.X, names)
	case *Binary:
		return collect(n.R, collect(n.L, names))
	default:
		panic("ir: unknown node")
	}
}
