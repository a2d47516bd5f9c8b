package eval

import (
	"errors"
	"fmt"

	"github.com/truthtab/truthtab/ir"
)

// Assignment maps every variable of a formula to a truth value.
type Assignment map[string]bool

// ErrUnboundVar is the sentinel for evaluation under an incomplete
// assignment.  It cannot arise when the assignment is built from
// ir.Vars of the same tree, but callers composing their own
// assignments get a typed failure instead of a wrong answer.
var ErrUnboundVar = errors.New("unbound variable")

type UnboundVarErr struct {
	Name string
}

func (e *UnboundVarErr) Error() string {
	return fmt.Sprintf("%s: %q has no assigned value", ErrUnboundVar, e.Name)
}

func (e *UnboundVarErr) Unwrap() error {
	return ErrUnboundVar
}

// Eval computes the truth value of n under a.
func Eval(n ir.Node, a Assignment) (bool, error) {
	switch n := n.(type) {
	case *ir.Var:
		v, ok := a[n.Name]
		if !ok {
			return false, &UnboundVarErr{Name: n.Name}
		}
		return v, nil
	case *ir.Not:
		v, err := Eval(n.X, a)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *ir.Binary:
		l, err := Eval(n.L, a)
		if err != nil {
			return false, err
		}
		r, err := Eval(n.R, a)
		if err != nil {
			return false, err
		}
		switch n.Op {
		case ir.And:
			return l && r, nil
		case ir.Or:
			return l || r, nil
		case ir.Implies:
			return !l || r, nil
		case ir.Equiv:
			return l == r, nil
		}
	}
	panic("eval: unknown node")
}
