package table

import (
	"errors"
	"fmt"

	"github.com/truthtab/truthtab/eval"
	"github.com/truthtab/truthtab/ir"
)

// DefaultMaxVars bounds enumeration to 65536 rows.  Enumeration is
// O(2ⁿ·n) and n comes straight from untrusted input, so the cap is
// checked before any row is produced.
const DefaultMaxVars = 16

// ErrTooManyVars is the sentinel for formulas over the variable cap.
var ErrTooManyVars = errors.New("too many variables")

type TooManyVarsErr struct {
	Count, Max int
}

func (e *TooManyVarsErr) Error() string {
	return fmt.Sprintf("%s: %d variables, at most %d allowed", ErrTooManyVars, e.Count, e.Max)
}

func (e *TooManyVarsErr) Unwrap() error {
	return ErrTooManyVars
}

type Option func(*opts)

type opts struct {
	maxVars int
}

func WithMaxVars(n int) Option {
	return func(o *opts) { o.maxVars = n }
}

// Row is one enumerated assignment and the formula's value under it.
// Values is aligned to the table's Vars.
type Row struct {
	Values []bool
	Result bool
}

type Table struct {
	Vars []string
	Rows []Row
}

// New enumerates the truth table of n.
func New(n ir.Node, options ...Option) (*Table, error) {
	o := &opts{maxVars: DefaultMaxVars}
	for _, f := range options {
		f(o)
	}
	vars := ir.Vars(n)
	if len(vars) > o.maxVars {
		return nil, &TooManyVarsErr{Count: len(vars), Max: o.maxVars}
	}
	nv := len(vars)
	rows := make([]Row, 0, 1<<nv)
	for i := 1<<nv - 1; i >= 0; i-- {
		a := make(eval.Assignment, nv)
		vals := make([]bool, nv)
		for j, name := range vars {
			vals[j] = i&(1<<(nv-j-1)) != 0
			a[name] = vals[j]
		}
		res, err := eval.Eval(n, a)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Values: vals, Result: res})
	}
	return &Table{Vars: vars, Rows: rows}, nil
}
