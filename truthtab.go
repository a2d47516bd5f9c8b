// Package truthtab compiles a propositional formula, enumerates its
// truth table and derives its disjunctive and conjunctive normal
// forms.
//
// The whole pipeline is one pure call:
//
//	res, err := truthtab.Compile("A -> B")
//
// Either a complete Result comes back or a typed error; never a
// partial result.  Errors wrap one of token.ErrLex, parse.ErrParse,
// parse.ErrTooDeep, eval.ErrUnboundVar or table.ErrTooManyVars.
package truthtab

import (
	"github.com/truthtab/truthtab/debug"
	"github.com/truthtab/truthtab/ir"
	"github.com/truthtab/truthtab/nf"
	"github.com/truthtab/truthtab/parse"
	"github.com/truthtab/truthtab/table"
	"github.com/truthtab/truthtab/token"
)

// Result is the complete output of compiling one formula.
type Result struct {
	Source string
	AST    ir.Node
	Vars   []string
	Table  *table.Table
	DNF    nf.Form
	CNF    nf.Form
}

type Option func(*opts)

type opts struct {
	tableOpts []table.Option
}

// WithMaxVars overrides the enumeration cap of table.DefaultMaxVars.
func WithMaxVars(n int) Option {
	return func(o *opts) {
		o.tableOpts = append(o.tableOpts, table.WithMaxVars(n))
	}
}

// Compile runs tokenize → parse → enumerate → derive over src.
func Compile(src string, options ...Option) (*Result, error) {
	o := &opts{}
	for _, f := range options {
		f(o)
	}
	toks, err := token.Tokenize([]byte(src))
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("token %s", toks[i].Info())
		}
	}
	ast, err := parse.Parse(toks)
	if err != nil {
		return nil, err
	}
	if debug.AST() {
		debug.Logf("ast %s", ast)
	}
	tbl, err := table.New(ast, o.tableOpts...)
	if err != nil {
		return nil, err
	}
	if debug.Table() {
		debug.Logf("table %d vars, %d rows", len(tbl.Vars), len(tbl.Rows))
	}
	return &Result{
		Source: src,
		AST:    ast,
		Vars:   tbl.Vars,
		Table:  tbl,
		DNF:    nf.DNF(tbl),
		CNF:    nf.CNF(tbl),
	}, nil
}
