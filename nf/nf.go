package nf

import (
	"strings"

	"github.com/truthtab/truthtab/ir"
	"github.com/truthtab/truthtab/table"
)

// Literal is a variable or its negation.
type Literal struct {
	Name    string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "~" + l.Name
	}
	return l.Name
}

// Clause is an ordered run of literals, following the canonical
// variable order of the table it came from.  Within a DNF the literals
// are conjoined; within a CNF, disjoined.
type Clause []Literal

// Conn is the connective joining the clauses of a form.
type Conn int

const (
	ConnAnd Conn = iota // CNF: AND of maxterms
	ConnOr              // DNF: OR of minterms
)

func (c Conn) String() string {
	if c == ConnAnd {
		return "&"
	}
	return "|"
}

// inner returns the connective used inside a clause.
func (c Conn) inner() string {
	if c == ConnAnd {
		return " | "
	}
	return " & "
}

// Const marks a degenerate form with no clauses.
type Const int

const (
	NoConst    Const = iota
	ConstTrue        // CNF of a tautology
	ConstFalse       // DNF of a contradiction
)

// Form is a normal form: clauses joined by Conn, or a constant when
// the clause list is empty.
type Form struct {
	Conn    Conn
	Clauses []Clause
	Const   Const
}

// DNF builds the disjunctive normal form: one minterm per true row,
// each literal as-is where the row holds the variable true and negated
// where false.
func DNF(t *table.Table) Form {
	var clauses []Clause
	for _, row := range t.Rows {
		if !row.Result {
			continue
		}
		c := make(Clause, len(t.Vars))
		for j, name := range t.Vars {
			c[j] = Literal{Name: name, Negated: !row.Values[j]}
		}
		clauses = append(clauses, c)
	}
	if len(clauses) == 0 {
		return Form{Conn: ConnOr, Const: ConstFalse}
	}
	return Form{Conn: ConnOr, Clauses: clauses}
}

// CNF builds the conjunctive normal form: one maxterm per false row.
// The polarity flips relative to DNF: a variable true in the row
// contributes its negated literal.  That drives every literal of the
// maxterm false exactly on its originating row, while any other row
// differs somewhere and flips at least one literal true.
func CNF(t *table.Table) Form {
	var clauses []Clause
	for _, row := range t.Rows {
		if row.Result {
			continue
		}
		c := make(Clause, len(t.Vars))
		for j, name := range t.Vars {
			c[j] = Literal{Name: name, Negated: row.Values[j]}
		}
		clauses = append(clauses, c)
	}
	if len(clauses) == 0 {
		return Form{Conn: ConnAnd, Const: ConstTrue}
	}
	return Form{Conn: ConnAnd, Clauses: clauses}
}

// String renders the form with ASCII connectives.  Single-literal
// clauses carry no grouping; longer clauses are parenthesized.
func (f Form) String() string {
	switch f.Const {
	case ConstTrue:
		return "true"
	case ConstFalse:
		return "false"
	}
	parts := make([]string, len(f.Clauses))
	for i, c := range f.Clauses {
		lits := make([]string, len(c))
		for j, l := range c {
			lits[j] = l.String()
		}
		if len(c) == 1 {
			parts[i] = lits[0]
			continue
		}
		parts[i] = "(" + strings.Join(lits, f.Conn.inner()) + ")"
	}
	return strings.Join(parts, " "+f.Conn.String()+" ")
}

// Node rebuilds a formula tree from the form, for feeding back through
// the pipeline.  Degenerate constants have no tree shape and yield
// nil.
func (f Form) Node() ir.Node {
	if f.Const != NoConst {
		return nil
	}
	inner := ir.Or
	if f.Conn == ConnOr {
		inner = ir.And
	}
	var root ir.Node
	for _, c := range f.Clauses {
		var cl ir.Node
		for _, l := range c {
			var lit ir.Node = &ir.Var{Name: l.Name}
			if l.Negated {
				lit = &ir.Not{X: lit}
			}
			if cl == nil {
				cl = lit
			} else {
				cl = &ir.Binary{Op: inner, L: cl, R: lit}
			}
		}
		if root == nil {
			root = cl
		} else {
			root = &ir.Binary{Op: f.Conn.outerOp(), L: root, R: cl}
		}
	}
	return root
}

func (c Conn) outerOp() ir.Op {
	if c == ConnAnd {
		return ir.And
	}
	return ir.Or
}
