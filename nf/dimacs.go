package nf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dimacs writes the CNF in DIMACS format, suitable for any SAT solver.
// vars is the canonical variable list; variable j maps to the DIMACS
// index j+1, recorded in "c name=index" comment lines after the
// prolog.  A constant-true form has no clauses; a constant-false form
// is written as the single empty clause.
func Dimacs(f Form, vars []string, w io.Writer) error {
	if f.Conn != ConnAnd {
		return fmt.Errorf("dimacs: form is not conjunctive")
	}
	idx := make(map[string]int, len(vars))
	for j, name := range vars {
		idx[name] = j + 1
	}
	nbClauses := len(f.Clauses)
	if f.Const == ConstFalse {
		nbClauses = 1
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", len(vars), nbClauses); err != nil {
		return fmt.Errorf("could not write DIMACS output: %w", err)
	}
	for j, name := range vars {
		if _, err := fmt.Fprintf(w, "c %s=%d\n", name, j+1); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	if f.Const == ConstFalse {
		_, err := io.WriteString(w, "0\n")
		return err
	}
	for _, clause := range f.Clauses {
		strClause := make([]string, len(clause))
		for i, lit := range clause {
			v := idx[lit.Name]
			if lit.Negated {
				v = -v
			}
			strClause[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintf(w, "%s 0\n", strings.Join(strClause, " ")); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	return nil
}
