package ir

import "strings"

// Op is a binary connective.
type Op int

const (
	And Op = iota
	Or
	Implies
	Equiv
)

func (o Op) String() string {
	return map[Op]string{
		And:     "&",
		Or:      "|",
		Implies: "->",
		Equiv:   "<->",
	}[o]
}

// Node is one of Var, Not or Binary.  The interface is sealed so the
// set of shapes cannot grow outside this package.
type Node interface {
	// String renders the subtree with the ASCII connectives and the
	// minimal parenthesization that reparses to the same tree.
	String() string
	node()
}

// Var is a leaf referencing a variable by name.
type Var struct {
	Name string
}

// Not negates its operand.
type Not struct {
	X Node
}

// Binary applies a binary connective to two subtrees.
type Binary struct {
	Op   Op
	L, R Node
}

func (*Var) node()    {}
func (*Not) node()    {}
func (*Binary) node() {}

// Binding strength, loosest first.  Used only for printing.
func prec(n Node) int {
	switch n := n.(type) {
	case *Var:
		return 6
	case *Not:
		return 5
	case *Binary:
		switch n.Op {
		case And:
			return 4
		case Or:
			return 3
		case Implies:
			return 2
		case Equiv:
			return 1
		}
	}
	panic("ir: unknown node")
}

func (v *Var) String() string {
	return v.Name
}

func (n *Not) String() string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func (b *Binary) String() string {
	var sb strings.Builder
	write(&sb, b)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Var:
		sb.WriteString(n.Name)
	case *Not:
		sb.WriteString("~")
		writeChild(sb, n.X, prec(n), false)
	case *Binary:
		// Binary connectives are left-associative: the right child
		// needs parens already at equal precedence.
		writeChild(sb, n.L, prec(n), false)
		sb.WriteString(" ")
		sb.WriteString(n.Op.String())
		sb.WriteString(" ")
		writeChild(sb, n.R, prec(n), true)
	default:
		panic("ir: unknown node")
	}
}

func writeChild(sb *strings.Builder, c Node, parent int, right bool) {
	p := prec(c)
	if p < parent || (right && p == parent) {
		sb.WriteString("(")
		write(sb, c)
		sb.WriteString(")")
		return
	}
	write(sb, c)
}
