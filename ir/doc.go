// Package ir defines the syntax tree of a parsed propositional formula.
//
// Nodes are immutable after construction and form a strict tree: a
// parsed formula is shared read-only by the variable collector, the
// evaluator and the renderers.  The node set is closed, so a type
// switch over Var, Not and Binary covers every shape.
package ir
