// Package eval computes the truth value of a formula tree under a
// variable assignment.  Evaluation is a pure function of the tree and
// the assignment.
package eval
