// Package nf derives disjunctive and conjunctive normal forms from an
// enumerated truth table.
//
// The DNF collects one minterm per true row and the CNF one maxterm
// per false row, so the two clause counts always sum to the row count.
// A tautology has no false rows and its CNF degenerates to the
// constant true; a contradiction likewise degenerates the DNF to
// false.
package nf
