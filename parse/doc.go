// Package parse builds a formula tree from a token sequence.
//
// The grammar, loosest binding first:
//
//	equiv   := implies ( "<->" implies )* ;
//	implies := or ( "->" or )* ;
//	or      := and ( "|" and )* ;
//	and     := not ( "&" not )* ;
//	not     := "~" not | primary ;
//	primary := variable | "(" equiv ")" ;
//
// Each level is a function deferring to the next tighter one; binary
// connectives are left-associative and negation chains by recursion.
// A parenthesized group re-enters at equiv, so parentheses override
// precedence completely.
package parse
