// Package token provides lexical scanning of propositional formulas.
//
// The scanner accepts the ASCII connectives
//
//	~  &  |  ->  <->
//
// together with their synonyms: '!' and '¬' for negation, '∧' for
// conjunction, '∨' for disjunction, "=>" for implication and "<=>" for
// the biconditional.  Variables are a letter followed by letters, digits
// or underscores, collected as a maximal run.
package token
