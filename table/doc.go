// Package table enumerates the truth table of a formula tree.
//
// For n variables there are exactly 2ⁿ rows, produced for i from
// 2ⁿ−1 down to 0.  Bit (n−j−1) of i is the value of the j-th variable
// in canonical order, so the first (lexicographically smallest)
// variable is the most significant bit and its column reads all-true
// before all-false.  Row order is part of the contract.
package table
