// Package formula implements parsed Metamath expressions as immutable
// N-ary trees (see mtree) over a generic label type, together with
// structural equality, unification, substitution, work-variable
// completion, token flattening, s-expression rendering, and syntax-proof
// emission.
//
// A Formula is a parse tree, not a flat token stream: internal nodes are
// constant (operator) symbols and leaves are either constants or bound
// variables. Two label types appear throughout because a pattern formula
// (built from a grammar over one label space, typically statement-local
// variable slots) is unified against a target formula built over the
// database's own Atom space; Convert bridges the two wherever a pattern
// label needs to be compared against or substituted for a target label.
package formula
