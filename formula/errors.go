package formula

import "errors"

// ErrIncompleteFormula is returned by FormulaBuilder.Build when the
// builder's stack does not hold exactly one finished tree.
var ErrIncompleteFormula = errors.New("formula: incomplete builder stack")

// ErrStackUnderflow is returned by FormulaBuilder.Reduce when fewer than
// arity items remain on the stack.
var ErrStackUnderflow = errors.New("formula: reduce arity exceeds stack depth")

// ErrUnificationFailed is returned by Unify when no consistent variable
// binding makes the pattern structurally equal to the target.
var ErrUnificationFailed = errors.New("formula: unification failed")

// ErrNoSyntaxAxiom is returned by BuildSyntaxProof when the scope reader
// has no frame for an internal node's symbol.
var ErrNoSyntaxAxiom = errors.New("formula: no syntax axiom for symbol")
