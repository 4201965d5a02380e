package formula

import "github.com/metamath-go/mmkernel/mmdb"

// ProofBuilder supplies the one piece of information syntax-proof
// emission cannot derive from the tree itself: which already-available
// proof step justifies citing a bare variable leaf (ordinarily that
// variable's own floating hypothesis in the current frame).
type ProofBuilder interface {
	StepForVariable(variable mmdb.Atom) ([]byte, error)
}

// BuildSyntaxProof walks f in post order (children before parent, each
// node's children in the order of its syntax axiom's floating hypotheses,
// the order a Metamath proof must present them in) and returns the sequence
// of statement labels that constructs f from nothing but variables and
// syntax axioms.
func BuildSyntaxProof(f Formula[mmdb.Atom], ctx Context, pb ProofBuilder) ([][]byte, error) {
	var steps [][]byte
	if err := walkSyntaxProof(f, ctx, pb, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func walkSyntaxProof(f Formula[mmdb.Atom], ctx Context, pb ProofBuilder, steps *[][]byte) error {
	n := f.tree.Label(f.root)
	if n.isVar {
		lbl, err := pb.StepForVariable(n.symbol)
		if err != nil {
			return err
		}
		*steps = append(*steps, lbl)
		return nil
	}
	axLabel := ctx.Names.AtomName(n.symbol)
	fr, ok := ctx.Scopes.Get(axLabel)
	if !ok && f.Arity() > 0 {
		return ErrNoSyntaxAxiom
	}
	if ok {
		// Children are stored in mandatory-variable order; a proof supplies
		// them in the order of the axiom's floating hypotheses.
		for _, h := range fr.Hypotheses {
			if !h.IsFloat {
				continue
			}
			if err := walkSyntaxProof(f.Child(h.VariableIndex), ctx, pb, steps); err != nil {
				return err
			}
		}
	}
	*steps = append(*steps, axLabel)
	return nil
}
