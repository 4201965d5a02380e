package formula

import "github.com/metamath-go/mmkernel/mtree"

// Equal reports whether a and b are structurally identical: same
// typecode, and recursively the same shape with the same variable or
// constant label at every corresponding position.
func Equal[L comparable](a, b Formula[L]) bool {
	if a.Typecode != b.Typecode {
		return false
	}
	return subEq(a.tree, a.root, b.tree, b.root)
}

// SubEq reports whether the subformula rooted at a equals the subformula
// rooted at b, ignoring their enclosing typecodes. It is Equal's
// recursive step, exposed because callers occasionally need to compare
// two subexpressions that do not share a typecode (for example a
// hypothesis tail fragment against a slice of a larger formula).
func SubEq[L comparable](a Formula[L], b Formula[L]) bool {
	return subEq(a.tree, a.root, b.tree, b.root)
}

func subEq[L comparable](ta mtree.Tree[node[L]], a mtree.NodeId, tb mtree.Tree[node[L]], b mtree.NodeId) bool {
	na, nb := ta.Label(a), tb.Label(b)
	if na.isVar != nb.isVar || na.symbol != nb.symbol {
		return false
	}
	if ta.NumChildren(a) != tb.NumChildren(b) {
		return false
	}
	for i := 0; i < ta.NumChildren(a); i++ {
		ca, _ := ta.NthChild(a, i)
		cb, _ := tb.NthChild(b, i)
		if !subEq(ta, ca, tb, cb) {
			return false
		}
	}
	return true
}
