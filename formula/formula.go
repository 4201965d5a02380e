package formula

import (
	"github.com/metamath-go/mmkernel/mtree"
)

// node is the label stored at each tree position: either a bound variable
// (identified by the variable's own label) or a constant symbol.
type node[L comparable] struct {
	isVar  bool
	symbol L
}

// Formula is an immutable parsed expression: a typecode plus a tree whose
// leaves are constants or variables and whose internal nodes are
// constant operator symbols.
type Formula[L comparable] struct {
	Typecode L
	tree     mtree.Tree[node[L]]
	root     mtree.NodeId
}

// IsVar reports whether formula is a single bound variable.
func (f Formula[L]) IsVar() bool {
	return f.tree.Label(f.root).isVar
}

// VarLabel returns the variable label at the root. It panics if !IsVar.
func (f Formula[L]) VarLabel() L {
	n := f.tree.Label(f.root)
	if !n.isVar {
		panic("formula: VarLabel on a non-variable formula")
	}
	return n.symbol
}

// RootSymbol returns the constant symbol at the root. It panics if IsVar.
func (f Formula[L]) RootSymbol() L {
	n := f.tree.Label(f.root)
	if n.isVar {
		panic("formula: RootSymbol on a variable formula")
	}
	return n.symbol
}

// Arity returns the number of direct children of the root.
func (f Formula[L]) Arity() int {
	return f.tree.NumChildren(f.root)
}

// Child returns the k-th direct subformula of the root.
func (f Formula[L]) Child(k int) Formula[L] {
	id, ok := f.tree.NthChild(f.root, k)
	if !ok {
		panic("formula: child index out of range")
	}
	return Formula[L]{Typecode: f.Typecode, tree: f.tree, root: id}
}

// FormulaBuilder assembles a Formula bottom-up, mirroring how a grammar
// reduces a stack of already-parsed subformulas under a production: push
// leaves with PushVar/PushConst, combine the top arity items under a new
// operator with Reduce, and call Build once exactly one tree remains.
type FormulaBuilder[L comparable] struct {
	typecode L
	tree     mtree.Tree[node[L]]
	stack    []mtree.NodeId
}

// NewFormulaBuilder starts a builder for an expression of the given
// typecode.
func NewFormulaBuilder[L comparable](typecode L) *FormulaBuilder[L] {
	return &FormulaBuilder[L]{typecode: typecode}
}

// PushVar pushes a leaf referencing variable label v.
func (b *FormulaBuilder[L]) PushVar(v L) {
	id := b.tree.AddNode(node[L]{isVar: true, symbol: v}, nil)
	b.stack = append(b.stack, id)
}

// PushConst pushes a nullary (leaf) constant labeled c.
func (b *FormulaBuilder[L]) PushConst(c L) {
	id := b.tree.AddNode(node[L]{symbol: c}, nil)
	b.stack = append(b.stack, id)
}

// Reduce pops the top arity items off the stack and pushes one new node
// labeled op with those items as children, in the order they were
// pushed.
func (b *FormulaBuilder[L]) Reduce(op L, arity int) error {
	if arity < 0 || arity > len(b.stack) {
		return ErrStackUnderflow
	}
	start := len(b.stack) - arity
	children := append([]mtree.NodeId(nil), b.stack[start:]...)
	b.stack = b.stack[:start]
	id := b.tree.AddNode(node[L]{symbol: op}, children)
	b.stack = append(b.stack, id)
	return nil
}

// Build finalizes the builder into a Formula. It fails if the stack does
// not hold exactly one completed tree.
func (b *FormulaBuilder[L]) Build() (Formula[L], error) {
	if len(b.stack) != 1 {
		return Formula[L]{}, ErrIncompleteFormula
	}
	return Formula[L]{Typecode: b.typecode, tree: b.tree, root: b.stack[0]}, nil
}

// graftInto deep-copies the subtree rooted at src.root into dst (which may
// be mid-construction), returning the copied root's new NodeId. It is how
// Substitute splices a bound variable's formula into a freshly built
// result tree without aliasing NodeIds across distinct Tree values.
func graftInto[L comparable](dst *mtree.Tree[node[L]], src Formula[L]) mtree.NodeId {
	return graftNode(dst, src.tree, src.root)
}

func graftNode[L comparable](dst *mtree.Tree[node[L]], src mtree.Tree[node[L]], id mtree.NodeId) mtree.NodeId {
	n := src.NumChildren(id)
	children := make([]mtree.NodeId, n)
	for i := 0; i < n; i++ {
		c, _ := src.NthChild(id, i)
		children[i] = graftNode(dst, src, c)
	}
	return dst.AddNode(src.Label(id), children)
}
