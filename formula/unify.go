package formula

import "github.com/metamath-go/mmkernel/mtree"

// Substitutions maps pattern variable labels (type L) to their bound
// target-space formulas (type J). The two label types are almost always
// the same underlying representation but are kept distinct so a pattern
// built over a grammar's own variable slots can be unified against a
// formula built over the database's Atom space without forcing either
// side to convert wholesale up front.
type Substitutions[L comparable, J comparable] struct {
	m map[L]Formula[J]
}

// NewSubstitutions returns an empty binding set.
func NewSubstitutions[L comparable, J comparable]() Substitutions[L, J] {
	return Substitutions[L, J]{m: make(map[L]Formula[J])}
}

// Get returns the formula bound to v, if any.
func (s Substitutions[L, J]) Get(v L) (Formula[J], bool) {
	f, ok := s.m[v]
	return f, ok
}

// Set binds v to f, overwriting any previous binding.
func (s Substitutions[L, J]) Set(v L, f Formula[J]) {
	s.m[v] = f
}

// Len returns the number of bound variables.
func (s Substitutions[L, J]) Len() int { return len(s.m) }

// Range calls yield once per binding, in unspecified order, stopping
// early if yield returns false.
func (s Substitutions[L, J]) Range(yield func(L, Formula[J]) bool) {
	for k, v := range s.m {
		if !yield(k, v) {
			return
		}
	}
}

// Unify attempts to bind pattern's free variables in subst such that,
// after substitution, pattern would equal target. convert maps a
// pattern-space constant label into target space for comparison. There
// is no occurs check: pattern variables only ever bind to target
// subtrees, never to other pattern variables, so no binding can create a
// cycle. On failure it returns ErrUnificationFailed directly, never
// wrapped; callers use errors.Is.
func Unify[L comparable, J comparable](pattern Formula[L], target Formula[J], convert func(L) J, subst Substitutions[L, J]) error {
	pn := pattern.tree.Label(pattern.root)
	if pn.isVar {
		if existing, ok := subst.Get(pn.symbol); ok {
			if !Equal(existing, target) {
				return ErrUnificationFailed
			}
			return nil
		}
		subst.Set(pn.symbol, target)
		return nil
	}
	tn := target.tree.Label(target.root)
	if tn.isVar {
		return ErrUnificationFailed
	}
	if convert(pn.symbol) != tn.symbol {
		return ErrUnificationFailed
	}
	if pattern.Arity() != target.Arity() {
		return ErrUnificationFailed
	}
	for i := 0; i < pattern.Arity(); i++ {
		if err := Unify(pattern.Child(i), target.Child(i), convert, subst); err != nil {
			return err
		}
	}
	return nil
}

// Substitute rebuilds pattern in target space, replacing every bound
// variable with its binding (grafted in whole) and converting every
// remaining constant label and unbound variable with convert.
func Substitute[L comparable, J comparable](pattern Formula[L], subst Substitutions[L, J], convert func(L) J) Formula[J] {
	var dst mtree.Tree[node[J]]
	root := substWalk(&dst, pattern.tree, pattern.root, subst, convert)
	return Formula[J]{Typecode: convert(pattern.Typecode), tree: dst, root: root}
}

func substWalk[L comparable, J comparable](dst *mtree.Tree[node[J]], src mtree.Tree[node[L]], id mtree.NodeId, subst Substitutions[L, J], convert func(L) J) mtree.NodeId {
	n := src.Label(id)
	if n.isVar {
		if bound, ok := subst.Get(n.symbol); ok {
			return graftNode(dst, bound.tree, bound.root)
		}
		return dst.AddNode(node[J]{isVar: true, symbol: convert(n.symbol)}, nil)
	}
	count := src.NumChildren(id)
	children := make([]mtree.NodeId, count)
	for i := 0; i < count; i++ {
		c, _ := src.NthChild(id, i)
		children[i] = substWalk(dst, src, c, subst, convert)
	}
	return dst.AddNode(node[J]{symbol: convert(n.symbol)}, children)
}

// WorkVariableProvider mints fresh target-space variables of a given
// typecode, used to complete a partial substitution whose pattern
// variables were never constrained by unification.
type WorkVariableProvider[J comparable] interface {
	NewWorkVariable(typecode J) J
}

// CompleteSubstitutions binds every variable in vars that subst does not
// already bind to a freshly minted work variable of the matching
// typecode. typecodeOf reports a pattern variable's own typecode.
func CompleteSubstitutions[L comparable, J comparable](vars []L, subst Substitutions[L, J], typecodeOf func(L) J, provider WorkVariableProvider[J]) {
	for _, v := range vars {
		if _, ok := subst.Get(v); ok {
			continue
		}
		wv := provider.NewWorkVariable(typecodeOf(v))
		b := NewFormulaBuilder[J](typecodeOf(v))
		b.PushVar(wv)
		f, _ := b.Build()
		subst.Set(v, f)
	}
}
