package formula

import "github.com/metamath-go/mmkernel/mmdb"

// Flatten walks f in source-text order, calling yield once per plain
// (non-sentinel-encoded) math token of its tail — the typecode itself is
// not emitted, matching mmdb.Expr's own typecode/tail split.
func Flatten(f Formula[mmdb.Atom], ctx Context, yield func(token []byte)) {
	n := f.tree.Label(f.root)
	if n.isVar || f.Arity() == 0 {
		yield(ctx.Names.AtomName(n.symbol))
		return
	}
	fr, ok := ctx.Scopes.Get(ctx.Names.AtomName(n.symbol))
	if !ok {
		// No scope information for this axiom: fall back to emitting its
		// own label, the best a caller can do without the axiom's frame.
		yield(ctx.Names.AtomName(n.symbol))
		return
	}
	for _, frag := range fr.Target.Tail {
		if frag.IsVar {
			Flatten(f.Child(frag.VarIndex), ctx, yield)
			continue
		}
		yield(stripSentinel(frag.Bytes))
	}
}

// FlattenAll is Flatten plus the leading typecode token, producing the
// complete plain-text math token stream for f.
func FlattenAll(f Formula[mmdb.Atom], ctx Context, yield func(token []byte)) {
	yield(ctx.Names.AtomName(f.Typecode))
	Flatten(f, ctx, yield)
}
