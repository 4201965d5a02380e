package formula

import (
	"strings"

	"github.com/metamath-go/mmkernel/mmdb"
)

// SExpr renders f as a parenthesized s-expression for debugging: a leaf
// prints its own name, an internal node prints its axiom's name followed
// by its children.
func SExpr(f Formula[mmdb.Atom], ctx Context) string {
	var sb strings.Builder
	writeSExpr(&sb, f, ctx)
	return sb.String()
}

func writeSExpr(sb *strings.Builder, f Formula[mmdb.Atom], ctx Context) {
	n := f.tree.Label(f.root)
	name := ctx.Names.AtomName(n.symbol)
	if n.isVar || f.Arity() == 0 {
		sb.Write(name)
		return
	}
	sb.WriteByte('(')
	sb.Write(name)
	for i := 0; i < f.Arity(); i++ {
		sb.WriteByte(' ')
		writeSExpr(sb, f.Child(i), ctx)
	}
	sb.WriteByte(')')
}
