package formula

import "github.com/metamath-go/mmkernel/mmdb"

// Context bundles the external collaborators that flattening,
// s-expression rendering, and syntax-proof emission need to resolve a
// Formula[mmdb.Atom]'s internal nodes back to axiom labels and mandatory
// variable positions.
//
// An internal (arity > 0) node's symbol is the Label of the syntax axiom
// that introduced it; its children correspond, in order, to that axiom's
// mandatory variables. A leaf node's symbol is either a bound variable's
// own Atom (isVar) or a bare constant Atom.
type Context struct {
	Names    mmdb.NameResolver
	Segments mmdb.SegmentSet
	Scopes   mmdb.ScopeReader
}

func stripSentinel(b []byte) []byte {
	if len(b) == 0 {
		return b
	}
	out := append([]byte(nil), b...)
	out[len(out)-1] &^= 0x80
	return out
}
