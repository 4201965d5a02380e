package formula

import (
	"github.com/metamath-go/mmkernel/exprbuf"
	"github.com/metamath-go/mmkernel/mmdb"
)

// AppendToStackBuffer flattens f's tail into buf using the same
// sentinel-delimited encoding the verifier's own stack buffer uses, and
// returns the byte range it now occupies.
func AppendToStackBuffer(buf *exprbuf.Buffer, f Formula[mmdb.Atom], ctx Context) exprbuf.Range {
	start := buf.Len()
	Flatten(f, ctx, func(tok []byte) { buf.Append(tok) })
	return exprbuf.Range{Start: start, End: buf.Len()}
}
