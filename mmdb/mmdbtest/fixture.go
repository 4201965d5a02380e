package mmdbtest

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/metamath-go/mmkernel/exprbuf"
	"github.com/metamath-go/mmkernel/mmdb"
)

// Decl declaratively describes one statement for a fixture database. Math
// lists every token of the statement's expression including the leading
// typecode; Vars lists the tokens among Hyps' floating variables and this
// statement's own conclusion that scope analysis would have recorded as
// this Frame's mandatory variables, in frame order.
type Decl struct {
	Label         string
	Type          mmdb.StatementType
	Math          []string
	Proof         []string
	Hyps          []string
	Vars          []string
	MandatoryDV   []mmdb.DVPair
	OptionalDV    [][2]string
}

// Fixture is an in-memory mmdb.SegmentSet, mmdb.NameResolver, and
// mmdb.ScopeReader built from a Decl list.
type Fixture struct {
	names     []string
	index     map[string]mmdb.Atom
	variables map[string]bool

	order []string // labels, in declaration order
	byLbl map[string]int
	decls []Decl
	frame map[string]*mmdb.Frame
}

// Build assembles a Fixture from decls, collecting every inconsistency
// found (an undefined hypothesis reference, an undefined DV variable, a
// duplicate label) instead of stopping at the first.
func Build(decls []Decl) (*Fixture, error) {
	f := &Fixture{
		index:     make(map[string]mmdb.Atom),
		variables: make(map[string]bool),
		byLbl:     make(map[string]int, len(decls)),
		decls:     decls,
		frame:     make(map[string]*mmdb.Frame, len(decls)),
	}

	var errs *multierror.Error

	for _, d := range decls {
		for _, v := range d.Vars {
			f.variables[v] = true
		}
	}
	for i, d := range decls {
		if _, dup := f.byLbl[d.Label]; dup {
			errs = multierror.Append(errs, fmt.Errorf("duplicate label %q", d.Label))
			continue
		}
		f.byLbl[d.Label] = i
		f.order = append(f.order, d.Label)
		f.intern(d.Label)
		for _, tok := range d.Math {
			f.intern(tok)
		}
	}
	for _, d := range decls {
		for _, h := range d.Hyps {
			if _, ok := f.byLbl[h]; !ok {
				errs = multierror.Append(errs, fmt.Errorf("%s: undefined hypothesis %q", d.Label, h))
			}
		}
		for _, pair := range d.OptionalDV {
			for _, v := range pair {
				if !f.variables[v] {
					errs = multierror.Append(errs, fmt.Errorf("%s: undefined DV variable %q", d.Label, v))
				}
			}
		}
	}
	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	for _, d := range decls {
		f.frame[d.Label] = f.buildFrame(d)
	}
	return f, nil
}

func (f *Fixture) intern(tok string) mmdb.Atom {
	if a, ok := f.index[tok]; ok {
		return a
	}
	a := mmdb.Atom(len(f.names))
	f.names = append(f.names, tok)
	f.index[tok] = a
	return a
}

func (f *Fixture) buildFrame(d Decl) *mmdb.Frame {
	fr := &mmdb.Frame{StatementType: d.Type}

	for _, v := range d.Vars {
		fr.MandatoryVars = append(fr.MandatoryVars, []byte(v))
	}
	varIndex := make(map[string]int, len(d.Vars))
	for i, v := range d.Vars {
		varIndex[v] = i
	}

	for _, h := range d.Hyps {
		hd := f.decls[f.byLbl[h]]
		hyp := mmdb.Hyp{Label: []byte(h)}
		switch hd.Type {
		case mmdb.Floating:
			hyp.IsFloat = true
			hyp.VariableIndex = varIndex[hd.Math[1]]
			hyp.Expr = f.exprTail(hd.Math, varIndex)
		case mmdb.Essential:
			hyp.IsFloat = false
			hyp.Expr = f.exprTail(hd.Math, varIndex)
		}
		fr.Hypotheses = append(fr.Hypotheses, hyp)
	}

	for _, pair := range d.OptionalDV {
		fr.OptionalDV = append(fr.OptionalDV, mmdb.TokenPair{
			First:  []byte(pair[0]),
			Second: []byte(pair[1]),
		})
	}
	fr.MandatoryDV = append(fr.MandatoryDV, d.MandatoryDV...)

	if d.Type == mmdb.Axiom || d.Type == mmdb.Provable || d.Type == mmdb.Essential || d.Type == mmdb.Floating {
		fr.Target = f.exprTail(d.Math, varIndex)
	}
	if d.Type == mmdb.Floating || d.Type == mmdb.Essential {
		var buf exprbuf.Buffer
		for _, tok := range d.Math[1:] {
			buf.Append([]byte(tok))
		}
		fr.StubExpr = buf.Bytes()
	}
	fr.Valid.Start = mmdb.Position{Segment: 0, Index: int32(f.byLbl[d.Label])}
	fr.Valid.End = mmdb.Position{Segment: 0, Index: mmdb.NoIndex}
	return fr
}

func (f *Fixture) exprTail(math []string, varIndex map[string]int) mmdb.Expr {
	e := mmdb.Expr{}
	if len(math) == 0 {
		return e
	}
	e.TypeCode = f.intern(math[0])
	for _, tok := range math[1:] {
		if ix, ok := varIndex[tok]; ok {
			e.Tail = append(e.Tail, mmdb.Var(ix))
			continue
		}
		var buf exprbuf.Buffer
		r := buf.Append([]byte(tok))
		e.Tail = append(e.Tail, mmdb.ConstantFragment(buf.Slice(r)))
	}
	return e
}

// AtomName implements mmdb.NameResolver.
func (f *Fixture) AtomName(a mmdb.Atom) []byte { return []byte(f.names[a]) }

// LookupLabel implements mmdb.NameResolver.
func (f *Fixture) LookupLabel(name []byte) (mmdb.StatementAddress, bool) {
	i, ok := f.byLbl[string(name)]
	if !ok {
		return mmdb.StatementAddress{}, false
	}
	return mmdb.Position{Segment: 0, Index: int32(i)}, true
}

// LookupSymbol implements mmdb.NameResolver.
func (f *Fixture) LookupSymbol(name []byte) (mmdb.Atom, mmdb.SymbolType, bool) {
	a, ok := f.index[string(name)]
	if !ok {
		return 0, 0, false
	}
	kind := mmdb.Constant
	if f.variables[string(name)] {
		kind = mmdb.Variable
	}
	return a, kind, true
}

// Statement implements mmdb.SegmentSet.
func (f *Fixture) Statement(addr mmdb.StatementAddress) mmdb.StatementRef {
	return &stmtRef{f: f, i: int(addr.Index)}
}

// Segments implements mmdb.SegmentSet: this fixture is always one segment.
func (f *Fixture) Segments(yield func(mmdb.SegmentId) bool) { yield(0) }

// StatementsIn implements mmdb.SegmentSet.
func (f *Fixture) StatementsIn(seg mmdb.SegmentId, yield func(mmdb.StatementAddress) bool) {
	if seg != 0 {
		return
	}
	for i := range f.decls {
		if !yield(mmdb.Position{Segment: 0, Index: int32(i)}) {
			return
		}
	}
}

// Order implements mmdb.SegmentSet.
func (f *Fixture) Order() mmdb.SegmentOrder { return flatOrder{} }

// Get implements mmdb.ScopeReader.
func (f *Fixture) Get(label []byte) (*mmdb.Frame, bool) {
	fr, ok := f.frame[string(label)]
	return fr, ok
}

type flatOrder struct{}

func (flatOrder) Compare(a, b mmdb.Position) int {
	switch {
	case a.Index < b.Index:
		return -1
	case a.Index > b.Index:
		return 1
	default:
		return 0
	}
}

type stmtRef struct {
	f *Fixture
	i int
}

func (s *stmtRef) Type() mmdb.StatementType { return s.f.decls[s.i].Type }
func (s *stmtRef) Label() []byte            { return []byte(s.f.decls[s.i].Label) }
func (s *stmtRef) ProofLen() int            { return len(s.f.decls[s.i].Proof) }
func (s *stmtRef) ProofSliceAt(i int) []byte {
	return []byte(s.f.decls[s.i].Proof[i])
}
func (s *stmtRef) MathIter(yield func(token []byte) bool) {
	for _, tok := range s.f.decls[s.i].Math {
		if !yield([]byte(tok)) {
			return
		}
	}
}
func (s *stmtRef) Address() mmdb.StatementAddress {
	return mmdb.Position{Segment: 0, Index: int32(s.i)}
}
func (s *stmtRef) AssociatedComment() (string, bool) { return "", false }
