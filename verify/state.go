package verify

import (
	"github.com/metamath-go/mmkernel/bitset"
	"github.com/metamath-go/mmkernel/exprbuf"
	"github.com/metamath-go/mmkernel/mmdb"
)

// stackSlot is one entry of the proof-replay stack: a typed, sentinel-
// encoded expression range together with the set of the current frame's
// own mandatory variables that occur (transitively) within it.
type stackSlot struct {
	typecode mmdb.TypeCode
	expr     exprbuf.Range
	vars     bitset.Bitset
}

type preparedKind int

const (
	preparedHyp preparedKind = iota
	preparedAssert
)

// preparedStep is one entry of the implicit-or-explicit proof roster: a
// reference to one of the current frame's own mandatory hypotheses, or to
// another statement's assertion frame.
type preparedStep struct {
	kind        preparedKind
	hypIndex    int
	assertFrame *mmdb.Frame
	assertLabel []byte
}

// State holds everything one worker needs to verify a sequence of
// statements: it is reset (not reallocated) between statements so a
// worker pool can give one State to each goroutine and reuse it for
// every statement that goroutine handles.
type State struct {
	names    mmdb.NameResolver
	segments mmdb.SegmentSet
	scopes   mmdb.ScopeReader
	order    mmdb.SegmentOrder

	currentLabel []byte
	currentAddr  mmdb.StatementAddress
	currentFrame *mmdb.Frame

	varBit map[string]int
	dv     map[int]bitset.Bitset

	prepared []preparedStep
	saves    []stackSlot

	stack       []stackSlot
	stackBuffer exprbuf.Buffer
	tempBuffer  exprbuf.Buffer

	substVars  []bitset.Bitset
	substExprs []exprbuf.Range
}

// NewState constructs a State bound to one database's collaborators. A
// single State must not be used from more than one goroutine at a time.
func NewState(names mmdb.NameResolver, segments mmdb.SegmentSet, scopes mmdb.ScopeReader) *State {
	return &State{
		names:    names,
		segments: segments,
		scopes:   scopes,
		order:    segments.Order(),
	}
}

// reset discards all per-statement state, retaining buffer capacity.
func (s *State) reset() {
	s.currentLabel = nil
	s.currentFrame = nil
	s.varBit = nil
	s.dv = nil
	s.prepared = s.prepared[:0]
	s.saves = s.saves[:0]
	s.stack = s.stack[:0]
	s.stackBuffer.Reset()
	s.tempBuffer.Reset()
	s.substVars = s.substVars[:0]
	s.substExprs = s.substExprs[:0]
}

// beginFrame loads fr as the frame currently being verified, building the
// mandatory-variable bit assignment and the resolved DV adjacency used by
// the distinct-variable check.
func (s *State) beginFrame(label []byte, addr mmdb.StatementAddress, fr *mmdb.Frame) {
	s.currentLabel = label
	s.currentAddr = addr
	s.currentFrame = fr

	s.varBit = make(map[string]int, len(fr.MandatoryVars))
	for i, v := range fr.MandatoryVars {
		s.varBit[string(v)] = i
	}

	s.dv = make(map[int]bitset.Bitset, len(fr.MandatoryDV)+len(fr.OptionalDV))
	addPair := func(a, b int) {
		ba := s.dv[a]
		ba.Set(b)
		s.dv[a] = ba
		bb := s.dv[b]
		bb.Set(a)
		s.dv[b] = bb
	}
	for _, p := range fr.MandatoryDV {
		addPair(p.First, p.Second)
	}
	for _, p := range fr.OptionalDV {
		ai, aok := s.varBit[string(p.First)]
		bi, bok := s.varBit[string(p.Second)]
		if aok && bok {
			addPair(ai, bi)
		}
	}
}
