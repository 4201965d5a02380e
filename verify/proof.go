package verify

import (
	"math"

	"github.com/metamath-go/mmkernel/mmdb"
)

type instrKind int

const (
	instrNumber instrKind = iota
	instrSave
	instrIncomplete
)

type instr struct {
	kind  instrKind
	value uint32
	// validSave reports, for an instrSave, whether a completed number
	// immediately precedes it with no intervening save: 'Z' found anywhere
	// else (right after another 'Z', mid-continuation-digit, or at the very
	// start of the stream) can never correspond to a real stack save.
	validSave bool
}

// maxFoldableAccumulator bounds the accumulator after each continuation
// digit is folded in, leaving room for the *20 + digit of the eventual
// final digit without wrapping past uint32's range.
const maxFoldableAccumulator = math.MaxUint32/20 - 1

// decodeCompressedNumbers decodes a concatenated compressed-proof digit
// stream into its instructions. 'A'..'T' are final digits (value 0..19),
// 'U'..'Y' are continuation digits contributing a base-5 higher-order
// component, 'Z' saves the most recently produced stack value for later
// numeric reference, and '?' marks an incomplete proof step.
//
// The accumulator is explicitly uint32, matching the wire format's own
// width, rather than the platform int: a proof is a durable artifact and
// its step numbering must not silently change meaning across platforms.
func decodeCompressedNumbers(data []byte) ([]instr, bool) {
	var out []instr
	var acc uint32
	inNumber := false
	canSave := false
	for _, ch := range data {
		switch {
		case ch == 'Z':
			out = append(out, instr{kind: instrSave, validSave: canSave && !inNumber})
			canSave = false
			inNumber = false
			acc = 0
		case ch == '?':
			if inNumber {
				return nil, false
			}
			out = append(out, instr{kind: instrIncomplete})
			canSave = false
		case ch >= 'U' && ch <= 'Y':
			acc = acc*5 + uint32(ch-'U') + 1
			if acc >= maxFoldableAccumulator {
				return nil, false
			}
			inNumber = true
			canSave = false
		case ch >= 'A' && ch <= 'T':
			acc = acc*20 + uint32(ch-'A')
			out = append(out, instr{kind: instrNumber, value: acc})
			acc = 0
			inNumber = false
			canSave = true
		default:
			return nil, false
		}
	}
	if inNumber {
		return nil, false
	}
	return out, true
}

// runUncompressed replays an uncompressed proof: every token is a label,
// cited directly, in order.
func (s *State) runUncompressed(stmt mmdb.StatementRef) Diagnostic {
	n := stmt.ProofLen()
	if n == 0 {
		return ProofNoSteps{}
	}
	for i := 0; i < n; i++ {
		label := stmt.ProofSliceAt(i)
		if len(label) == 1 && label[0] == '?' {
			return ProofIncomplete{Step: i}
		}
		ps, diag := s.prepareStep(label, i)
		if diag != nil {
			return diag
		}
		s.prepared = append(s.prepared, ps)
		if diag := s.executePrepared(ps, i); diag != nil {
			return diag
		}
	}
	return nil
}

// runCompressed replays a compressed proof: a parenthesized roster of
// labels (implicitly preceded by the current frame's own mandatory
// hypotheses), followed by a digit stream referencing roster entries,
// earlier saved values, or marking a save or an incomplete step.
func (s *State) runCompressed(stmt mmdb.StatementRef) Diagnostic {
	n := stmt.ProofLen()
	if n == 0 || string(stmt.ProofSliceAt(0)) != "(" {
		return ProofUnterminatedRoster{}
	}

	for range s.currentFrame.Hypotheses {
		s.prepared = append(s.prepared, preparedStep{kind: preparedHyp, hypIndex: len(s.prepared)})
	}

	i := 1
	closed := false
	for ; i < n; i++ {
		tok := stmt.ProofSliceAt(i)
		if string(tok) == ")" {
			closed = true
			i++
			break
		}
		ps, diag := s.prepareStep(tok, i)
		if diag != nil {
			return diag
		}
		s.prepared = append(s.prepared, ps)
	}
	if !closed {
		return ProofUnterminatedRoster{}
	}

	var digits []byte
	for ; i < n; i++ {
		digits = append(digits, stmt.ProofSliceAt(i)...)
	}
	instrs, ok := decodeCompressedNumbers(digits)
	if !ok {
		return ProofMalformedVarint{Step: n}
	}

	step := 0
	for _, in := range instrs {
		switch in.kind {
		case instrIncomplete:
			return ProofIncomplete{Step: step}
		case instrSave:
			if !in.validSave {
				return ProofInvalidSave{Step: step}
			}
			s.saves = append(s.saves, s.stack[len(s.stack)-1])
		case instrNumber:
			k := int(in.value)
			switch {
			case k < len(s.prepared):
				if diag := s.executePrepared(s.prepared[k], step); diag != nil {
					return diag
				}
			case k-len(s.prepared) < len(s.saves):
				s.stack = append(s.stack, s.saves[k-len(s.prepared)])
			default:
				return StepOutOfRange{Step: step, Index: k}
			}
			step++
		}
	}
	return nil
}
