package verify

import (
	"bytes"

	"github.com/metamath-go/mmkernel/bitset"
	"github.com/metamath-go/mmkernel/exprbuf"
	"github.com/metamath-go/mmkernel/mmdb"
)

// prepareStep resolves one proof-step label to either one of the current
// frame's own mandatory hypotheses or another statement's assertion
// frame, checking that the citation is legal at this point in the
// database's order.
func (s *State) prepareStep(label []byte, stepIndex int) (preparedStep, Diagnostic) {
	for i, h := range s.currentFrame.Hypotheses {
		if bytes.Equal(h.Label, label) {
			return preparedStep{kind: preparedHyp, hypIndex: i}, nil
		}
	}

	addr, ok := s.names.LookupLabel(label)
	if !ok {
		return preparedStep{}, StepMissing{Step: stepIndex, Label: label}
	}
	if s.order.Compare(addr, s.currentAddr) >= 0 {
		return preparedStep{}, StepUsedBeforeDefinition{Step: stepIndex, Label: label}
	}
	fr, ok := s.scopes.Get(label)
	if !ok {
		return preparedStep{}, StepMissing{Step: stepIndex, Label: label}
	}
	if !inScope(fr.Valid, s.currentAddr, s.order) {
		return preparedStep{}, StepUsedAfterScope{Step: stepIndex, Label: label}
	}
	if fr.StatementType != mmdb.Axiom && fr.StatementType != mmdb.Provable {
		return preparedStep{}, StepMissing{Step: stepIndex, Label: label}
	}
	return preparedStep{kind: preparedAssert, assertFrame: fr, assertLabel: label}, nil
}

func inScope(valid struct{ Start, End mmdb.Position }, at mmdb.Position, order mmdb.SegmentOrder) bool {
	if order.Compare(at, valid.Start) < 0 {
		return false
	}
	if valid.End.Index == mmdb.NoIndex {
		return true
	}
	return order.Compare(at, valid.End) < 0
}

// executePrepared runs one already-resolved step: a Hyp citation pushes
// that hypothesis's own expression; an Assert citation pops its
// hypotheses' arguments, checks them, and pushes its conclusion.
func (s *State) executePrepared(ps preparedStep, stepIndex int) Diagnostic {
	switch ps.kind {
	case preparedHyp:
		hyp := s.currentFrame.Hypotheses[ps.hypIndex]
		r, vars := s.pushBase(hyp.Expr.Tail)
		s.stack = append(s.stack, stackSlot{typecode: hyp.Expr.TypeCode, expr: r, vars: vars})
		return nil
	default:
		return s.executeAssert(ps.assertFrame, ps.assertLabel, stepIndex)
	}
}

// pushBase encodes tail with no active substitution: a Var fragment
// contributes the current frame's own mandatory variable name, a
// Constant fragment contributes its bytes verbatim. It is the base case
// used for citing one of the current frame's hypotheses directly;
// finalizeStep encodes the statement's own conclusion the same way, into
// tempBuffer.
func (s *State) pushBase(tail []mmdb.ExprFragment) (exprbuf.Range, bitset.Bitset) {
	start := s.stackBuffer.Len()
	var vars bitset.Bitset
	for _, frag := range tail {
		if frag.IsVar {
			s.stackBuffer.Append(s.currentFrame.MandatoryVars[frag.VarIndex])
			vars.Set(frag.VarIndex)
			continue
		}
		s.stackBuffer.AppendRaw(frag.Bytes)
	}
	return exprbuf.Range{Start: start, End: s.stackBuffer.Len()}, vars
}

// substituteTail encodes tail using the active substExprs/substVars
// binding built by the float pass of the assert currently executing: a
// Var fragment splices in the already-encoded bound expression, a
// Constant fragment contributes its bytes verbatim.
func (s *State) substituteTail(tail []mmdb.ExprFragment) (exprbuf.Range, bitset.Bitset) {
	start := s.stackBuffer.Len()
	var vars bitset.Bitset
	for _, frag := range tail {
		if frag.IsVar {
			s.stackBuffer.AppendRange(&s.stackBuffer, s.substExprs[frag.VarIndex])
			vars.UnionAssign(&s.substVars[frag.VarIndex])
			continue
		}
		s.stackBuffer.AppendRaw(frag.Bytes)
	}
	return exprbuf.Range{Start: start, End: s.stackBuffer.Len()}, vars
}

func (s *State) firstVarName(bs *bitset.Bitset) []byte {
	for i := range bs.Range {
		return s.currentFrame.MandatoryVars[i]
	}
	return nil
}

// executeAssert is execute_step's assertion branch: float pass, essential
// pass, distinct-variable check, then pushing the substituted conclusion.
func (s *State) executeAssert(fref *mmdb.Frame, label []byte, stepIndex int) Diagnostic {
	h := len(fref.Hypotheses)
	if len(s.stack) < h {
		return ProofUnderflow{Step: stepIndex, Needed: h, Have: len(s.stack)}
	}
	sbase := len(s.stack) - h
	args := s.stack[sbase:]

	nv := len(fref.MandatoryVars)
	s.substExprs = make([]exprbuf.Range, nv)
	s.substVars = make([]bitset.Bitset, nv)

	for i, hyp := range fref.Hypotheses {
		if !hyp.IsFloat {
			continue
		}
		arg := args[i]
		if arg.typecode != hyp.Expr.TypeCode {
			return StepFloatWrongType{Step: stepIndex, Label: hyp.Label}
		}
		s.substExprs[hyp.VariableIndex] = arg.expr
		s.substVars[hyp.VariableIndex] = arg.vars.Clone()
	}

	for i, hyp := range fref.Hypotheses {
		if hyp.IsFloat {
			continue
		}
		arg := args[i]
		if arg.typecode != hyp.Expr.TypeCode {
			return StepEssenWrongType{Step: stepIndex, Label: hyp.Label}
		}
		expected, _ := s.substituteTail(hyp.Expr.Tail)
		if !bytes.Equal(s.stackBuffer.Slice(expected), s.stackBuffer.Slice(arg.expr)) {
			return StepEssenWrong{Step: stepIndex, Label: hyp.Label}
		}
	}

	for _, pair := range fref.MandatoryDV {
		bi := s.substVars[pair.First]
		bj := s.substVars[pair.Second]
		for a := range bi.Range {
			// A missing entry in s.dv reads as the zero Bitset, which is a
			// superset only of the empty set — so an unconstrained a still
			// vacuously passes when bj has no members, matching a loop over
			// bj's members that simply never runs.
			req := s.dv[a]
			if !req.IsSupersetOf(&bj) {
				return ProofDvViolation{Step: stepIndex, VarA: s.currentFrame.MandatoryVars[a], VarB: s.firstVarName(&bj)}
			}
		}
	}

	concl, vars := s.substituteTail(fref.Target.Tail)
	s.stack = append(s.stack[:sbase], stackSlot{typecode: fref.Target.TypeCode, expr: concl, vars: vars})
	return nil
}

// finalizeStep checks that the proof left exactly one stack entry, of the
// right typecode, matching the statement's own asserted conclusion
// restated with its own mandatory variable names.
func (s *State) finalizeStep() Diagnostic {
	if len(s.stack) == 0 {
		return ProofNoSteps{}
	}
	if len(s.stack) > 1 {
		return ProofExcessEnd{}
	}
	top := s.stack[0]
	if top.typecode != s.currentFrame.Target.TypeCode {
		return ProofWrongTypeEnd{}
	}
	s.tempBuffer.Reset()
	for _, frag := range s.currentFrame.Target.Tail {
		if frag.IsVar {
			s.tempBuffer.Append(s.currentFrame.MandatoryVars[frag.VarIndex])
			continue
		}
		s.tempBuffer.AppendRaw(frag.Bytes)
	}
	if !bytes.Equal(s.stackBuffer.Slice(top.expr), s.tempBuffer.Bytes()) {
		return ProofWrongExprEnd{}
	}
	return nil
}
