package verify

import "fmt"

// Diagnostic is a closed sum type describing exactly one problem found
// while verifying a proof. It is modeled as a sealed interface rather
// than a single sentinel error: each kind carries context a sentinel could
// not (a step index, a label, a pair of variables). It also satisfies
// error for printing, but it is returned as a verification result, never
// as VerifyStatement's Go error. A proof reports only the first problem
// found; Database.Verify collects one result per statement.
type Diagnostic interface {
	error
	Kind() string
	sealedDiagnostic()
}

type diagBase struct{}

func (diagBase) sealedDiagnostic() {}

// StepMissing reports a proof step citing a label that resolves neither to
// one of the current frame's hypotheses nor to an axiom or provable
// statement with a frame.
type StepMissing struct {
	diagBase
	Step  int
	Label []byte
}

func (d StepMissing) Kind() string { return "StepMissing" }
func (d StepMissing) Error() string {
	return fmt.Sprintf("step %d: undefined label %q", d.Step, d.Label)
}

// StepUsedBeforeDefinition reports a proof step citing a statement that
// appears later in the database than the statement being verified.
type StepUsedBeforeDefinition struct {
	diagBase
	Step  int
	Label []byte
}

func (d StepUsedBeforeDefinition) Kind() string { return "StepUsedBeforeDefinition" }
func (d StepUsedBeforeDefinition) Error() string {
	return fmt.Sprintf("step %d: %q is not yet defined at this point", d.Step, d.Label)
}

// StepUsedAfterScope reports a proof step citing a statement whose scope
// has already closed.
type StepUsedAfterScope struct {
	diagBase
	Step  int
	Label []byte
}

func (d StepUsedAfterScope) Kind() string { return "StepUsedAfterScope" }
func (d StepUsedAfterScope) Error() string {
	return fmt.Sprintf("step %d: %q is out of scope here", d.Step, d.Label)
}

// StepOutOfRange reports a compressed-proof roster or backreference index
// with no corresponding entry.
type StepOutOfRange struct {
	diagBase
	Step  int
	Index int
}

func (d StepOutOfRange) Kind() string { return "StepOutOfRange" }
func (d StepOutOfRange) Error() string {
	return fmt.Sprintf("step %d: index %d has no roster or save-list entry", d.Step, d.Index)
}

// ProofUnderflow reports an assertion step that needs more stack entries
// than are present.
type ProofUnderflow struct {
	diagBase
	Step   int
	Needed int
	Have   int
}

func (d ProofUnderflow) Kind() string { return "ProofUnderflow" }
func (d ProofUnderflow) Error() string {
	return fmt.Sprintf("step %d: needs %d hypotheses, stack has %d", d.Step, d.Needed, d.Have)
}

// StepFloatWrongType reports a floating hypothesis slot filled by a stack
// entry of the wrong typecode.
type StepFloatWrongType struct {
	diagBase
	Step  int
	Label []byte
}

func (d StepFloatWrongType) Kind() string { return "StepFloatWrongType" }
func (d StepFloatWrongType) Error() string {
	return fmt.Sprintf("step %d: %q has the wrong typecode", d.Step, d.Label)
}

// StepEssenWrongType reports an essential hypothesis slot filled by a
// stack entry of the wrong typecode.
type StepEssenWrongType struct {
	diagBase
	Step  int
	Label []byte
}

func (d StepEssenWrongType) Kind() string { return "StepEssenWrongType" }
func (d StepEssenWrongType) Error() string {
	return fmt.Sprintf("step %d: %q has the wrong typecode", d.Step, d.Label)
}

// StepEssenWrong reports an essential hypothesis slot whose substituted
// expression does not match the one the stack actually holds.
type StepEssenWrong struct {
	diagBase
	Step  int
	Label []byte
}

func (d StepEssenWrong) Kind() string { return "StepEssenWrong" }
func (d StepEssenWrong) Error() string {
	return fmt.Sprintf("step %d: %q does not match the expression on the stack", d.Step, d.Label)
}

// ProofDvViolation reports a distinct-variable requirement of a cited
// assertion that the current frame's own DV constraints do not cover.
type ProofDvViolation struct {
	diagBase
	Step       int
	VarA, VarB []byte
}

func (d ProofDvViolation) Kind() string { return "ProofDvViolation" }
func (d ProofDvViolation) Error() string {
	return fmt.Sprintf("step %d: %s and %s must be distinct variables here", d.Step, d.VarA, d.VarB)
}

// ProofNoSteps reports a proof with no steps at all.
type ProofNoSteps struct{ diagBase }

func (ProofNoSteps) Kind() string  { return "ProofNoSteps" }
func (ProofNoSteps) Error() string { return "proof has no steps" }

// ProofExcessEnd reports a proof that leaves more than one entry on the
// stack after its last step.
type ProofExcessEnd struct{ diagBase }

func (ProofExcessEnd) Kind() string  { return "ProofExcessEnd" }
func (ProofExcessEnd) Error() string { return "proof leaves more than one entry on the stack" }

// ProofWrongTypeEnd reports a proof whose final stack entry has the
// wrong typecode for the statement being proved.
type ProofWrongTypeEnd struct{ diagBase }

func (ProofWrongTypeEnd) Kind() string  { return "ProofWrongTypeEnd" }
func (ProofWrongTypeEnd) Error() string { return "final stack entry has the wrong typecode" }

// ProofWrongExprEnd reports a proof whose final stack entry does not
// match the statement's own asserted conclusion.
type ProofWrongExprEnd struct{ diagBase }

func (ProofWrongExprEnd) Kind() string { return "ProofWrongExprEnd" }
func (ProofWrongExprEnd) Error() string {
	return "final stack entry does not match the asserted conclusion"
}

// ProofUnterminatedRoster reports a compressed proof whose '(' roster is
// never closed by a ')'.
type ProofUnterminatedRoster struct{ diagBase }

func (ProofUnterminatedRoster) Kind() string  { return "ProofUnterminatedRoster" }
func (ProofUnterminatedRoster) Error() string { return "compressed proof roster is never closed" }

// ProofMalformedVarint reports a compressed proof digit stream that cannot
// be decoded: a number that does not end in a final digit before the
// stream runs out, a run of continuation digits that exceeds the 32-bit
// accumulator bound, a '?' in the middle of a number, or a character
// outside the digit alphabet.
type ProofMalformedVarint struct {
	diagBase
	Step int
}

func (d ProofMalformedVarint) Kind() string { return "ProofMalformedVarint" }
func (d ProofMalformedVarint) Error() string {
	return fmt.Sprintf("step %d: malformed compressed proof number", d.Step)
}

// ProofInvalidSave reports a 'Z' marker that does not immediately follow a
// completed step number.
type ProofInvalidSave struct {
	diagBase
	Step int
}

func (d ProofInvalidSave) Kind() string { return "ProofInvalidSave" }
func (d ProofInvalidSave) Error() string {
	return fmt.Sprintf("step %d: nothing to save", d.Step)
}

// ProofIncomplete reports a proof containing a '?' placeholder step.
type ProofIncomplete struct {
	diagBase
	Step int
}

func (d ProofIncomplete) Kind() string { return "ProofIncomplete" }
func (d ProofIncomplete) Error() string {
	return fmt.Sprintf("step %d: proof is incomplete ('?')", d.Step)
}
