package verify

import "github.com/metamath-go/mmkernel/mmdb"

// VerifyStatement checks one $p statement's proof using s, returning the
// first Diagnostic found or nil if the proof is sound. s is reset at the
// start of every call, so one State can be reused across many
// statements, but never concurrently.
func VerifyStatement(s *State, label []byte) (Diagnostic, error) {
	addr, ok := s.names.LookupLabel(label)
	if !ok {
		return nil, ErrUnknownLabel
	}
	stmt := s.segments.Statement(addr)
	if stmt.Type() != mmdb.Provable {
		return nil, ErrNotProvable
	}
	fr, ok := s.scopes.Get(label)
	if !ok {
		return nil, ErrUnknownLabel
	}

	s.reset()
	s.beginFrame(label, addr, fr)

	var diag Diagnostic
	if stmt.ProofLen() > 0 && string(stmt.ProofSliceAt(0)) == "(" {
		diag = s.runCompressed(stmt)
	} else {
		diag = s.runUncompressed(stmt)
	}
	if diag != nil {
		return diag, nil
	}
	return s.finalizeStep(), nil
}
