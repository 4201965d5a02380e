package verify

import "github.com/metamath-go/mmkernel/mmdb"

// StatementResult is one statement's verification outcome.
type StatementResult struct {
	Label      []byte
	Address    mmdb.StatementAddress
	Diagnostic Diagnostic
}

// Result collects every statement's outcome from a Database.Verify run.
// Database.Verify sorts Statements by StatementAddress before returning,
// so Diagnostics() below can flatten without re-deriving order itself.
type Result struct {
	Statements []StatementResult
}

// Diagnostics returns every non-nil Diagnostic found, sorted by
// StatementAddress (database order), for deterministic output regardless
// of the worker pool's completion order.
func (r Result) Diagnostics() []Diagnostic {
	var out []Diagnostic
	for _, sr := range r.Statements {
		if sr.Diagnostic != nil {
			out = append(out, sr.Diagnostic)
		}
	}
	return out
}

// OK reports whether every statement verified cleanly.
func (r Result) OK() bool {
	for _, sr := range r.Statements {
		if sr.Diagnostic != nil {
			return false
		}
	}
	return true
}
