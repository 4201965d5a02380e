// Package verify checks Metamath $p statement proofs against the frames
// produced by an external scope analyzer (see mmdb): it replays a proof
// as a stack machine, substituting each cited hypothesis or assertion's
// conclusion and checking distinct-variable constraints as it goes, and
// reports the first (or, across a database, every) problem found as a
// Diagnostic rather than a Go error.
//
// VerifyStatement checks one $p statement; Database.Verify fans the work
// for a whole segment set out across a bounded worker pool, one State
// per worker, and collects every statement's Diagnostics into a Result.
package verify
