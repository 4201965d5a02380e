package verify

import "errors"

// ErrNotProvable is returned by VerifyStatement when asked to verify a
// statement that is not a $p: there is no proof to replay.
var ErrNotProvable = errors.New("verify: statement is not provable")

// ErrUnknownLabel is returned by VerifyStatement when asked to verify a
// label the name resolver does not know or the scope reader has no frame
// for.
var ErrUnknownLabel = errors.New("verify: unknown statement label")
