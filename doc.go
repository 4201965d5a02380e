// Package mmkernel (mmkernel) is the checking core of a Metamath proof
// database: the parts that replay a proof and decide whether it actually
// proves what it claims to.
//
// 🚀 What is mmkernel?
//
//	A small, dependency-light set of packages implementing:
//
//	  • bitset  — compact growable sets of small integers (DV bookkeeping)
//	  • mtree   — immutable, shared, ordered N-ary trees (parsed formulas)
//	  • mmdb    — the data/interfaces the core consumes from collaborators
//	  • exprbuf — the byte-encoded, sentinel-delimited expression buffer
//	  • formula — typed expression trees, equality, unification, substitution
//	  • verify  — the proof-checking stack machine and its diagnostics
//
// ✨ Why this shape?
//
//   - Focused     — no tokenizer, no name resolver, no scope analyzer here;
//     those are collaborators this core consumes through interfaces.
//   - Deterministic — verifying the same proof against the same frames
//     always yields the same diagnostic, independent of scheduling.
//   - Parallel-ready — verification of distinct statements touches no
//     shared mutable state, so callers can fan it out across a worker pool.
//
// mmkernel does not discover proofs and does not re-verify incrementally:
// every call checks a fresh statement or segment against already-computed
// frames.
//
//	go get github.com/metamath-go/mmkernel
package mmkernel
