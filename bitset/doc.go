// Package bitset implements a compact, growable set of small non-negative
// integers.
//
// A Bitset never shrinks: once a bit is set it stays set until the whole
// value is discarded. That matches how the verifier and the formula package
// use it — DV bookkeeping and variable-occurrence sets only ever grow over
// the lifetime of a single proof check.
//
// The first word's worth of bits lives inline in the struct; anything past
// that spills into a lazily allocated tail slice, so the common case (a
// handful of distinct variables per proof) costs no allocation at all.
package bitset
