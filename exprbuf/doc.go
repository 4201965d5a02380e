// Package exprbuf implements the byte-encoded expression buffer shared by
// formula and verify: a flat []byte where each token's final byte has its
// high bit (0x80) set as an end-of-token sentinel.
//
// Storing expressions this way instead of as parsed trees lets the
// verifier treat substitution as byte-range splicing and equality checking
// as a plain memcmp, which is both what the source implementation does and
// the reason it is fast: no intermediate allocation for either operation.
package exprbuf
