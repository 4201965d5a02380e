// Package mmdbtest builds tiny in-memory mmdb.SegmentSet/NameResolver/
// ScopeReader fixtures for this module's own tests. It is not meant for
// use outside the module: it has no tokenizer and no real scope analyzer,
// only a declarative Decl list that a test hands-assembles.
package mmdbtest
