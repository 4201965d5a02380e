// Package mmdb defines the data mmkernel consumes from, and the interfaces
// it expects of, the surrounding Metamath toolchain: the tokenizer, the
// name resolver, and the scope analyzer.
//
// None of those collaborators are implemented here — mmkernel only needs
// to read their output. Frame, Hyp, and ExprFragment are plain data
// produced once per statement by scope analysis; NameResolver, SegmentSet,
// StatementRef, and ScopeReader are the narrow interfaces mmkernel calls
// through to reach that data and the raw proof/math token streams.
//
// mmdb/mmdbtest provides minimal in-memory implementations of these
// interfaces, used only by this module's own tests.
package mmdb
