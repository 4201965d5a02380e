// Package mtree implements an immutable, ordered, N-ary tree shared by
// reference across multiple owners.
//
// A Tree is built once, node by node, via AddNode; after it has been handed
// to a formula.Formula it is never mutated again. Node identity is a dense
// integer NodeId valid only within the tree that produced it. Because Go is
// garbage collected, sharing a Tree across many Formula values needs no
// reference counting: each Formula holds a copy of the Tree value whose
// slices point at the same node storage, and that storage stays alive for
// as long as any Formula still refers to it.
package mtree
