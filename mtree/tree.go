package mtree

// NodeId addresses a node within the Tree that produced it. It is dense
// (nodes are numbered 0, 1, 2, ... in creation order) and meaningless
// outside that tree.
type NodeId int32

// Tree is an immutable, ordered N-ary tree of labels of type L.
//
// Internally it is a flat, CSR-style structure: one label per node, plus a
// single shared children array that every node's child list slices into.
// That keeps AddNode to a single append and keeps ChildrenIter/NthChild
// allocation-free.
type Tree[L any] struct {
	labels      []L
	childStart  []int32
	childLen    []int32
	allChildren []NodeId
}

// AddNode appends a new node labeled label with the given children (already
// NodeIds within this same tree, in left-to-right order) and returns its
// NodeId. Children must have been created earlier in the same tree — Tree
// is append-only and never revisits a node once added.
func (t *Tree[L]) AddNode(label L, children []NodeId) NodeId {
	id := NodeId(len(t.labels))
	t.labels = append(t.labels, label)
	t.childStart = append(t.childStart, int32(len(t.allChildren)))
	t.childLen = append(t.childLen, int32(len(children)))
	t.allChildren = append(t.allChildren, children...)
	return id
}

// Label returns the label stored at id.
func (t *Tree[L]) Label(id NodeId) L {
	return t.labels[id]
}

// HasChildren reports whether id has at least one child.
func (t *Tree[L]) HasChildren(id NodeId) bool {
	return t.childLen[id] > 0
}

// NumChildren returns the number of children of id.
func (t *Tree[L]) NumChildren(id NodeId) int {
	return int(t.childLen[id])
}

// NthChild returns the k-th child (0-indexed) of id and true, or false if
// id has fewer than k+1 children.
func (t *Tree[L]) NthChild(id NodeId, k int) (NodeId, bool) {
	if k < 0 || k >= int(t.childLen[id]) {
		return 0, false
	}
	return t.allChildren[int(t.childStart[id])+k], true
}

// Children returns the child NodeIds of id, in order, as a slice backed
// directly by the tree's internal storage. Callers must not mutate it.
func (t *Tree[L]) Children(id NodeId) []NodeId {
	start := t.childStart[id]
	return t.allChildren[start : start+t.childLen[id]]
}

// ChildrenIter yields the children of id, in order, stopping early if yield
// returns false. It never allocates.
func (t *Tree[L]) ChildrenIter(id NodeId) func(yield func(NodeId) bool) {
	return func(yield func(NodeId) bool) {
		for _, c := range t.Children(id) {
			if !yield(c) {
				return
			}
		}
	}
}

// NumNodes returns the number of nodes added to the tree so far.
func (t *Tree[L]) NumNodes() int {
	return len(t.labels)
}

// Dump writes a labeled, indented rendering of the tree rooted at root to w,
// using nameOf to render labels. It is a debugging aid only.
func (t *Tree[L]) Dump(w interface{ WriteString(string) (int, error) }, root NodeId, nameOf func(L) string) {
	t.dumpNode(w, root, nameOf, 0)
}

func (t *Tree[L]) dumpNode(w interface{ WriteString(string) (int, error) }, id NodeId, nameOf func(L) string, depth int) {
	for i := 0; i < depth; i++ {
		_, _ = w.WriteString("  ")
	}
	_, _ = w.WriteString(nameOf(t.Label(id)))
	_, _ = w.WriteString("\n")
	for _, c := range t.Children(id) {
		t.dumpNode(w, c, nameOf, depth+1)
	}
}
