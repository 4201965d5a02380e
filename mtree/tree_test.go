package mtree

import (
	"strings"
	"testing"
)

func TestAddNodeAndAccessors(t *testing.T) {
	var tr Tree[string]

	leaf1 := tr.AddNode("ph", nil)
	leaf2 := tr.AddNode("ps", nil)
	root := tr.AddNode("->", []NodeId{leaf1, leaf2})

	if tr.Label(root) != "->" {
		t.Fatalf("expected label ->, got %q", tr.Label(root))
	}
	if !tr.HasChildren(root) {
		t.Fatal("root should have children")
	}
	if tr.HasChildren(leaf1) {
		t.Fatal("leaf should have no children")
	}
	if tr.NumChildren(root) != 2 {
		t.Fatalf("expected 2 children, got %d", tr.NumChildren(root))
	}

	c0, ok := tr.NthChild(root, 0)
	if !ok || c0 != leaf1 {
		t.Fatalf("nth child 0: got %v ok=%v", c0, ok)
	}
	c1, ok := tr.NthChild(root, 1)
	if !ok || c1 != leaf2 {
		t.Fatalf("nth child 1: got %v ok=%v", c1, ok)
	}
	if _, ok := tr.NthChild(root, 2); ok {
		t.Fatal("nth child 2 should not exist")
	}
}

func TestChildrenIterOrderAndStop(t *testing.T) {
	var tr Tree[int]
	var kids []NodeId
	for i := 0; i < 5; i++ {
		kids = append(kids, tr.AddNode(i, nil))
	}
	root := tr.AddNode(99, kids)

	var seen []NodeId
	for c := range tr.ChildrenIter(root) {
		seen = append(seen, c)
	}
	if len(seen) != len(kids) {
		t.Fatalf("expected %d children, got %d", len(kids), len(seen))
	}
	for i, c := range seen {
		if c != kids[i] {
			t.Fatalf("children out of order at %d: got %v want %v", i, c, kids[i])
		}
	}

	var count int
	for range tr.ChildrenIter(root) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("early break should stop at 2, got %d", count)
	}
}

func TestDump(t *testing.T) {
	var tr Tree[string]
	leaf := tr.AddNode("ph", nil)
	root := tr.AddNode("->", []NodeId{leaf, leaf})

	var sb strings.Builder
	tr.Dump(&sb, root, func(s string) string { return s })

	out := sb.String()
	if !strings.Contains(out, "->") || !strings.Contains(out, "ph") {
		t.Fatalf("dump output missing expected labels: %q", out)
	}
}

func TestSharedTreeMultipleRoots(t *testing.T) {
	var tr Tree[string]
	a := tr.AddNode("a", nil)
	b := tr.AddNode("b", nil)
	_ = tr.AddNode("pair", []NodeId{a, b})

	// Both a and b remain independently addressable roots into the same tree.
	if tr.Label(a) != "a" || tr.Label(b) != "b" {
		t.Fatal("shared tree must keep all node identities stable")
	}
}
