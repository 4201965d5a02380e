package bitset

import "testing"

func collect(b *Bitset) []int {
	var out []int
	for i := range b.Range {
		out = append(out, i)
	}
	return out
}

func TestSetContains(t *testing.T) {
	var b Bitset
	if b.Contains(0) {
		t.Fatal("empty set should not contain 0")
	}
	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(200)
	for _, i := range []int{0, 63, 64, 200} {
		if !b.Contains(i) {
			t.Fatalf("expected bit %d to be set", i)
		}
	}
	for _, i := range []int{1, 62, 65, 199, 201} {
		if b.Contains(i) {
			t.Fatalf("bit %d should not be set", i)
		}
	}
}

func TestSetIdempotent(t *testing.T) {
	var b Bitset
	b.Set(5)
	b.Set(5)
	got := collect(&b)
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("expected [5], got %v", got)
	}
}

func TestRangeAscending(t *testing.T) {
	var b Bitset
	bits := []int{300, 1, 64, 0, 127, 128, 5}
	for _, i := range bits {
		b.Set(i)
	}
	got := collect(&b)
	want := []int{0, 1, 5, 64, 127, 128, 300}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestUnionAssign(t *testing.T) {
	var a, c Bitset
	a.Set(1)
	a.Set(100)
	c.Set(2)
	c.Set(200)

	a.UnionAssign(&c)

	for _, i := range []int{1, 2, 100, 200} {
		if !a.Contains(i) {
			t.Fatalf("union should contain %d", i)
		}
	}

	// property: for all i, union.Contains(i) == a.Contains(i) || b.Contains(i)
	var lhs, rhs Bitset
	lhs.Set(3)
	lhs.Set(70)
	rhs.Set(70)
	rhs.Set(9)
	union := lhs.Clone()
	union.UnionAssign(&rhs)
	for i := 0; i < 256; i++ {
		want := lhs.Contains(i) || rhs.Contains(i)
		if union.Contains(i) != want {
			t.Fatalf("bit %d: union=%v want=%v", i, union.Contains(i), want)
		}
	}
}

func TestIsSupersetOf(t *testing.T) {
	var a, b Bitset
	a.Set(1)
	a.Set(100)
	a.Set(5)
	b.Set(1)
	b.Set(100)
	if !a.IsSupersetOf(&b) {
		t.Fatal("a should be a superset of b")
	}
	b.Set(7)
	if a.IsSupersetOf(&b) {
		t.Fatal("a should no longer be a superset once b gains a bit a lacks")
	}

	var empty Bitset
	if !a.IsSupersetOf(&empty) {
		t.Fatal("every set is a superset of the empty set")
	}
	if !empty.IsSupersetOf(&empty) {
		t.Fatal("the empty set is a superset of itself")
	}
}

func TestCloneIndependence(t *testing.T) {
	var a Bitset
	a.Set(500)
	b := a.Clone()
	b.Set(501)
	if a.Contains(501) {
		t.Fatal("mutating clone must not affect original")
	}
	if !b.Contains(500) || !b.Contains(501) {
		t.Fatal("clone should retain original bits plus new ones")
	}
}
