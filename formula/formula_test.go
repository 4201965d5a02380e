package formula

import "testing"

func buildImp(t *testing.T, a, b string) Formula[string] {
	t.Helper()
	bld := NewFormulaBuilder[string]("wff")
	bld.PushVar(a)
	bld.PushVar(b)
	if err := bld.Reduce("->", 2); err != nil {
		t.Fatalf("reduce: %v", err)
	}
	f, err := bld.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return f
}

func TestBuilderProducesExpectedShape(t *testing.T) {
	f := buildImp(t, "ph", "ps")
	if f.IsVar() {
		t.Fatal("root should not be a variable")
	}
	if f.RootSymbol() != "->" {
		t.Fatalf("expected root symbol ->, got %v", f.RootSymbol())
	}
	if f.Arity() != 2 {
		t.Fatalf("expected arity 2, got %d", f.Arity())
	}
	if !f.Child(0).IsVar() || f.Child(0).VarLabel() != "ph" {
		t.Fatal("expected first child to be variable ph")
	}
}

func TestBuildFailsOnIncompleteStack(t *testing.T) {
	bld := NewFormulaBuilder[string]("wff")
	bld.PushVar("ph")
	bld.PushVar("ps")
	if _, err := bld.Build(); err != ErrIncompleteFormula {
		t.Fatalf("expected ErrIncompleteFormula, got %v", err)
	}
}

func TestReduceFailsOnUnderflow(t *testing.T) {
	bld := NewFormulaBuilder[string]("wff")
	bld.PushVar("ph")
	if err := bld.Reduce("->", 2); err != ErrStackUnderflow {
		t.Fatalf("expected ErrStackUnderflow, got %v", err)
	}
}

func TestEqualReflexiveAndStructural(t *testing.T) {
	a := buildImp(t, "ph", "ps")
	b := buildImp(t, "ph", "ps")
	c := buildImp(t, "ps", "ph")

	if !Equal(a, a) {
		t.Fatal("Equal must be reflexive")
	}
	if !Equal(a, b) {
		t.Fatal("structurally identical formulas must be equal")
	}
	if Equal(a, c) {
		t.Fatal("operand order matters: a->b != b->a")
	}
}

func TestEqualSymmetricAndTransitive(t *testing.T) {
	a := buildImp(t, "ph", "ps")
	b := buildImp(t, "ph", "ps")
	c := buildImp(t, "ph", "ps")
	if Equal(a, b) != Equal(b, a) {
		t.Fatal("Equal must be symmetric")
	}
	if Equal(a, b) && Equal(b, c) && !Equal(a, c) {
		t.Fatal("Equal must be transitive")
	}
}
