package formula

import (
	"errors"
	"testing"
)

func identity(s string) string { return s }

// targetImp builds a Formula[string] standing in for a target-space
// formula; tests use the same label type on both sides of Unify via the
// identity conversion, keeping the scenarios readable.
func targetImp(t *testing.T, a, b string) Formula[string] {
	return buildImp(t, a, b)
}

func TestUnifySimpleVariableBinding(t *testing.T) {
	pattern := NewFormulaBuilder[string]("wff")
	pattern.PushVar("x")
	pat, err := pattern.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	target := targetImp(t, "ph", "ps")

	subst := NewSubstitutions[string, string]()
	if err := Unify(pat, target, identity, subst); err != nil {
		t.Fatalf("a bare pattern variable must unify with any target: %v", err)
	}
	bound, ok := subst.Get("x")
	if !ok || !Equal(bound, target) {
		t.Fatal("x should be bound to the whole target formula")
	}
}

func TestUnifyRepeatedVariableRequiresConsistentBinding(t *testing.T) {
	pattern := NewFormulaBuilder[string]("wff")
	pattern.PushVar("x")
	pattern.PushVar("x")
	if err := pattern.Reduce("->", 2); err != nil {
		t.Fatalf("reduce: %v", err)
	}
	pat, err := pattern.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	consistent := targetImp(t, "ph", "ph")
	subst := NewSubstitutions[string, string]()
	if err := Unify(pat, consistent, identity, subst); err != nil {
		t.Fatalf("x->x should unify against ph->ph: %v", err)
	}

	inconsistent := targetImp(t, "ph", "ps")
	subst2 := NewSubstitutions[string, string]()
	err := Unify(pat, inconsistent, identity, subst2)
	if err == nil {
		t.Fatal("x->x must not unify against ph->ps: x cannot bind two different targets")
	}
	if !errors.Is(err, ErrUnificationFailed) {
		t.Fatalf("expected ErrUnificationFailed, got %v", err)
	}
}

func TestUnifyFailsOnStructuralMismatch(t *testing.T) {
	pattern := NewFormulaBuilder[string]("wff")
	pattern.PushVar("x")
	pattern.PushVar("y")
	if err := pattern.Reduce("&", 2); err != nil {
		t.Fatalf("reduce: %v", err)
	}
	pat, err := pattern.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	target := targetImp(t, "ph", "ps") // built with -> not &

	subst := NewSubstitutions[string, string]()
	if err := Unify(pat, target, identity, subst); !errors.Is(err, ErrUnificationFailed) {
		t.Fatalf("& pattern must not unify against a -> target, got %v", err)
	}
}

func TestSubstituteRoundTripsThroughUnify(t *testing.T) {
	pattern := NewFormulaBuilder[string]("wff")
	pattern.PushVar("x")
	pattern.PushVar("y")
	if err := pattern.Reduce("->", 2); err != nil {
		t.Fatalf("reduce: %v", err)
	}
	pat, err := pattern.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	target := targetImp(t, "ph", "ps")

	subst := NewSubstitutions[string, string]()
	if err := Unify(pat, target, identity, subst); err != nil {
		t.Fatalf("unify should succeed: %v", err)
	}
	result := Substitute(pat, subst, identity)
	if !Equal(result, target) {
		t.Fatal("substituting the computed bindings back into the pattern must reproduce the target")
	}
}

type fixedWorkVars struct{ n int }

func (f *fixedWorkVars) NewWorkVariable(typecode string) string {
	f.n++
	return typecode + ".wrk" + string(rune('0'+f.n))
}

func TestCompleteSubstitutionsFillsUnboundVars(t *testing.T) {
	subst := NewSubstitutions[string, string]()
	provider := &fixedWorkVars{}
	CompleteSubstitutions([]string{"x", "y"}, subst, func(string) string { return "wff" }, provider)

	if subst.Len() != 2 {
		t.Fatalf("expected both variables bound, got %d", subst.Len())
	}
	bx, _ := subst.Get("x")
	if !bx.IsVar() {
		t.Fatal("a completed binding should be a bare work variable")
	}
}

func TestCompleteSubstitutionsLeavesExistingBindingsAlone(t *testing.T) {
	subst := NewSubstitutions[string, string]()
	already := targetImp(t, "ph", "ps")
	subst.Set("x", already)

	CompleteSubstitutions([]string{"x"}, subst, func(string) string { return "wff" }, &fixedWorkVars{})

	got, _ := subst.Get("x")
	if !Equal(got, already) {
		t.Fatal("an existing binding must not be overwritten by completion")
	}
}
