package core

import (
	"reflect"
	"testing"
)

// fakeValidator records whether it was checked, for ordering tests.
type fakeValidator struct {
	name    string
	pass    bool
	checked bool
}

func (f *fakeValidator) Check(any) bool { f.checked = true; return f.pass }

func (f *fakeValidator) FailureMessage(value any) string {
	return Repr(value) + " does not satisfy it"
}

func (f *fakeValidator) String() string { return f.name }

func mustResolve(t *testing.T, decl any) TypeSpec {
	t.Helper()

	spec, err := Resolve(decl)
	if err != nil {
		t.Fatalf("Resolve(%v) returned error: %v", decl, err)
	}

	return spec
}

// Test that a type mismatch short-circuits: no validator runs, and the
// reason names the expected spec, the dynamic type, and the value.
func TestMatch_TypeMismatchSkipsValidators(t *testing.T) {
	t.Parallel()

	spec := mustResolve(t, reflect.TypeOf(0))
	v := &fakeValidator{name: "Ge(ge=0)", pass: true}

	res := Match(spec, []Validator{v}, "hello")

	if res.OK {
		t.Fatal("int spec should not match a string")
	}

	want := "Expected type int, got string ('hello')"
	if res.Reason != want {
		t.Errorf("Reason = %q, want %q", res.Reason, want)
	}

	if v.checked {
		t.Error("validator ran despite type mismatch")
	}
}

// Test that an allowed nil succeeds immediately without running validators:
// constraints assume a present value of a concrete type.
func TestMatch_AllowedNilSkipsValidators(t *testing.T) {
	t.Parallel()

	spec := mustResolve(t, UnionDecl{Members: []any{reflect.TypeOf(0), NullMarker{}}})
	v := &fakeValidator{name: "Ge(ge=0)", pass: false}

	res := Match(spec, []Validator{v}, nil)

	if !res.OK {
		t.Fatalf("int | nil should match nil, got reason %q", res.Reason)
	}

	if v.checked {
		t.Error("validator ran against nil")
	}
}

// Test that a disallowed nil reports a type mismatch.
func TestMatch_DisallowedNil(t *testing.T) {
	t.Parallel()

	spec := mustResolve(t, reflect.TypeOf(0))

	res := Match(spec, nil, nil)

	if res.OK {
		t.Fatal("int spec should not match nil")
	}

	want := "Expected type int, got nil (<nil>)"
	if res.Reason != want {
		t.Errorf("Reason = %q, want %q", res.Reason, want)
	}
}

// Test that validators run in declaration order and the first failure
// short-circuits: later validators never run, and the reason references only
// the first failing one.
func TestMatch_FirstFailureShortCircuits(t *testing.T) {
	t.Parallel()

	spec := mustResolve(t, reflect.TypeOf(0))
	first := &fakeValidator{name: "Ge(ge=0)", pass: false}
	second := &fakeValidator{name: "MultipleOf(multiple_of=2)", pass: false}

	res := Match(spec, []Validator{first, second}, -2)

	if res.OK {
		t.Fatal("failing validator should fail the match")
	}

	want := "Validator Ge(ge=0) failed: -2 does not satisfy it"
	if res.Reason != want {
		t.Errorf("Reason = %q, want %q", res.Reason, want)
	}

	if second.checked {
		t.Error("second validator ran after the first failed")
	}
}

// Test that all validators passing (or none supplied) yields success with an
// empty reason.
func TestMatch_Success(t *testing.T) {
	t.Parallel()

	spec := mustResolve(t, reflect.TypeOf(0))

	res := Match(spec, nil, 42)
	if !res.OK || res.Reason != "" {
		t.Errorf("Match with no validators = %+v, want success with empty reason", res)
	}

	first := &fakeValidator{name: "a", pass: true}
	second := &fakeValidator{name: "b", pass: true}

	res = Match(spec, []Validator{first, second}, 42)
	if !res.OK {
		t.Errorf("Match with passing validators failed: %q", res.Reason)
	}

	if !first.checked || !second.checked {
		t.Error("all validators should run on success")
	}
}
