// Package anyvalue provides a constrained wildcard for test assertions: a
// matcher that stands in for an exact expected value while still asserting
// that the actual value has a declared type (or union of types, optionally
// nullable) and satisfies zero or more validation constraints.
//
// It is designed to drop in wherever an exact value is accepted by an
// assertion or mocking framework. An AnyValue implements gomega's
// GomegaMatcher, the gomock Matches/String pair, and works with testify's
// mock.MatchedBy via the Matches method:
//
//	av := anyvalue.New(anyvalue.Type[int](), constraint.Ge(0))
//	g.Expect(42).To(av)                      // gomega
//	m.AssertCalled(t, "Save", mock.MatchedBy(av.Matches)) // testify
//
// Implementation lives in internal/core; constraints in package constraint.
package anyvalue

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/toejough/anyvalue/constraint"
	"github.com/toejough/anyvalue/internal/core"
)

// Sentinel errors surfaced (wrapped) by New and TryNew. Both indicate a
// malformed test, never a match outcome.
var (
	ErrInvalidDeclaration = core.ErrInvalidDeclaration
	ErrInvalidValidator   = constraint.ErrInvalidValidator
)

// Result is the outcome of one comparison: a success flag plus a
// human-readable failure reason (empty on success).
type Result = core.Result

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// AnyValue matches any value of a declared type (or union of types,
// optionally nullable) that passes its constraints, in declaration order.
//
// An AnyValue is immutable after construction apart from the retained
// last-failure diagnostic, which is lock-guarded; a single instance may be
// shared across parallel subtests.
type AnyValue struct {
	spec        core.TypeSpec
	constraints []constraint.Constraint
	validators  []core.Validator

	mu         sync.Mutex
	lastReason string
}

// New builds a matcher from a type declaration and zero or more validators,
// each independently adapted via constraint.Adapt. It panics with an error
// wrapping ErrInvalidDeclaration or ErrInvalidValidator on malformed input:
// construction problems are programmer errors and surface before any
// comparison runs. Use TryNew to handle them as values instead.
func New(decl any, validators ...any) *AnyValue {
	av, err := TryNew(decl, validators...)
	if err != nil {
		panic(err)
	}

	return av
}

// TryNew is New with an error return instead of a panic.
func TryNew(decl any, validators ...any) (*AnyValue, error) {
	spec, err := core.Resolve(decl)
	if err != nil {
		return nil, err
	}

	constraints := make([]constraint.Constraint, 0, len(validators))
	coreValidators := make([]core.Validator, 0, len(validators))

	for _, raw := range validators {
		c, err := constraint.Adapt(raw)
		if err != nil {
			return nil, err
		}

		constraints = append(constraints, c)
		coreValidators = append(coreValidators, c)
	}

	return &AnyValue{spec: spec, constraints: constraints, validators: coreValidators}, nil
}

// Of is New for a single statically-known type: anyvalue.Of[int](Ge(0)).
func Of[T any](validators ...any) *AnyValue {
	return New(Type[T](), validators...)
}

// Check compares a candidate value against the matcher and returns the full
// Result. It is a pure function of (matcher, value): nothing is stored, so
// it is the form to prefer when one matcher serves concurrent comparisons
// and each caller wants its own reason.
func (a *AnyValue) Check(actual any) Result {
	return core.Match(a.spec, a.validators, actual)
}

// Matches reports whether actual satisfies the matcher. This is the gomock
// matcher contract and the function to hand to testify's mock.MatchedBy. It
// never panics or errors for a mismatch; the reason is retained for
// LastFailure.
func (a *AnyValue) Matches(actual any) bool {
	res := a.Check(actual)
	a.retain(res.Reason)

	return res.OK
}

// Match implements the gomega matcher contract. The error return is always
// nil: type mismatches and failed constraints are routine assertion
// outcomes, not errors.
func (a *AnyValue) Match(actual any) (bool, error) {
	return a.Matches(actual), nil
}

// FailureMessage implements the gomega matcher contract.
func (a *AnyValue) FailureMessage(actual any) string {
	res := a.Check(actual)
	if res.OK {
		return fmt.Sprintf("expected %s to match %v", core.Repr(actual), a)
	}

	return fmt.Sprintf("expected %s to match %v: %s", core.Repr(actual), a, res.Reason)
}

// NegatedFailureMessage implements the gomega matcher contract.
func (a *AnyValue) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("expected %s not to match %v", core.Repr(actual), a)
}

// String renders the matcher for assertion output, e.g.
// "AnyValue(int, Ge(ge=10))" or "AnyValue(int | string | nil)".
func (a *AnyValue) String() string {
	out := "AnyValue(" + a.spec.String()
	for _, c := range a.constraints {
		out += ", " + c.String()
	}

	return out + ")"
}

// LastFailure returns the reason from the most recent failed Matches or
// Match call, or "" if that call succeeded. It exists so tooling can print
// why a comparison failed without re-running it; Check does not update it.
func (a *AnyValue) LastFailure() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lastReason
}

func (a *AnyValue) retain(reason string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.lastReason = reason
}

// MatchValue checks if actual matches expected, accepting a matcher in
// either operand position, since assertion frameworks do not guarantee
// orientation. Two matcher operands compare by identity, falling back to
// their String forms; this never recurses into value matching. If neither
// operand is a matcher, reflect.DeepEqual decides.
// Returns (success, failureMessage). If success is true, the message is empty.
func MatchValue(actual, expected any) (bool, string) {
	expectedMatcher, expectedIs := expected.(Matcher)
	actualMatcher, actualIs := actual.(Matcher)

	// A typed-nil matcher has no spec to match with; treat it as a plain
	// nil-ish value rather than calling methods on it.
	expectedIs = expectedIs && !isNilPointer(expected)
	actualIs = actualIs && !isNilPointer(actual)

	switch {
	case expectedIs && actualIs:
		return matchersEqual(actual, expected)
	case expectedIs:
		return matchOne(expectedMatcher, actual)
	case actualIs:
		return matchOne(actualMatcher, expected)
	}

	if reflect.DeepEqual(actual, expected) {
		return true, ""
	}

	return false, fmt.Sprintf("expected %v, got %v", expected, actual)
}

func matchOne(matcher Matcher, value any) (bool, string) {
	success, err := matcher.Match(value)
	if err != nil {
		return false, err.Error()
	}

	if !success {
		return false, matcher.FailureMessage(value)
	}

	return true, ""
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// matchersEqual compares two matcher operands without invoking either one's
// match logic against the other.
func matchersEqual(a, b any) (bool, string) {
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() && a == b {
		return true, ""
	}

	as, aok := a.(fmt.Stringer)
	bs, bok := b.(fmt.Stringer)

	if aok && bok && as.String() == bs.String() {
		return true, ""
	}

	return false, fmt.Sprintf("matchers %v and %v are not the same matcher", a, b)
}
