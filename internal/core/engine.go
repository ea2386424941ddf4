package core

import (
	"fmt"
	"reflect"
)

// Validator is the engine's view of a single constraint: a pass/fail check,
// a failure detail for diagnostics, and a stable textual form.
type Validator interface {
	Check(value any) bool
	FailureMessage(value any) string
	String() string
}

// Result is the outcome of one comparison. Reason is empty on success.
type Result struct {
	OK     bool
	Reason string
}

// Match runs the comparison algorithm: type check first, then validators in
// declaration order, short-circuiting on the first failure. A nil value that
// the spec allows succeeds immediately without running validators, since
// validators assume a present value of a concrete type.
func Match(spec TypeSpec, validators []Validator, value any) Result {
	if isNil(value) {
		if spec.NullAllowed() {
			return Result{OK: true}
		}

		return Result{Reason: typeMismatch(spec, value)}
	}

	if !spec.Matches(value) {
		return Result{Reason: typeMismatch(spec, value)}
	}

	for _, v := range validators {
		if !v.Check(value) {
			return Result{Reason: fmt.Sprintf("Validator %v failed: %s", v, v.FailureMessage(value))}
		}
	}

	return Result{OK: true}
}

func typeMismatch(spec TypeSpec, value any) string {
	return fmt.Sprintf("Expected type %v, got %s (%s)", spec, typeName(value), Repr(value))
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}

// Repr renders a value for diagnostics, quoting strings the way assertion
// output usually does.
func Repr(value any) string {
	if s, ok := value.(string); ok {
		return "'" + s + "'"
	}

	return fmt.Sprintf("%v", value)
}
