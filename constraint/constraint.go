// Package constraint provides the validation constraints accepted by
// anyvalue matchers: ordered bounds (Ge, Gt, Le, Lt), length ranges,
// divisibility, and predicate wrappers, plus an adapter that normalizes
// third-party matchers and bare functions into the same contract.
//
// Every constraint is immutable, has no identity beyond its parameters, and
// coerces its pass/fail decision to a plain bool exactly once, at this
// package's boundary.
package constraint

import (
	"errors"
	"fmt"
)

// ErrInvalidValidator is the sentinel error for values that are neither a
// recognized constraint shape nor invocable as a single-argument predicate.
// It surfaces at adaptation time, never during a comparison.
var ErrInvalidValidator = errors.New("invalid validator")

// Constraint is a single checkable rule a candidate value must satisfy.
// String returns a stable textual form of the kind and its parameters, e.g.
// "Ge(ge=10)"; FailureMessage explains why a specific value failed.
type Constraint interface {
	Check(value any) bool
	FailureMessage(value any) string
	String() string
}

// repr renders a value for failure messages, quoting strings.
func repr(value any) string {
	if s, ok := value.(string); ok {
		return "'" + s + "'"
	}

	return fmt.Sprintf("%v", value)
}
