package constraint

import (
	"fmt"
	"strings"
)

// Ge returns a constraint that passes when value >= bound.
func Ge(bound any) Constraint {
	return boundConstraint{name: "Ge", op: ">=", bound: bound, pass: func(cmp int) bool { return cmp >= 0 }}
}

// Gt returns a constraint that passes when value > bound.
func Gt(bound any) Constraint {
	return boundConstraint{name: "Gt", op: ">", bound: bound, pass: func(cmp int) bool { return cmp > 0 }}
}

// Le returns a constraint that passes when value <= bound.
func Le(bound any) Constraint {
	return boundConstraint{name: "Le", op: "<=", bound: bound, pass: func(cmp int) bool { return cmp <= 0 }}
}

// Lt returns a constraint that passes when value < bound.
func Lt(bound any) Constraint {
	return boundConstraint{name: "Lt", op: "<", bound: bound, pass: func(cmp int) bool { return cmp < 0 }}
}

type boundConstraint struct {
	name  string
	op    string
	bound any
	pass  func(cmp int) bool
}

// Check passes only for values comparable with the bound; an incomparable
// pair (say, a struct against an int bound) fails rather than panicking.
func (c boundConstraint) Check(value any) bool {
	cmp, ok := compareOrdered(value, c.bound)

	return ok && c.pass(cmp)
}

func (c boundConstraint) FailureMessage(value any) string {
	if _, ok := compareOrdered(value, c.bound); !ok {
		return fmt.Sprintf("%s is not comparable with %s", repr(value), repr(c.bound))
	}

	return fmt.Sprintf("%s is not %s %s", repr(value), c.op, repr(c.bound))
}

func (c boundConstraint) String() string {
	return fmt.Sprintf("%s(%s=%v)", c.name, strings.ToLower(c.name), c.bound)
}
