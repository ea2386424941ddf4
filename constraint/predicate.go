package constraint

import (
	"fmt"
	"reflect"
)

// Predicate wraps a typed boolean function as a constraint. A value that is
// not a T fails the check rather than panicking, which keeps predicates safe
// to combine with broader type specifications.
func Predicate[T any](fn func(T) bool) Constraint {
	return predicate[T]{fn: fn}
}

type predicate[T any] struct {
	fn func(T) bool
}

func (p predicate[T]) Check(value any) bool {
	val, ok := value.(T)

	return ok && p.fn(val)
}

func (p predicate[T]) FailureMessage(value any) string {
	return fmt.Sprintf("%s does not satisfy it", repr(value))
}

func (p predicate[T]) String() string {
	return fmt.Sprintf("Predicate(func(%s) bool)", reflect.TypeOf((*T)(nil)).Elem())
}
