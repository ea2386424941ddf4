package constraint

import (
	"fmt"
	"reflect"
)

// Len returns a constraint that passes when the value's length is within
// [minLength, maxLength], inclusive. It applies to strings, slices, arrays,
// maps, and channels; valueless-of-length values fail the check.
// Panics (wrapping ErrInvalidValidator) on an impossible range, since that is
// a malformed test rather than a match outcome.
func Len(minLength, maxLength int) Constraint {
	if minLength < 0 || maxLength < minLength {
		panic(fmt.Errorf("%w: Len(%d, %d) is not a valid length range",
			ErrInvalidValidator, minLength, maxLength))
	}

	return lenConstraint{min: minLength, max: maxLength}
}

type lenConstraint struct {
	min, max int
}

func (c lenConstraint) Check(value any) bool {
	length, ok := lengthOf(value)

	return ok && c.min <= length && length <= c.max
}

func (c lenConstraint) FailureMessage(value any) string {
	length, ok := lengthOf(value)

	switch {
	case !ok:
		return fmt.Sprintf("value of type %T has no length", value)
	case length < c.min:
		return fmt.Sprintf("length %d is less than min %d", length, c.min)
	case length > c.max:
		return fmt.Sprintf("length %d is greater than max %d", length, c.max)
	default:
		return fmt.Sprintf("length %d is within [%d, %d]", length, c.min, c.max)
	}
}

func (c lenConstraint) String() string {
	return fmt.Sprintf("Len(min_length=%d, max_length=%d)", c.min, c.max)
}

func lengthOf(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}
