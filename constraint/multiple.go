package constraint

import (
	"fmt"
	"math"
	"reflect"
)

// MultipleOf returns a constraint that passes when value is an exact multiple
// of divisor. Integer values against integer divisors use the integer
// remainder; any floating-point participant uses math.Mod with no tolerance,
// so fractional divisors behave exactly (10.0 is a multiple of 2.5, 10.1 is
// not). Panics (wrapping ErrInvalidValidator) on a zero divisor.
func MultipleOf(divisor any) Constraint {
	d, ok := asNumber(reflect.ValueOf(divisor))
	if !ok {
		panic(fmt.Errorf("%w: MultipleOf divisor %v is not numeric", ErrInvalidValidator, divisor))
	}

	if d.toFloat() == 0 {
		panic(fmt.Errorf("%w: MultipleOf divisor must be nonzero", ErrInvalidValidator))
	}

	return multipleConstraint{divisor: divisor, d: d}
}

type multipleConstraint struct {
	divisor any
	d       number
}

func (c multipleConstraint) Check(value any) bool {
	v, ok := asNumber(reflect.ValueOf(value))
	if !ok {
		return false
	}

	if v.isFloat || c.d.isFloat {
		return math.Mod(v.toFloat(), c.d.toFloat()) == 0
	}

	// Sign is irrelevant to divisibility, so magnitudes suffice.
	return v.u%c.d.u == 0
}

func (c multipleConstraint) FailureMessage(value any) string {
	if _, ok := asNumber(reflect.ValueOf(value)); !ok {
		return fmt.Sprintf("%s is not numeric", repr(value))
	}

	return fmt.Sprintf("%s is not a multiple of %v", repr(value), c.divisor)
}

func (c multipleConstraint) String() string {
	return fmt.Sprintf("MultipleOf(multiple_of=%v)", c.divisor)
}
