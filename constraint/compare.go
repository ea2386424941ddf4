package constraint

import (
	"math"
	"reflect"
	"strings"
)

// compareOrdered compares value against bound, returning -1, 0, or 1 and
// whether the pair is comparable at all. Integers, unsigned integers, and
// floats compare across kinds; strings compare lexically. Everything else is
// incomparable, including NaN on either side: NaN is ordered with nothing,
// so every bound check against it fails rather than reading as on-the-bound.
func compareOrdered(value, bound any) (int, bool) {
	v := reflect.ValueOf(value)
	b := reflect.ValueOf(bound)

	if v.Kind() == reflect.String && b.Kind() == reflect.String {
		return strings.Compare(v.String(), b.String()), true
	}

	vn, vok := asNumber(v)
	bn, bok := asNumber(b)
	if !vok || !bok || vn.isNaN() || bn.isNaN() {
		return 0, false
	}

	return vn.compare(bn), true
}

// number is a sign-preserving numeric view: exact for integers, float64 for
// floating-point values.
type number struct {
	isFloat bool
	f       float64
	isNeg   bool // integer flavor: value stored in u is negated
	u       uint64
}

func asNumber(v reflect.Value) (number, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < 0 {
			return number{isNeg: true, u: uint64(-i)}, true
		}

		return number{u: uint64(i)}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number{u: v.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{isFloat: true, f: v.Float()}, true
	default:
		return number{}, false
	}
}

func (n number) isNaN() bool {
	return n.isFloat && math.IsNaN(n.f)
}

func (n number) compare(o number) int {
	switch {
	case n.isFloat && o.isFloat:
		return compareFloats(n.f, o.f)
	case n.isFloat:
		return -compareIntFloat(o, n.f)
	case o.isFloat:
		return compareIntFloat(n, o.f)
	}

	switch {
	case n.isNeg && !o.isNeg:
		if n.u == 0 && o.u == 0 {
			return 0
		}

		return -1
	case !n.isNeg && o.isNeg:
		if n.u == 0 && o.u == 0 {
			return 0
		}

		return 1
	case n.isNeg: // both negative: larger magnitude is smaller
		return compareUints(o.u, n.u)
	default:
		return compareUints(n.u, o.u)
	}
}

func (n number) toFloat() float64 {
	if n.isFloat {
		return n.f
	}

	if n.isNeg {
		return -float64(n.u)
	}

	return float64(n.u)
}

// compareIntFloat compares an integer-flavored number against a float
// exactly, without converting the integer to float64: above 2^53 that
// conversion rounds, which would misorder neighboring values. The float's
// whole part is compared against the integer's magnitude instead, with a
// nonzero fraction breaking the tie. The float is never NaN here.
func compareIntFloat(n number, f float64) int {
	if math.IsInf(f, 1) {
		return -1
	}

	if math.IsInf(f, -1) {
		return 1
	}

	nNeg := n.isNeg && n.u != 0
	fNeg := f < 0

	switch {
	case !nNeg && fNeg:
		return 1
	case nNeg && !fNeg:
		return -1
	}

	mag := math.Abs(f)

	var cmp int

	switch {
	case mag >= 1<<64: // no uint64 magnitude reaches this
		cmp = -1
	case n.u > uint64(mag):
		cmp = 1
	case n.u < uint64(mag):
		cmp = -1
	case mag != math.Trunc(mag): // equal whole parts; the fraction decides
		cmp = -1
	default:
		cmp = 0
	}

	if nNeg {
		// Both negative: the larger magnitude is the smaller value.
		return -cmp
	}

	return cmp
}

func compareUints(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
