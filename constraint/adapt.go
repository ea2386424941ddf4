package constraint

import (
	"fmt"
	"reflect"
)

// gomegaShaped is the matcher contract shared by gomega's GomegaMatcher and
// imptest-style matchers; recognized by duck typing.
type gomegaShaped interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// gomockShaped is the matcher contract used by gomock and friends.
type gomockShaped interface {
	Matches(value any) bool
	String() string
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Adapt normalizes a raw validator into a Constraint. It accepts, in order:
// a Constraint; a gomega-shaped matcher (Match + FailureMessage); a
// gomock-shaped matcher (Matches + String); or a bare single-argument
// function returning bool or error (nil error means pass). Anything else is
// rejected here, at construction time, with ErrInvalidValidator.
func Adapt(raw any) (Constraint, error) {
	switch m := raw.(type) {
	case Constraint:
		return m, nil
	case gomegaShaped:
		return gomegaConstraint{m: m}, nil
	case gomockShaped:
		return gomockConstraint{m: m}, nil
	}

	t := reflect.TypeOf(raw)
	if t != nil && t.Kind() == reflect.Func && !t.IsVariadic() && t.NumIn() == 1 && t.NumOut() == 1 {
		switch {
		case t.Out(0).Kind() == reflect.Bool:
			return funcConstraint{fn: reflect.ValueOf(raw), typ: t}, nil
		case t.Out(0) == errType:
			return funcConstraint{fn: reflect.ValueOf(raw), typ: t, errFlavored: true}, nil
		}
	}

	return nil, fmt.Errorf("%w: %T is not a recognized constraint or a single-argument predicate",
		ErrInvalidValidator, raw)
}

// gomegaConstraint bridges a gomega-shaped matcher. A Match error counts as
// a failed check: inside a constraint list the type gate has already run, so
// an erroring matcher is a mismatch, not a crash.
type gomegaConstraint struct {
	m gomegaShaped
}

func (c gomegaConstraint) Check(value any) bool {
	ok, err := c.m.Match(value)

	return err == nil && ok
}

func (c gomegaConstraint) FailureMessage(value any) string {
	if _, err := c.m.Match(value); err != nil {
		return err.Error()
	}

	return c.m.FailureMessage(value)
}

func (c gomegaConstraint) String() string {
	if s, ok := c.m.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", c.m)
}

type gomockConstraint struct {
	m gomockShaped
}

func (c gomockConstraint) Check(value any) bool {
	return c.m.Matches(value)
}

func (c gomockConstraint) FailureMessage(value any) string {
	return fmt.Sprintf("%s does not satisfy it", repr(value))
}

func (c gomockConstraint) String() string {
	return c.m.String()
}

// funcConstraint adapts a bare func(T) bool or func(T) error.
type funcConstraint struct {
	fn          reflect.Value
	typ         reflect.Type
	errFlavored bool
}

func (c funcConstraint) Check(value any) bool {
	arg, ok := c.argFor(value)
	if !ok {
		return false
	}

	out := c.fn.Call([]reflect.Value{arg})[0]
	if c.errFlavored {
		return out.IsNil()
	}

	return out.Bool()
}

// argFor builds the call argument, refusing values the function cannot take.
func (c funcConstraint) argFor(value any) (reflect.Value, bool) {
	in := c.typ.In(0)

	if value == nil {
		switch in.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
			reflect.Interface, reflect.UnsafePointer:
			return reflect.Zero(in), true
		default:
			return reflect.Value{}, false
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(in) {
		return reflect.Value{}, false
	}

	return rv, true
}

func (c funcConstraint) FailureMessage(value any) string {
	if c.errFlavored {
		arg, ok := c.argFor(value)
		if ok {
			if out := c.fn.Call([]reflect.Value{arg})[0]; !out.IsNil() {
				return fmt.Sprintf("%s does not satisfy it: %v", repr(value), out.Interface())
			}
		}
	}

	return fmt.Sprintf("%s does not satisfy it", repr(value))
}

func (c funcConstraint) String() string {
	return fmt.Sprintf("Callable(%s)", c.typ)
}
