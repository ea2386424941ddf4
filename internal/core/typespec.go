package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalidDeclaration is the sentinel error for malformed type declarations.
// A declaration must be a reflect.Type, the null marker, or a union of those.
var ErrInvalidDeclaration = errors.New("invalid type declaration")

// NullMarker is the declaration for "matches nil". It can stand alone or
// appear as a union member, mirroring an optional value.
type NullMarker struct{}

// UnionDecl declares that any one of Members is acceptable. Members may be
// reflect.Type values, null markers, or nested unions; nesting flattens.
type UnionDecl struct {
	Members []any
}

// TypeSpec is the resolved form of a type declaration: an ordered set of
// acceptable types plus whether nil is acceptable. It is immutable after
// Resolve and safe for concurrent use.
type TypeSpec struct {
	types       []reflect.Type
	nullAllowed bool
}

// Resolve normalizes a declaration into a TypeSpec.
// Accepted declarations: a reflect.Type, untyped nil, NullMarker, or a
// UnionDecl composed (at any depth) of those. Duplicate union members
// collapse; member order is preserved for display only.
func Resolve(decl any) (TypeSpec, error) {
	var spec TypeSpec
	if err := spec.add(decl); err != nil {
		return TypeSpec{}, err
	}

	// The only valid empty-types spec is "nil only".
	if len(spec.types) == 0 && !spec.nullAllowed {
		return TypeSpec{}, fmt.Errorf("%w: union has no members", ErrInvalidDeclaration)
	}

	return spec, nil
}

func (s *TypeSpec) add(decl any) error {
	switch d := decl.(type) {
	case nil:
		s.nullAllowed = true
	case NullMarker:
		s.nullAllowed = true
	case UnionDecl:
		for _, m := range d.Members {
			if err := s.add(m); err != nil {
				return err
			}
		}
	case reflect.Type:
		s.addType(d)
	default:
		return fmt.Errorf("%w: %T is not a type, the null marker, or a union",
			ErrInvalidDeclaration, decl)
	}

	return nil
}

func (s *TypeSpec) addType(t reflect.Type) {
	for _, existing := range s.types {
		if existing == t {
			return
		}
	}

	s.types = append(s.types, t)
}

// NullAllowed reports whether the spec accepts nil.
func (s TypeSpec) NullAllowed() bool {
	return s.nullAllowed
}

// Matches reports whether value satisfies the spec. Exactly one branch runs:
// a nil value (untyped nil, or a nil pointer/map/slice/chan/func) matches iff
// nil is allowed; any other value matches iff its dynamic type is identical
// to, assignable to, or implements one of the spec's types.
func (s TypeSpec) Matches(value any) bool {
	if isNil(value) {
		return s.nullAllowed
	}

	dyn := reflect.TypeOf(value)
	for _, t := range s.types {
		if dyn == t || dyn.AssignableTo(t) {
			return true
		}
	}

	return false
}

// String renders the spec the way it was declared, e.g. "int",
// "int | string | nil", or "nil" for the null-only spec.
func (s TypeSpec) String() string {
	parts := make([]string, 0, len(s.types)+1)
	for _, t := range s.types {
		parts = append(parts, t.String())
	}

	if s.nullAllowed {
		parts = append(parts, "nil")
	}

	return strings.Join(parts, " | ")
}

// isNil treats nil-valued pointers, maps, slices, channels, and funcs the
// same as untyped nil, so "T | nil" behaves like an optional regardless of
// whether the caller's nil picked up a type on the way in.
func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
