package anyvalue

import (
	"reflect"

	"github.com/toejough/anyvalue/internal/core"
)

// Type declares a single acceptable type for a matcher, e.g.
// anyvalue.New(anyvalue.Type[int]()).
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Null is the declaration for "matches nil". Use it alone for a nil-only
// matcher, or as a union member for an optional value:
//
//	anyvalue.New(anyvalue.Union(anyvalue.Type[string](), anyvalue.Null))
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var Null = core.NullMarker{}

// Union declares that any one of the given members is acceptable. Members
// may be types (Type[T]() or reflect.Type), Null, nil, or nested unions;
// nesting flattens and duplicates collapse. Member order is irrelevant to
// matching and preserved only for display.
func Union(members ...any) core.UnionDecl {
	return core.UnionDecl{Members: members}
}
