package typeref

import (
	"reflect"
	"strings"
)

// Type is the captured type argument of a Reference.
//
// Instantiations of a generic type are reduced to their raw form, so
// List[string] and List[int] produce equal descriptors. Type is comparable
// and can be used as a map key.
type Type struct {
	rt      reflect.Type // nil for a reduced generic instantiation
	pkgPath string
	name    string
	kind    reflect.Kind
	repr    string
}

// TypeOf returns the descriptor of T.
func TypeOf[T any]() Type {
	// Capture the static type of T even when T is an interface.
	return FromReflect(reflect.TypeOf((*T)(nil)).Elem())
}

// FromReflect returns the descriptor of t. A nil t yields the zero Type.
func FromReflect(t reflect.Type) Type {
	if t == nil {
		return Type{}
	}

	name := t.Name()
	i := strings.IndexByte(name, '[')
	if i < 0 {
		return Type{
			rt:      t,
			pkgPath: t.PkgPath(),
			name:    name,
			kind:    t.Kind(),
			repr:    t.String(),
		}
	}

	// Named instantiation: t.String() is "pkg.Name[args]".
	repr := t.String()
	if j := strings.IndexByte(repr, '['); j >= 0 {
		repr = repr[:j]
	}
	return Type{
		pkgPath: t.PkgPath(),
		name:    name[:i],
		kind:    t.Kind(),
		repr:    repr,
	}
}

// Name returns the raw type name, or "" for unnamed types.
func (t Type) Name() string {
	return t.name
}

func (t Type) PkgPath() string {
	return t.pkgPath
}

func (t Type) Kind() reflect.Kind {
	return t.kind
}

// Reflect returns the underlying reflect.Type. It returns nil for the zero
// Type and for reduced generic instantiations, which have no reflect.Type.
func (t Type) Reflect() reflect.Type {
	return t.rt
}

// IsGeneric reports whether t was reduced from a generic instantiation.
func (t Type) IsGeneric() bool {
	return t.rt == nil && t.name != ""
}

func (t Type) IsZero() bool {
	return t == Type{}
}

func (t Type) Equal(o Type) bool {
	return t == o
}

// Matches reports whether rt reduces to t.
func (t Type) Matches(rt reflect.Type) bool {
	return rt != nil && FromReflect(rt) == t
}

func (t Type) String() string {
	return t.repr
}
