// Package typeref recovers the type argument a struct binds by embedding
// Reference[T].
//
// A handler declares its payload type once, in its type definition:
//
//	type IntHandler struct{ typeref.Reference[int] }
//
// Any struct embedding IntHandler, directly or through further embedded
// structs, resolves to int as well. The binding can be read statically
// through the promoted RawType method, or dynamically from an arbitrary
// value with Of, which walks the embedding chain of the value's dynamic type.
package typeref

import (
	"reflect"
	"strings"
)

// Reference binds the type argument T for every struct that embeds it.
// It has no fields; the zero value is ready to use.
type Reference[T any] struct{}

// RawType returns the raw form of T. The result never changes for a given
// instantiation.
func (Reference[T]) RawType() Type {
	return TypeOf[T]()
}

// String returns the string form of RawType.
func (r Reference[T]) String() string {
	return r.RawType().String()
}

func (Reference[T]) typeArgument() Type {
	return TypeOf[T]()
}

// binder is implemented by every Reference instantiation.
type binder interface {
	typeArgument() Type
}

var referenceType = reflect.TypeOf(Reference[struct{}]{})

// isReference reports whether t is an instantiation of Reference itself, as
// opposed to a type that merely embeds one.
func isReference(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == referenceType.PkgPath() &&
		strings.HasPrefix(t.Name(), "Reference[")
}

// boundType returns the type argument of the Reference instantiation t.
func boundType(t reflect.Type) Type {
	return reflect.Zero(t).Interface().(binder).typeArgument()
}
