package typeref

import (
	"reflect"
	"strings"

	motmedelReflect "github.com/Motmedel/utils_go/pkg/reflect"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typeref/errors"
)

const missingHint = "remove the registration or embed typeref.Reference[T] with a type argument"

// Of resolves the type argument bound by the dynamic type of v.
// Pointer indirection is removed before resolving.
func Of(v any) (Type, error) {
	if v == nil {
		return Type{}, errors.ErrNilValue
	}
	return OfType(reflect.TypeOf(v))
}

// MustOf is like Of but panics if the type argument cannot be resolved.
// It simplifies package-level initialization of handler tables.
func MustOf(v any) Type {
	t, err := Of(v)
	if err != nil {
		panic(err)
	}
	return t
}

// For resolves the type argument bound by H.
func For[H any]() (Type, error) {
	return OfType(reflect.TypeOf((*H)(nil)).Elem())
}

// OfType resolves the type argument bound by t. Results are cached per type.
func OfType(t reflect.Type) (Type, error) {
	if t == nil {
		return Type{}, errors.ErrNilValue
	}
	t = motmedelReflect.RemoveIndirection(t)

	if r, ok := resolutions.get(t); ok {
		return r.typ, r.err
	}
	typ, err := resolve(t)
	if err == nil {
		log.Trace("resolved {{type}} to {{raw}}", "type", t.String(), "raw", typ.String())
	}
	resolutions.put(t, resolution{typ: typ, err: err})
	return typ, err
}

// resolve walks the embedding chain of t breadth-first, one depth at a time.
// An embedded Reference ends the walk; any other embedded struct is searched
// at the next depth, because the type argument may be bound further up.
// Within one depth, more than one Reference is ambiguous, matching Go's
// promotion rules.
func resolve(t reflect.Type) (Type, error) {
	if isReference(t) {
		return boundType(t), nil
	}

	level := []reflect.Type{t}
	seen := map[reflect.Type]bool{t: true}
	for len(level) > 0 {
		var (
			found []reflect.Type
			next  []reflect.Type
		)
		for _, lt := range level {
			if lt.Kind() != reflect.Struct {
				continue
			}
			for i := 0; i < lt.NumField(); i++ {
				f := lt.Field(i)
				if !f.Anonymous {
					continue
				}
				ft := motmedelReflect.RemoveIndirection(f.Type)
				if isReference(ft) {
					found = append(found, ft)
					continue
				}
				if ft.Kind() == reflect.Struct && !seen[ft] {
					seen[ft] = true
					next = append(next, ft)
				}
			}
		}

		switch {
		case len(found) == 1:
			return boundType(found[0]), nil
		case len(found) > 1:
			candidates := make([]string, len(found))
			for i, ft := range found {
				candidates[i] = boundType(ft).String()
			}
			return Type{}, errorc.With(
				errors.ErrAmbiguousTypeParameter,
				errorc.String(errors.ErrorFieldTypeName, t.String()),
				errorc.String(errors.ErrorFieldCandidates, strings.Join(candidates, ", ")),
			)
		}
		level = next
	}

	return Type{}, errorc.With(
		errors.ErrMissingTypeParameter,
		errorc.String(errors.ErrorFieldTypeName, t.String()),
		errorc.String(errors.ErrorFieldHint, missingHint),
	)
}
