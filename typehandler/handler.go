// Package typehandler dispatches Go payload values to handlers bound to
// their type. A handler declares its payload type by embedding Base[T];
// the registry recovers T with typeref.Of.
package typehandler

import (
	"database/sql/driver"
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typeref"
	"github.com/ygrebnov/typeref/errors"
)

// Handler converts between a Go payload value and a driver.Value.
type Handler interface {
	// Value converts a payload value into a driver value.
	Value(v any) (driver.Value, error)
	// Scan converts a driver value into a payload value. A nil src yields
	// a nil result.
	Scan(src any) (any, error)
}

// Base is embedded by handlers to bind their payload type T.
type Base[T any] struct {
	typeref.Reference[T]
}

// Check asserts that v is a T.
func (b Base[T]) Check(v any) (T, error) {
	val, ok := v.(T)
	if !ok {
		var zero T
		return zero, errorc.With(
			errors.ErrHandlerTypeMismatch,
			errorc.String(errors.ErrorFieldValueType, fmt.Sprintf("%T", v)),
			errorc.String(errors.ErrorFieldHandlerType, b.RawType().String()),
		)
	}
	return val, nil
}

// unsupported reports a driver value the handler cannot scan.
func unsupported(src any, t typeref.Type) error {
	return errorc.With(
		errors.ErrUnsupportedSource,
		errorc.String(errors.ErrorFieldValueType, fmt.Sprintf("%T", src)),
		errorc.String(errors.ErrorFieldHandlerType, t.String()),
	)
}

// parseFailed wraps a conversion error of a textual driver value.
func parseFailed(src any, t typeref.Type, err error) error {
	return errorc.With(
		errors.ErrUnsupportedSource,
		errorc.String(errors.ErrorFieldValueType, fmt.Sprintf("%T", src)),
		errorc.String(errors.ErrorFieldHandlerType, t.String()),
		errorc.Error(errors.ErrorFieldCause, err),
	)
}
