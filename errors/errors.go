package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typeref/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	ErrNilValue               = namespace.NewError("nil value")
	ErrMissingTypeParameter   = namespace.NewError("missing type parameter")
	ErrAmbiguousTypeParameter = namespace.NewError("ambiguous type parameter")
	ErrNilHandler             = namespace.NewError("nil handler")
	ErrDuplicateHandler       = namespace.NewError("duplicate handler")
	ErrHandlerNotFound        = namespace.NewError("handler not found")
	ErrHandlerTypeMismatch    = namespace.NewError("handler type mismatch")
	ErrInvalidValue           = namespace.NewError("invalid value")
	ErrUnsupportedSource      = namespace.NewError("unsupported source value")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentType    = "type"
	keySegmentHandler = "handler"
)

// Exported structured error field keys
var (
	ErrorFieldTypeName       = newKey("name", keySegmentType)       // typeref.type.name
	ErrorFieldCandidates     = newKey("candidates", keySegmentType) // typeref.type.candidates
	ErrorFieldHint           = newKey("hint", keySegmentType)       // typeref.type.hint
	ErrorFieldHandlerType    = newKey("type", keySegmentHandler)    // typeref.handler.type
	ErrorFieldValueType      = newKey("value_type", keySegmentHandler)
	ErrorFieldAvailableTypes = newKey("available_types", keySegmentHandler)
)

var (
	ErrorFieldCause = newKey("cause")
)
