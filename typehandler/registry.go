package typehandler

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/logging"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/typeref"
	"github.com/ygrebnov/typeref/errors"
)

type Registry interface {
	// Register adds h under the payload type it binds through Base or
	// typeref.Reference.
	Register(h Handler) error
	// RegisterFor adds h under t, regardless of what h embeds.
	RegisterFor(t reflect.Type, h Handler) error
	Lookup(t reflect.Type) (Handler, error)
	LookupValue(v any) (Handler, error)
	// Types returns the registered payload types sorted by name.
	Types() []typeref.Type
	Len() int
}

type entry struct {
	typ     typeref.Type
	handler Handler
}

// registry is a registry of type handlers keyed by raw payload type.
type registry struct {
	mu      sync.RWMutex
	log     logging.Logger
	byType  map[typeref.Type]Handler
	entries []entry // registration order
}

// NewRegistry creates an empty registry and applies opts in order.
func NewRegistry(opts ...Option) (Registry, error) {
	r := &registry{
		log:    log,
		byType: make(map[typeref.Type]Handler),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) Register(h Handler) error {
	if h == nil {
		return errors.ErrNilHandler
	}
	typ, err := typeref.Of(h)
	if err != nil {
		return err
	}
	return r.add(typ, h)
}

func (r *registry) RegisterFor(t reflect.Type, h Handler) error {
	if h == nil {
		return errors.ErrNilHandler
	}
	if t == nil {
		return errors.ErrInvalidValue
	}
	return r.add(typeref.FromReflect(t), h)
}

func (r *registry) add(typ typeref.Type, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Prevent two handlers for the same payload type.
	if _, exists := r.byType[typ]; exists {
		return errorc.With(
			errors.ErrDuplicateHandler,
			errorc.String(errors.ErrorFieldHandlerType, typ.String()),
		)
	}

	r.byType[typ] = h
	r.entries = append(r.entries, entry{typ: typ, handler: h})
	r.log.Debug("registered handler {{handler}} for {{type}}", "handler", fmt.Sprintf("%T", h), "type", typ.String())
	return nil
}

// Lookup returns the handler for payload type t.
// Selection strategy:
//  1. Prefer a handler registered for the raw form of t.
//  2. Otherwise accept handlers whose payload type t is assignable to
//     (interfaces), preferring the first registered.
//  3. If no matches, return a descriptive error listing available types.
func (r *registry) Lookup(t reflect.Type) (Handler, error) {
	if t == nil {
		return nil, errors.ErrInvalidValue
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.byType[typeref.FromReflect(t)]; ok {
		return h, nil
	}

	for _, e := range r.entries {
		rt := e.typ.Reflect()
		if rt == nil {
			continue // reduced generic types only match exactly
		}
		if rt.Kind() == reflect.Interface && t.AssignableTo(rt) {
			return e.handler, nil
		}
	}

	r.log.Trace("no handler for {{type}}", "type", t.String())
	return nil, errorc.With(
		errors.ErrHandlerNotFound,
		errorc.String(errors.ErrorFieldValueType, t.String()),
		errorc.String(errors.ErrorFieldAvailableTypes, strings.Join(r.typeNames(), ", ")),
	)
}

func (r *registry) LookupValue(v any) (Handler, error) {
	if v == nil {
		return nil, errors.ErrInvalidValue
	}
	return r.Lookup(reflect.TypeOf(v))
}

func (r *registry) Types() []typeref.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]typeref.Type, 0, len(r.entries))
	for _, e := range r.entries {
		types = append(types, e.typ)
	}
	slices.SortFunc(types, func(a, b typeref.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return types
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// typeNames must be called with r.mu held.
func (r *registry) typeNames() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.typ.String())
	}
	slices.Sort(names)

	return names
}
