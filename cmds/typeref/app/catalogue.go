package app

import (
	"slices"

	"github.com/ygrebnov/typeref"
	"github.com/ygrebnov/typeref/typehandler"
)

// myTypeReference extends the integer handler without supplying a type
// argument of its own; the binding is inherited from IntHandler.
type myTypeReference struct {
	typehandler.IntHandler
}

type pair[K comparable, V any] struct {
	Key   K
	Value V
}

type pairReference struct {
	typeref.Reference[pair[string, int]]
}

type deferred[T any] struct {
	typeref.Reference[T]
}

type counterHandler struct {
	deferred[int64]
}

// misconfigured embeds no Reference at all.
type misconfigured struct {
	typehandler.Handler
}

var catalogue = map[string]any{
	"my-type-reference": myTypeReference{},
	"int-handler":       typehandler.IntHandler{},
	"string-handler":    typehandler.StringHandler{},
	"pair":              pairReference{},
	"deferred":          counterHandler{},
	"misconfigured":     misconfigured{},
}

func catalogueNames() []string {
	names := make([]string, 0, len(catalogue))
	for n := range catalogue {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
