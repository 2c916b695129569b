package typeref

import (
	"reflect"
	"sync"
)

// resolution is the cached outcome of resolving one type.
type resolution struct {
	typ Type
	err error
}

// resolutionCache holds resolutions keyed by reflect.Type. Embedding chains
// are static for a compiled type, so entries never need invalidation.
type resolutionCache struct {
	c cache // map[reflect.Type]resolution
}

type cache interface {
	Load(key any) (value any, ok bool)
	Store(key any, value any)
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{
		c: &sync.Map{},
	}
}

var resolutions = newResolutionCache()

func (c *resolutionCache) get(t reflect.Type) (resolution, bool) {
	if v, ok := c.c.Load(t); ok {
		return v.(resolution), true
	}
	return resolution{}, false
}

func (c *resolutionCache) put(t reflect.Type, r resolution) {
	c.c.Store(t, r)
}
