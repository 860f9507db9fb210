package codec

import (
	"reflect"
	"sync"
)

// registryKey combines type and codec for cache lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached pipeline or builds a new one.
// The pipeline is cached by type and codec content type; options are
// applied only on first construction.
func Use[T any](c Codec, opts ...Option) (*Pipeline[T], error) {
	typ := reflect.TypeFor[T]()
	key := registryKey{typ: typ, contentType: c.ContentType()}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Pipeline[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Pipeline[T]), nil
	}

	pipeline, err := NewPipeline[T](c, opts...)
	if err != nil {
		return nil, err
	}

	registry[key] = pipeline
	return pipeline, nil
}

// Reset clears the pipeline registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
