package capture

import (
	"context"
	"sync/atomic"

	"github.com/philipp01105/canonlog/logger"
)

type contextKey struct{}

var defaultRegistry atomic.Pointer[Registry]

// NewContext returns a copy of ctx carrying r
func NewContext(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the registry carried by ctx, or the default
// registry when ctx has none. It returns nil if neither exists.
func FromContext(ctx context.Context) *Registry {
	if ctx != nil {
		if r, ok := ctx.Value(contextKey{}).(*Registry); ok && r != nil {
			return r
		}
	}
	return Default()
}

// Default returns the process-wide registry set by Install or SetDefault
func Default() *Registry {
	return defaultRegistry.Load()
}

// SetDefault replaces the process-wide registry. A nil r clears it.
func SetDefault(r *Registry) {
	defaultRegistry.Store(r)
}

// Install creates a Registry over factory and registers it as both the
// default registry and the default logger.Factory, so every logger the
// application obtains from logger.Default is a capturing one.
func Install(factory logger.Factory, opts ...Option) *Registry {
	r := NewRegistry(factory, opts...)
	SetDefault(r)
	logger.SetDefault(r)
	return r
}
