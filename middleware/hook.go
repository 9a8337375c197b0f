package middleware

import (
	"context"

	"github.com/philipp01105/canonlog/capture"
	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// ErrorHandler receives errors a Sink returned while delivering entries
type ErrorHandler func(ctx context.Context, err error)

// Hook flushes a registry after a unit of work and delivers the entries
// to a sink.
type Hook struct {
	registry *capture.Registry
	sink     Sink
	onError  ErrorHandler
}

// NewHook creates a Hook over reg. Only the WithSink and WithErrorHandler
// options apply. It panics if reg is nil.
func NewHook(reg *capture.Registry, opts ...Option) *Hook {
	if reg == nil {
		panic("middleware: registry cannot be nil")
	}
	cfg := newConfig(opts)
	return &Hook{registry: reg, sink: cfg.sink, onError: cfg.onError}
}

// Run calls fn with a context carrying the registry. Whether fn returns
// normally, returns an error or panics, the registry is flushed to the
// sink before Run exits. fn's error is returned unchanged and a panic
// keeps propagating.
func (h *Hook) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx = capture.NewContext(ctx, h.registry)
	defer h.Flush(ctx)
	return fn(ctx)
}

// Flush drains the registry and delivers the entries. Sink errors go to
// the error handler.
func (h *Hook) Flush(ctx context.Context) {
	entries := h.registry.FlushAll()
	if err := h.sink.Consume(ctx, entries); err != nil {
		h.onError(ctx, err)
	}
}

// logError reports to the "canonlog" category of the default factory.
func logError(ctx context.Context, err error) {
	l := logger.Default().CreateLogger("canonlog")
	_ = logger.LogError(ctx, l, core.ErrorLevel, err, "delivering captured entries failed")
}
