package middleware

import (
	"context"

	"go.uber.org/multierr"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/handler"
)

// Sink receives the entries flushed at the end of a unit of work. The
// sink owns the slice once Consume is called.
type Sink interface {
	Consume(ctx context.Context, entries []core.Entry) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, entries []core.Entry) error

// Consume calls f(ctx, entries)
func (f SinkFunc) Consume(ctx context.Context, entries []core.Entry) error {
	return f(ctx, entries)
}

// Discard is a Sink that drops every entry.
var Discard Sink = SinkFunc(func(context.Context, []core.Entry) error { return nil })

// HandlerSink writes every entry to a handler.Handler. Inside a request
// handled by Middleware, each entry is tagged with the request id.
type HandlerSink struct {
	handler handler.Handler
}

// NewHandlerSink creates a HandlerSink
func NewHandlerSink(h handler.Handler) *HandlerSink {
	return &HandlerSink{handler: h}
}

// Consume writes the entries in order. A failed write does not stop the
// remaining ones; all failures are combined.
func (s *HandlerSink) Consume(ctx context.Context, entries []core.Entry) error {
	info, _ := RequestInfoFromContext(ctx)

	var err error
	for i := range entries {
		e := entries[i]
		if info != nil && info.ID != "" {
			fields := make(map[string]any, len(e.Fields)+1)
			for k, v := range e.Fields {
				fields[k] = v
			}
			fields[RequestIDKey] = info.ID
			e.Fields = fields
		}
		err = multierr.Append(err, s.handler.Handle(&e))
	}
	return err
}
