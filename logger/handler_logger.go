package logger

import (
	"context"
	"time"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/handler"
)

// HandlerLogger is a Logger that writes entries to a handler.Handler.
// It is immutable.
type HandlerLogger struct {
	handler       handler.Handler
	category      string
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseClock   bool
}

// Builder provides a fluent API for building HandlerLogger instances
type Builder struct {
	handler       handler.Handler
	category      string
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseClock   bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 2,              // GetCaller, Log, then the caller of Log
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithCategory sets the category stamped on every entry
func (b *Builder) WithCategory(category string) *Builder {
	b.category = category
	return b
}

// WithLevel sets the minimum enabled level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adds frames to skip when resolving the caller, for
// wrappers that call Log on behalf of the application.
func (b *Builder) WithCallerSkip(extra int) *Builder {
	b.callerSkip += extra
	return b
}

// WithCoarseClock stamps entries with core.CoarseNow instead of time.Now
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	if enabled {
		core.StartCoarseClock()
	}
	return b
}

// Build creates the HandlerLogger instance
func (b *Builder) Build() *HandlerLogger {
	return &HandlerLogger{
		handler:       b.handler,
		category:      b.category,
		level:         b.level,
		fields:        append([]core.Field(nil), b.fields...),
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		coarseClock:   b.coarseClock,
	}
}

// Factory returns a Factory that builds one HandlerLogger per category
// from the builder's current settings.
func (b *Builder) Factory() Factory {
	proto := b.Build()
	return FactoryFunc(func(category string) Logger {
		l := *proto
		l.category = category
		return &l
	})
}

// With creates a new HandlerLogger with additional fields
func (l *HandlerLogger) With(fields ...core.Field) *HandlerLogger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	child := *l
	child.fields = newFields
	return &child
}

// Category returns the logger's category
func (l *HandlerLogger) Category() string {
	return l.category
}

// Enabled reports whether level passes the logger's minimum level
func (l *HandlerLogger) Enabled(level core.Level) bool {
	return l.handler != nil && level >= l.level && level < core.NoneLevel
}

// Log renders the message and hands one entry to the handler. Disabled
// levels return before the formatter runs.
func (l *HandlerLogger) Log(ctx context.Context, level core.Level, id core.EventID, state any, err error, format Formatter) error {
	if !l.Enabled(level) {
		return nil
	}
	if format == nil {
		format = DefaultFormatter
	}

	msg, ferr := format(state, err)
	if ferr != nil {
		return ferr
	}

	fields := make([]core.Field, 0, len(l.fields)+4)
	fields = append(fields, l.fields...)
	fields = append(fields, ScopeFields(ctx)...)
	if st, ok := state.(core.Structured); ok {
		fields = append(fields, st.Fields()...)
	}

	entry := &core.Entry{
		Time:     l.now(),
		Category: l.category,
		Level:    level,
		EventID:  id,
		Message:  msg,
		Err:      err,
		Fields:   core.FieldMap(fields),
	}
	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	return l.handler.Handle(entry)
}

// BeginScope pushes state onto the context's scope stack. Closing the
// returned scope is a no-op: the scope ends when the context is dropped.
func (l *HandlerLogger) BeginScope(ctx context.Context, state any) (context.Context, Scope) {
	return WithScope(ctx, state), NopScope
}

// Close closes the logger's handler
func (l *HandlerLogger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

func (l *HandlerLogger) now() time.Time {
	if l.coarseClock {
		return core.CoarseNow()
	}
	return time.Now()
}
