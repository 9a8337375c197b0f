package capture

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// Logger decorates a logger.Logger. Every call is forwarded unchanged;
// calls carrying core.Structured state are also captured into the
// logger's Buffer.
type Logger struct {
	category string
	inner    logger.Logger
	buf      Buffer
	stats    *Stats
	closed   atomic.Bool
}

// New creates a capturing Logger for category that forwards to inner.
// It panics if inner is nil.
func New(category string, inner logger.Logger) *Logger {
	return newLogger(category, inner, &Stats{})
}

func newLogger(category string, inner logger.Logger, stats *Stats) *Logger {
	if inner == nil {
		panic("capture: underlying logger cannot be nil")
	}
	return &Logger{category: category, inner: inner, stats: stats}
}

// Category returns the category the logger was created for
func (l *Logger) Category() string {
	return l.category
}

// Enabled delegates to the underlying logger
func (l *Logger) Enabled(level core.Level) bool {
	return l.inner.Enabled(level)
}

// Log forwards the call to the underlying logger and, if state is
// structured, appends an entry. Capture does not consult Enabled.
//
// An error from the underlying logger is returned unchanged and nothing is
// captured. An error from format is returned and nothing is captured.
// After the owning Registry is closed, Log only forwards.
func (l *Logger) Log(ctx context.Context, level core.Level, id core.EventID, state any, err error, format logger.Formatter) error {
	if ferr := l.inner.Log(ctx, level, id, state, err, format); ferr != nil {
		return ferr
	}

	st, ok := state.(core.Structured)
	if !ok || l.closed.Load() {
		return nil
	}
	if format == nil {
		format = logger.DefaultFormatter
	}
	msg, ferr := format(state, err)
	if ferr != nil {
		return ferr
	}

	l.stats.recordCaptured(level)
	l.buf.Append(core.Entry{
		Time:     time.Now(),
		Category: l.category,
		Level:    level,
		EventID:  id,
		Message:  msg,
		Err:      err,
		Fields:   core.FieldMap(st.Fields()),
	})
	return nil
}

// BeginScope delegates to the underlying logger. Closing the returned
// scope closes the underlying one; scopes themselves are not captured.
func (l *Logger) BeginScope(ctx context.Context, state any) (context.Context, logger.Scope) {
	ctx, scope := l.inner.BeginScope(ctx, state)
	if scope == nil {
		return ctx, logger.NopScope
	}
	return ctx, logger.NewScope(scope.Close)
}

// Flush drains the captured entries in the order they were logged.
// It returns nil when nothing was captured since the last flush.
func (l *Logger) Flush() []core.Entry {
	entries := l.buf.Drain()
	l.stats.recordFlushed(len(entries))
	return entries
}

// Pending returns the number of entries waiting to be flushed
func (l *Logger) Pending() int {
	return l.buf.Len()
}

// Stats returns a snapshot of the logger's statistics. Loggers created by
// a Registry share the registry's counters.
func (l *Logger) Stats() StatsSnapshot {
	return l.stats.Snapshot()
}

// close stops capturing and discards what is buffered
func (l *Logger) close() {
	l.closed.Store(true)
	l.discard()
}

func (l *Logger) discard() {
	l.stats.recordDiscarded(len(l.buf.Drain()))
}

var _ logger.Logger = (*Logger)(nil)
