package capture

import (
	"io"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// Option configures a Registry
type Option func(*Registry)

// WithClosers registers resources, such as the handlers behind the
// factory, that Close releases after discarding buffered entries.
func WithClosers(closers ...io.Closer) Option {
	return func(r *Registry) {
		r.closers = append(r.closers, closers...)
	}
}

// Registry maps categories to capturing loggers. It returns the same
// *Logger for a category for as long as the registry is open, and
// implements logger.Factory so it can stand in for the factory it wraps.
type Registry struct {
	factory logger.Factory
	loggers sync.Map // category -> *Logger
	mu      sync.Mutex
	stats   Stats
	closers []io.Closer
}

// NewRegistry creates a Registry over factory. It panics if factory is nil.
func NewRegistry(factory logger.Factory, opts ...Option) *Registry {
	if factory == nil {
		panic("capture: factory cannot be nil")
	}
	r := &Registry{factory: factory}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Logger returns the capturing logger for category, creating it on first
// use. The underlying factory is called once per category.
func (r *Registry) Logger(category string) *Logger {
	if l, ok := r.loggers.Load(category); ok {
		return l.(*Logger)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another goroutine may have won the race
	if l, ok := r.loggers.Load(category); ok {
		return l.(*Logger)
	}
	l := newLogger(category, r.factory.CreateLogger(category), &r.stats)
	r.loggers.Store(category, l)
	return l
}

// CreateLogger implements logger.Factory
func (r *Registry) CreateLogger(category string) logger.Logger {
	return r.Logger(category)
}

// FlushAll drains every logger. Entries of one category keep their order;
// the order across categories is unspecified.
func (r *Registry) FlushAll() []core.Entry {
	var all []core.Entry
	r.loggers.Range(func(_, v any) bool {
		all = append(all, v.(*Logger).Flush()...)
		return true
	})
	return all
}

// DiscardAll drops every buffered entry without returning it. The entries
// are counted as discarded in Stats. Loggers stay registered.
func (r *Registry) DiscardAll() {
	r.loggers.Range(func(_, v any) bool {
		v.(*Logger).discard()
		return true
	})
}

// Categories returns the names of all categories created so far, sorted
func (r *Registry) Categories() []string {
	var names []string
	r.loggers.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return names
}

// Stats returns a snapshot of the counters shared by all loggers of the
// registry.
func (r *Registry) Stats() StatsSnapshot {
	return r.stats.Snapshot()
}

// Close drops every logger and discards their unflushed entries, then
// closes the registered closers. Callers that need the entries must call
// FlushAll first. Loggers handed out before Close keep forwarding but no
// longer capture; a later Logger call starts a fresh logger.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loggers.Range(func(k, v any) bool {
		v.(*Logger).close()
		r.loggers.Delete(k)
		return true
	})

	var err error
	for _, c := range r.closers {
		err = multierr.Append(err, c.Close())
	}
	r.closers = nil
	return err
}

var _ logger.Factory = (*Registry)(nil)
