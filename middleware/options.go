package middleware

import (
	"github.com/google/uuid"

	"github.com/philipp01105/canonlog/handler"
)

// DefaultRequestIDHeader is the header a request id is read from and
// echoed back in.
const DefaultRequestIDHeader = "X-Request-ID"

type config struct {
	sink            Sink
	onError         ErrorHandler
	excludePaths    map[string]bool
	requestIDHeader string
	generateID      func() string
}

// Option configures Middleware and Hook
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		onError:         logError,
		requestIDHeader: DefaultRequestIDHeader,
		generateID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.sink == nil {
		cfg.sink = NewCanonicalSink(handler.NewConsoleHandler(handler.ConsoleConfig{}))
	}
	return cfg
}

// WithSink sets where flushed entries go. The default is a CanonicalSink
// writing text lines to stdout.
func WithSink(s Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}

// WithErrorHandler sets the callback for sink errors. The default logs
// them through logger.Default.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(c *config) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithExcludePaths skips request ids and sink delivery for the given
// paths. Such requests still carry the registry, but whatever they capture
// is discarded when they finish.
func WithExcludePaths(paths ...string) Option {
	return func(c *config) {
		if c.excludePaths == nil {
			c.excludePaths = make(map[string]bool)
		}
		for _, p := range paths {
			c.excludePaths[p] = true
		}
	}
}

// WithRequestIDHeader changes the request id header. An empty name
// disables reading and echoing the header; ids are still generated.
func WithRequestIDHeader(name string) Option {
	return func(c *config) {
		c.requestIDHeader = name
	}
}

// WithRequestIDGenerator replaces the uuid v4 request id generator
func WithRequestIDGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.generateID = fn
		}
	}
}
