package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/philipp01105/canonlog/capture"
)

// RequestInfo describes the request being handled. Status, Duration and
// Panicked are set just before the registry is flushed.
type RequestInfo struct {
	ID       string
	Method   string
	Path     string
	Start    time.Time
	Status   int
	Duration time.Duration
	Panicked bool
}

type requestInfoKey struct{}

// RequestInfoFromContext returns the RequestInfo Middleware attached to ctx
func RequestInfoFromContext(ctx context.Context) (*RequestInfo, bool) {
	if ctx == nil {
		return nil, false
	}
	info, ok := ctx.Value(requestInfoKey{}).(*RequestInfo)
	return info, ok
}

// RequestID returns the id of the request being handled, or ""
func RequestID(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok {
		return info.ID
	}
	return ""
}

type responseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.status = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware wraps next so that every request runs with reg in its
// context and ends with reg flushed to the configured sink, also when next
// panics. It panics if reg is nil.
func Middleware(next http.Handler, reg *capture.Registry, opts ...Option) http.Handler {
	if reg == nil {
		panic("middleware: registry cannot be nil")
	}
	cfg := newConfig(opts)
	hook := &Hook{registry: reg, sink: cfg.sink, onError: cfg.onError}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.excludePaths[r.URL.Path] {
			// entries of excluded requests were already forwarded; drop the
			// captured copies so they do not join the next request's line
			defer reg.DiscardAll()
			next.ServeHTTP(w, r.WithContext(capture.NewContext(r.Context(), reg)))
			return
		}

		info := &RequestInfo{
			Method: r.Method,
			Path:   r.URL.Path,
			Start:  time.Now(),
		}
		if cfg.requestIDHeader != "" {
			info.ID = r.Header.Get(cfg.requestIDHeader)
		}
		if info.ID == "" {
			info.ID = cfg.generateID()
		}
		if cfg.requestIDHeader != "" {
			w.Header().Set(cfg.requestIDHeader, info.ID)
		}

		ctx := context.WithValue(r.Context(), requestInfoKey{}, info)
		ctx = capture.NewContext(ctx, reg)
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		completed := false
		defer func() {
			info.Duration = time.Since(info.Start)
			info.Status = rw.status
			if !completed {
				info.Panicked = true
				info.Status = http.StatusInternalServerError
			}
			hook.Flush(ctx)
		}()

		next.ServeHTTP(rw, r.WithContext(ctx))
		completed = true
	})
}
