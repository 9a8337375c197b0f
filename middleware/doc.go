// Package middleware flushes a capture.Registry at the end of every unit
// of work and hands the captured entries to a Sink.
//
// Middleware is the net/http form: it wraps a handler, tags the request
// with a RequestInfo (request id, method, path, status, duration) and
// flushes once the handler returns or panics. Hook.Run does the same for
// work that is not an HTTP request.
//
// CanonicalSink merges a request's entries into a single canonical log
// line; HandlerSink writes them one by one.
package middleware
