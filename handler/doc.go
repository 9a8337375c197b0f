// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to various outputs.
//
// Handlers receive fully built core.Entry values, either one at a time
// from a HandlerLogger or in bulk from the request middleware's sinks.
// Every handler is synchronous and safe for concurrent use; the writer
// lock is held only while bytes are written.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer (default: stdout).
//   - FileHandler writes to a file with size-based rotation and backup cleanup.
//   - MultiHandler fans out a single entry to multiple child handlers.
//
// All handlers count processed and failed writes via the Stats type,
// which can be queried at runtime for monitoring.
package handler
