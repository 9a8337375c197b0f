// Package capture buffers log entries in memory, per category, while
// forwarding every call to an underlying logger.
//
// A Registry hands out one *Logger per category. Each Logger decorates a
// logger.Logger from the registry's factory: calls pass through unchanged,
// and calls whose state implements core.Structured are also appended to
// the category's Buffer. At the end of a unit of work, typically an HTTP
// request, Registry.FlushAll drains every buffer so the entries can be
// emitted together as one canonical log line.
//
// Basic usage:
//
//	reg := capture.Install(logger.Default())
//	log := reg.Logger("orders")
//	_ = logger.Info(ctx, log, "Order {OrderId} processed for {Customer}", 123, "Test")
//	entries := reg.FlushAll()
package capture
