// Package logger defines the logging abstraction that canonlog decorates,
// together with a handler-backed implementation of it.
//
// A Logger is created per category by a Factory and offers three
// capabilities: checking whether a level is enabled, logging an event,
// and beginning a scope. The Log call receives the level, an optional
// core.EventID, arbitrary state, an optional error, and a Formatter that
// renders the final message from state and error:
//
//	err := l.Log(ctx, core.InfoLevel, core.EventID{}, core.NewTemplate("Order {OrderId} placed", 42), nil, logger.DefaultFormatter)
//
// The package-level helpers Trace, Debug, Info, Warn, Error and Critical
// build a message template and call Log:
//
//	logger.Info(ctx, l, "Order {OrderId} processed for {Customer}", 123, "Test")
//
// Scopes travel in the context. BeginScope returns a derived context and
// a Scope to close when the scoped work ends:
//
//	ctx, scope := l.BeginScope(ctx, core.NewEvent("batch", logger.Int("batch_id", 7)))
//	defer scope.Close()
//
// HandlerLogger is the built-in implementation. It is immutable after
// construction via the Builder, so it is safe for concurrent use without
// locking on the read path, and it writes entries to a handler.Handler.
// The package keeps a default Factory (HandlerLogger, InfoLevel, text
// format to stdout) that Default returns until SetDefault replaces it.
package logger
