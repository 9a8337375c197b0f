package logger

import (
	"context"
	"sync"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/formatter"
	"github.com/philipp01105/canonlog/handler"
)

var (
	defaultFactory Factory
	defaultMu      sync.RWMutex
)

func init() {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defaultFactory = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Factory()
}

// Default returns the default logger factory
func Default() Factory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFactory
}

// SetDefault sets the default logger factory
func SetDefault(f Factory) {
	if f == nil {
		panic("logger: default factory cannot be nil")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// Leveled helpers. Each builds a core.Template from tmpl and args and
// calls l.Log with DefaultFormatter. They do not check Enabled first:
// decorators such as the capture logger see every call.

// Trace logs a trace message
func Trace(ctx context.Context, l Logger, tmpl string, args ...any) error {
	return l.Log(ctx, core.TraceLevel, core.EventID{}, core.NewTemplate(tmpl, args...), nil, DefaultFormatter)
}

// Debug logs a debug message
func Debug(ctx context.Context, l Logger, tmpl string, args ...any) error {
	return l.Log(ctx, core.DebugLevel, core.EventID{}, core.NewTemplate(tmpl, args...), nil, DefaultFormatter)
}

// Info logs an informational message
func Info(ctx context.Context, l Logger, tmpl string, args ...any) error {
	return l.Log(ctx, core.InfoLevel, core.EventID{}, core.NewTemplate(tmpl, args...), nil, DefaultFormatter)
}

// Warn logs a warning message
func Warn(ctx context.Context, l Logger, tmpl string, args ...any) error {
	return l.Log(ctx, core.WarnLevel, core.EventID{}, core.NewTemplate(tmpl, args...), nil, DefaultFormatter)
}

// Error logs an error message
func Error(ctx context.Context, l Logger, tmpl string, args ...any) error {
	return l.Log(ctx, core.ErrorLevel, core.EventID{}, core.NewTemplate(tmpl, args...), nil, DefaultFormatter)
}

// Critical logs a critical message
func Critical(ctx context.Context, l Logger, tmpl string, args ...any) error {
	return l.Log(ctx, core.CriticalLevel, core.EventID{}, core.NewTemplate(tmpl, args...), nil, DefaultFormatter)
}

// LogError logs a message template at level with an attached error
func LogError(ctx context.Context, l Logger, level core.Level, err error, tmpl string, args ...any) error {
	return l.Log(ctx, level, core.EventID{}, core.NewTemplate(tmpl, args...), err, DefaultFormatter)
}

// LogEvent logs a message template at level under an event id
func LogEvent(ctx context.Context, l Logger, level core.Level, id core.EventID, tmpl string, args ...any) error {
	return l.Log(ctx, level, id, core.NewTemplate(tmpl, args...), nil, DefaultFormatter)
}

// LogFields logs msg at level with explicit fields
func LogFields(ctx context.Context, l Logger, level core.Level, msg string, fields ...core.Field) error {
	return l.Log(ctx, level, core.EventID{}, core.NewEvent(msg, fields...), nil, DefaultFormatter)
}
