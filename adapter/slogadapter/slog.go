// Package slogadapter implements logger.Logger on top of a *slog.Logger.
package slogadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// Extra slog levels for the core levels slog has no name for.
const (
	LevelTrace    = slog.LevelDebug - 4
	LevelCritical = slog.LevelError + 4
)

// Logger writes through a *slog.Logger carrying a category attribute
type Logger struct {
	base *slog.Logger
}

// New returns a Logger for category
func New(base *slog.Logger, category string) *Logger {
	if category != "" {
		base = base.With(logger.CategoryKey, category)
	}
	return &Logger{base: base}
}

// Factory returns a logger.Factory producing Loggers over base
func Factory(base *slog.Logger) logger.Factory {
	return logger.FactoryFunc(func(category string) logger.Logger {
		return New(base, category)
	})
}

// Enabled reports whether the slog handler accepts level
func (l *Logger) Enabled(level core.Level) bool {
	if level >= core.NoneLevel {
		return false
	}
	return l.base.Enabled(context.Background(), slogLevel(level))
}

// Log writes one slog record
func (l *Logger) Log(ctx context.Context, level core.Level, id core.EventID, state any, err error, format logger.Formatter) error {
	if level >= core.NoneLevel || !l.base.Enabled(ctx, slogLevel(level)) {
		return nil
	}
	if format == nil {
		format = logger.DefaultFormatter
	}
	msg, ferr := format(state, err)
	if ferr != nil {
		return ferr
	}

	fields := logger.EventFields(ctx, state)
	attrs := make([]slog.Attr, 0, len(fields)+3)
	if !id.IsZero() {
		attrs = append(attrs, slog.Int(logger.EventIDKey, id.ID))
		if id.Name != "" {
			attrs = append(attrs, slog.String(logger.EventNameKey, id.Name))
		}
	}
	for _, f := range fields {
		attrs = append(attrs, slogAttr(f))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	l.base.LogAttrs(ctx, slogLevel(level), msg, attrs...)
	return nil
}

// BeginScope adds state to the context's scope stack
func (l *Logger) BeginScope(ctx context.Context, state any) (context.Context, logger.Scope) {
	return logger.WithScope(ctx, state), logger.NopScope
}

func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return LevelCritical
	}
}

func slogAttr(f core.Field) slog.Attr {
	switch f.Type {
	case core.StringType:
		return slog.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return slog.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return slog.Float64(f.Key, f.Float64)
	case core.BoolType:
		return slog.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return slog.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return slog.Duration(f.Key, time.Duration(f.Int64))
	default:
		return slog.Any(f.Key, f.Value())
	}
}

var _ logger.Logger = (*Logger)(nil)
