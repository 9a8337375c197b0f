// Package zerologadapter implements logger.Logger on top of a
// zerolog.Logger.
package zerologadapter

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// Logger writes through a zerolog.Logger carrying a category field
type Logger struct {
	base zerolog.Logger
}

// New returns a Logger for category
func New(base zerolog.Logger, category string) *Logger {
	if category != "" {
		base = base.With().Str(logger.CategoryKey, category).Logger()
	}
	return &Logger{base: base}
}

// Factory returns a logger.Factory producing Loggers over base
func Factory(base zerolog.Logger) logger.Factory {
	return logger.FactoryFunc(func(category string) logger.Logger {
		return New(base, category)
	})
}

// Enabled reports whether level passes both the logger's and zerolog's
// global level
func (l *Logger) Enabled(level core.Level) bool {
	if level >= core.NoneLevel {
		return false
	}
	zl := zerologLevel(level)
	return zl >= l.base.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Log writes one zerolog event. Critical is written at zerolog's fatal
// level without exiting the process.
func (l *Logger) Log(ctx context.Context, level core.Level, id core.EventID, state any, err error, format logger.Formatter) error {
	if !l.Enabled(level) {
		return nil
	}
	if format == nil {
		format = logger.DefaultFormatter
	}
	msg, ferr := format(state, err)
	if ferr != nil {
		return ferr
	}

	ev := l.base.WithLevel(zerologLevel(level))
	if ev == nil {
		return nil
	}
	if !id.IsZero() {
		ev = ev.Int(logger.EventIDKey, id.ID)
		if id.Name != "" {
			ev = ev.Str(logger.EventNameKey, id.Name)
		}
	}
	for _, f := range logger.EventFields(ctx, state) {
		ev = appendField(ev, f)
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
	return nil
}

// BeginScope adds state to the context's scope stack
func (l *Logger) BeginScope(ctx context.Context, state any) (context.Context, logger.Scope) {
	return logger.WithScope(ctx, state), logger.NopScope
}

func zerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

func appendField(ev *zerolog.Event, f core.Field) *zerolog.Event {
	switch f.Type {
	case core.StringType:
		return ev.Str(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return ev.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return ev.Float64(f.Key, f.Float64)
	case core.BoolType:
		return ev.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return ev.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return ev.Dur(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		if err, ok := f.Any.(error); ok {
			return ev.AnErr(f.Key, err)
		}
		return ev.Str(f.Key, f.Str)
	default:
		return ev.Interface(f.Key, f.Any)
	}
}

var _ logger.Logger = (*Logger)(nil)
