// Package zapadapter implements logger.Logger on top of a *zap.Logger.
package zapadapter

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// Logger writes through a *zap.Logger named after its category
type Logger struct {
	base *zap.Logger
}

// New returns a Logger for category. The category becomes the zap logger
// name.
func New(base *zap.Logger, category string) *Logger {
	if category != "" {
		base = base.Named(category)
	}
	return &Logger{base: base}
}

// Factory returns a logger.Factory producing Loggers over base
func Factory(base *zap.Logger) logger.Factory {
	return logger.FactoryFunc(func(category string) logger.Logger {
		return New(base, category)
	})
}

// Enabled reports whether the zap core accepts level
func (l *Logger) Enabled(level core.Level) bool {
	if level >= core.NoneLevel {
		return false
	}
	return l.base.Core().Enabled(zapLevel(level))
}

// Log writes one zap entry. zap reports write failures to its own
// ErrorOutput, so only formatter errors are returned.
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

	ce := l.base.Check(zapLevel(level), msg)
	if ce == nil {
		return nil
	}

	fields := logger.EventFields(ctx, state)
	zf := make([]zap.Field, 0, len(fields)+3)
	if !id.IsZero() {
		zf = append(zf, zap.Int(logger.EventIDKey, id.ID))
		if id.Name != "" {
			zf = append(zf, zap.String(logger.EventNameKey, id.Name))
		}
	}
	for _, f := range fields {
		zf = append(zf, zapField(f))
	}
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	ce.Write(zf...)
	return nil
}

// BeginScope adds state to the context's scope stack
func (l *Logger) BeginScope(ctx context.Context, state any) (context.Context, logger.Scope) {
	return logger.WithScope(ctx, state), logger.NopScope
}

// zapLevel maps Trace onto Debug and Critical onto Error; zap's DPanic
// and Fatal levels change control flow.
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func zapField(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		if err, ok := f.Any.(error); ok {
			return zap.NamedError(f.Key, err)
		}
		return zap.String(f.Key, f.Str)
	default:
		return zap.Any(f.Key, f.Value())
	}
}

var _ logger.Logger = (*Logger)(nil)
