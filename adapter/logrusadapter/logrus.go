// Package logrusadapter implements logger.Logger on top of a
// *logrus.Logger.
package logrusadapter

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// Logger writes through a *logrus.Logger, tagging entries with a category
type Logger struct {
	base     *logrus.Logger
	category string
}

// New returns a Logger for category
func New(base *logrus.Logger, category string) *Logger {
	return &Logger{base: base, category: category}
}

// Factory returns a logger.Factory producing Loggers over base
func Factory(base *logrus.Logger) logger.Factory {
	return logger.FactoryFunc(func(category string) logger.Logger {
		return New(base, category)
	})
}

// Enabled reports whether the logrus logger accepts level
func (l *Logger) Enabled(level core.Level) bool {
	if level >= core.NoneLevel {
		return false
	}
	return l.base.IsLevelEnabled(logrusLevel(level))
}

// Log writes one logrus entry. Critical maps to logrus' fatal level;
// Entry.Log does not call the logger's exit function for it.
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

	fields := logger.EventFields(ctx, state)
	data := make(logrus.Fields, len(fields)+3)
	if l.category != "" {
		data[logger.CategoryKey] = l.category
	}
	if !id.IsZero() {
		data[logger.EventIDKey] = id.ID
		if id.Name != "" {
			data[logger.EventNameKey] = id.Name
		}
	}
	for _, f := range fields {
		data[f.Key] = f.Value()
	}

	entry := l.base.WithContext(ctx).WithFields(data)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(logrusLevel(level), msg)
	return nil
}

// BeginScope adds state to the context's scope stack
func (l *Logger) BeginScope(ctx context.Context, state any) (context.Context, logger.Scope) {
	return logger.WithScope(ctx, state), logger.NopScope
}

func logrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

var _ logger.Logger = (*Logger)(nil)
