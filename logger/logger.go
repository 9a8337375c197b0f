package logger

import (
	"context"
	"fmt"
	"io"

	"github.com/philipp01105/canonlog/core"
)

// Formatter renders the final message for a log call from its state and
// error. A non-nil error aborts the log call.
type Formatter func(state any, err error) (string, error)

// DefaultFormatter renders strings and fmt.Stringer values (which covers
// core.Template and core.Event) as themselves and anything else with
// fmt.Sprint. Nil state renders the error text, if any.
func DefaultFormatter(state any, err error) (string, error) {
	switch s := state.(type) {
	case nil:
		if err != nil {
			return err.Error(), nil
		}
		return "", nil
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return fmt.Sprint(s), nil
	}
}

// Field names used by the backend adapters.
const (
	CategoryKey  = "category"
	EventIDKey   = "event_id"
	EventNameKey = "event_name"
)

// Scope is released by calling Close; releasing twice is harmless.
type Scope = io.Closer

// Logger is the capability set every underlying logger provides.
type Logger interface {
	// Enabled reports whether events at level would be written.
	Enabled(level core.Level) bool

	// Log writes one event. Implementations skip disabled levels
	// themselves; errors from formatting or writing are returned.
	Log(ctx context.Context, level core.Level, id core.EventID, state any, err error, format Formatter) error

	// BeginScope starts a logical operation carrying state. The returned
	// context must be passed to Log calls made inside the scope.
	BeginScope(ctx context.Context, state any) (context.Context, Scope)
}

// Factory produces loggers by category name.
type Factory interface {
	CreateLogger(category string) Logger
}

// FactoryFunc adapts a function to Factory
type FactoryFunc func(category string) Logger

// CreateLogger calls f(category)
func (f FactoryFunc) CreateLogger(category string) Logger {
	return f(category)
}
