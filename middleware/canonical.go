package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/handler"
)

// Field names written by CanonicalSink.
const (
	RequestIDKey = "request_id"
	MethodKey    = "method"
	PathKey      = "path"
	StatusKey    = "status"
	DurationKey  = "duration_ms"
	EntriesKey   = "entries"
	MaxLevelKey  = "max_level"
	MessagesKey  = "messages"
	PanickedKey  = "panicked"
)

// reservedPrefix is prepended to captured fields whose names clash with
// the keys above.
const reservedPrefix = "fields."

var reservedKeys = map[string]bool{
	RequestIDKey: true,
	MethodKey:    true,
	PathKey:      true,
	StatusKey:    true,
	DurationKey:  true,
	EntriesKey:   true,
	MaxLevelKey:  true,
	MessagesKey:  true,
	PanickedKey:  true,
}

// DefaultCanonicalMessage is the message of a canonical line
const DefaultCanonicalMessage = "canonical-log-line"

// DefaultCanonicalCategory is the category of a canonical line
const DefaultCanonicalCategory = "canonical"

// CanonicalSink merges all entries of a request into one entry and writes
// it to a handler. The merged entry carries every captured field (later
// entries win on key conflicts, and names used by the line itself are
// moved under "fields."), the entry messages in order, the highest
// captured level and the request's id, method, path, status and duration.
// Errors attached to the entries are combined into the line's error.
//
// The line is written at the highest captured level, raised to Warn for
// 4xx and to Error for 5xx responses and panics, and never below Info.
type CanonicalSink struct {
	handler  handler.Handler
	message  string
	category string
}

// CanonicalOption configures a CanonicalSink
type CanonicalOption func(*CanonicalSink)

// WithMessage sets the message of the canonical line
func WithMessage(msg string) CanonicalOption {
	return func(s *CanonicalSink) {
		if msg != "" {
			s.message = msg
		}
	}
}

// WithCategory sets the category of the canonical line
func WithCategory(category string) CanonicalOption {
	return func(s *CanonicalSink) {
		s.category = category
	}
}

// NewCanonicalSink creates a CanonicalSink writing to h
func NewCanonicalSink(h handler.Handler, opts ...CanonicalOption) *CanonicalSink {
	s := &CanonicalSink{
		handler:  h,
		message:  DefaultCanonicalMessage,
		category: DefaultCanonicalCategory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consume writes one canonical line for entries
func (s *CanonicalSink) Consume(ctx context.Context, entries []core.Entry) error {
	line := s.Merge(ctx, entries)
	return s.handler.Handle(&line)
}

// Merge builds the canonical entry without writing it
func (s *CanonicalSink) Merge(ctx context.Context, entries []core.Entry) core.Entry {
	fields := make(map[string]any, 8)
	maxLevel := core.TraceLevel
	var errs []error
	messages := make([]string, 0, len(entries))

	for i := range entries {
		e := &entries[i]
		for k, v := range e.Fields {
			switch {
			case k == core.OriginalFormatKey:
			case reservedKeys[k]:
				fields[reservedPrefix+k] = v
			default:
				fields[k] = v
			}
		}
		if e.Level > maxLevel && e.Level < core.NoneLevel {
			maxLevel = e.Level
		}
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
		messages = append(messages, e.Message)
	}

	fields[EntriesKey] = len(entries)
	if len(entries) > 0 {
		fields[MaxLevelKey] = maxLevel.String()
		fields[MessagesKey] = messages
	}

	level := max(maxLevel, core.InfoLevel)
	if info, ok := RequestInfoFromContext(ctx); ok {
		fields[RequestIDKey] = info.ID
		fields[MethodKey] = info.Method
		fields[PathKey] = info.Path
		fields[StatusKey] = info.Status
		fields[DurationKey] = float64(info.Duration) / float64(time.Millisecond)
		if info.Panicked {
			fields[PanickedKey] = true
		}
		level = max(level, statusLevel(info))
	}

	return core.Entry{
		Time:     time.Now(),
		Category: s.category,
		Level:    level,
		Message:  s.message,
		Err:      multierr.Combine(errs...),
		Fields:   fields,
	}
}

func statusLevel(info *RequestInfo) core.Level {
	switch {
	case info.Panicked || info.Status >= http.StatusInternalServerError:
		return core.ErrorLevel
	case info.Status >= http.StatusBadRequest:
		return core.WarnLevel
	default:
		return core.InfoLevel
	}
}
