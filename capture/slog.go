package capture

import (
	"context"
	"log/slog"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/logger"
)

// SlogHandler implements slog.Handler on top of a logger.Logger, so code
// written against log/slog can log through a capturing Logger. Each record
// becomes a core.Event, which is structured state and therefore captured.
type SlogHandler struct {
	logger logger.Logger
	level  core.Level
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a slog.Handler that forwards records at or above
// level to l.
func NewSlogHandler(l logger.Logger, level core.Level) *SlogHandler {
	return &SlogHandler{
		logger: l,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts record to a core.Event and logs it.
func (s *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	fields := make([]core.Field, len(s.attrs), len(s.attrs)+record.NumAttrs())
	copy(fields, s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendSlogAttr(fields, s.group, a)
		return true
	})

	event := core.NewEvent(record.Message, fields...)
	return s.logger.Log(ctx, slogLevelToCore(record.Level), core.EventID{}, event, nil, logger.DefaultFormatter)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler whose later attributes are
// qualified by name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  s.attrs[:len(s.attrs):len(s.attrs)],
		group:  qualify(s.group, name),
	}
}

// slogLevelToCore maps slog levels onto core levels. Levels below Debug
// are Trace and levels at Error+4 or above are Critical.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

// appendSlogAttr flattens a into fields. Group members get dotted keys;
// empty attributes are dropped and a group with an empty key is inlined.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = qualify(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, prefix, ga)
		}
		return fields
	}

	key := qualify(group, a.Key)
	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.AnyField(key, a.Value.Uint64()))
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		return append(fields, core.AnyField(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	default:
		return append(fields, core.AnyField(key, a.Value.Any()))
	}
}

var _ slog.Handler = (*SlogHandler)(nil)
