// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers check
// for WriterFormatter at construction time and prefer it when available.
//
// TextFormatter renders one human-readable line per entry with fields in
// key=value form, sorted by key. JSONFormatter renders one JSON object per
// line; the fixed keys (time, level, category, event_id, message, error,
// caller) come first and the entry's fields follow in sorted order.
// Field values are encoded with github.com/segmentio/encoding/json.
//
// Both formatters skip the "{OriginalFormat}" field that message templates
// carry, since the rendered message already contains it.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter
