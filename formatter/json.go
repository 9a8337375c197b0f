package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/philipp01105/canonlog/core"
)

// reservedKeys are written by the formatter itself; entry fields with the
// same name are emitted under a "fields." prefix.
var reservedKeys = map[string]bool{
	"time":     true,
	"level":    true,
	"category": true,
	"event_id": true,
	"message":  true,
	"error":    true,
	"caller":   true,
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()
	f.formatJSONToBuffer(entry, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *JSONFormatter) formatJSONToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(`{"time":`)
	appendJSON(buf, entry.Time.Format(f.TimestampFormat))

	buf.WriteString(`,"level":`)
	appendJSON(buf, entry.Level.String())

	if entry.Category != "" {
		buf.WriteString(`,"category":`)
		appendJSON(buf, entry.Category)
	}

	if !entry.EventID.IsZero() {
		buf.WriteString(`,"event_id":`)
		appendJSON(buf, entry.EventID.String())
	}

	buf.WriteString(`,"message":`)
	appendJSON(buf, entry.Message)

	if entry.Err != nil {
		buf.WriteString(`,"error":`)
		appendJSON(buf, entry.Err.Error())
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteString(`,"caller":`)
		appendJSON(buf, entry.Caller.ShortFile+":"+strconv.Itoa(entry.Caller.Line))
	}

	for _, k := range sortedKeys(entry) {
		key := k
		if reservedKeys[k] {
			key = "fields." + k
		}
		buf.WriteByte(',')
		appendJSON(buf, key)
		buf.WriteByte(':')
		appendJSON(buf, jsonValue(entry.Fields[k]))
	}

	buf.WriteString("}\n")
}

// jsonValue maps values that encode poorly (errors, durations) to strings
func jsonValue(v any) any {
	switch x := v.(type) {
	case error:
		return x.Error()
	case time.Duration:
		return x.String()
	default:
		return v
	}
}

// appendJSON encodes v, falling back to its fmt representation when the
// value cannot be marshaled (channels, funcs, cyclic values).
func appendJSON(buf *bytes.Buffer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(fmt.Sprint(v))
	}
	buf.Write(b)
}
