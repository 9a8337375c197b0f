package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/canonlog/core"
)

// Formatter turns an entry into one encoded line.
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is implemented by formatters that can encode straight
// into w. Handlers prefer it over Format when available.
type WriterFormatter interface {
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config is shared by the text and JSON formatters.
type Config struct {
	IncludeCaller bool
	// TimestampFormat overrides the layout used for Entry.Time.
	TimestampFormat string
}

const (
	initialBufferSize = 256
	maxPooledBuffer   = 64 << 10
)

var buffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	buf := buffers.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxPooledBuffer {
		buffers.Put(buf)
	}
}

// sortedKeys returns the entry's field names in order, without the
// template bookkeeping field.
func sortedKeys(entry *core.Entry) []string {
	keys := entry.Keys()
	out := keys[:0]
	for _, k := range keys {
		if k != core.OriginalFormatKey {
			out = append(out, k)
		}
	}
	return out
}
