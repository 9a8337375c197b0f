package capture

import (
	"sync"

	"github.com/philipp01105/canonlog/core"
)

// Buffer is a FIFO of captured entries that is safe for concurrent use.
// Every appended entry is returned by exactly one Drain.
type Buffer struct {
	mu      sync.Mutex
	entries []core.Entry
}

// Append adds an entry to the end of the buffer
func (b *Buffer) Append(e core.Entry) {
	b.mu.Lock()
	b.entries = append(b.entries, e)
	b.mu.Unlock()
}

// Drain removes and returns all buffered entries in insertion order.
// It returns nil when the buffer is empty.
func (b *Buffer) Drain() []core.Entry {
	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()
	return entries
}

// Len returns the number of buffered entries
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
