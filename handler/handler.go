package handler

import (
	"errors"

	"github.com/philipp01105/canonlog/core"
)

// ErrClosed is returned when an entry is handled after Close.
var ErrClosed = errors.New("handler: closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry. The handler must not retain or
	// modify the entry after returning.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track write statistics
type StatsProvider interface {
	Stats() Snapshot
}
