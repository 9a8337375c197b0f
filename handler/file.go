package handler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/canonlog/core"
	"github.com/philipp01105/canonlog/formatter"
)

// backupTimeFormat names rotated files; nanoseconds keep rapid rotations apart.
const backupTimeFormat = "2006-01-02T15-04-05.000000000"

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
}

// FileHandler writes formatted entries to a file, rotating it by size
type FileHandler struct {
	filename    string
	formatter   formatter.Formatter
	maxSize     int64
	maxBackups  int
	mu          sync.Mutex // protects everything below
	file        *os.File
	bufWriter   *bufio.Writer
	currentSize int64
	closed      bool
	stats       *Stats
}

// NewFileHandler opens (or creates) the log file and returns a handler for it
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("handler: filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0o755); err != nil {
		return nil, fmt.Errorf("handler: create log directory: %w", err)
	}

	file, err := openLogFile(cfg.Filename)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("handler: stat log file: %w", err)
	}

	return &FileHandler{
		filename:    cfg.Filename,
		formatter:   cfg.Formatter,
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		file:        file,
		bufWriter:   bufio.NewWriterSize(file, 4096),
		currentSize: info.Size(),
		stats:       NewStats(),
	}, nil
}

func openLogFile(name string) (*os.File, error) {
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("handler: open log file: %w", err)
	}
	return file, nil
}

// Handle formats and writes an entry, rotating first when the file is full
func (h *FileHandler) Handle(entry *core.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	if err := h.rotateIfNeeded(); err != nil {
		h.stats.IncrementFailed()
		return err
	}

	n, err := h.bufWriter.Write(data)
	h.currentSize += int64(n)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Write appends already formatted bytes, rotating first when the file is
// full. It lets backends with their own encoders (zap, zerolog, logrus,
// slog) share the handler's file and rotation.
func (h *FileHandler) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return 0, ErrClosed
	}
	if err := h.rotateIfNeeded(); err != nil {
		return 0, err
	}
	n, err := h.bufWriter.Write(p)
	h.currentSize += int64(n)
	return n, err
}

// Sync flushes buffered data to the file
func (h *FileHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	return h.bufWriter.Flush()
}

func (h *FileHandler) rotateIfNeeded() error {
	if h.maxSize <= 0 || h.currentSize < h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate performs the actual file rotation
func (h *FileHandler) rotate() error {
	if err := h.bufWriter.Flush(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	rotatedName := h.filename + "." + time.Now().Format(backupTimeFormat)
	renameErr := os.Rename(h.filename, rotatedName)

	file, err := openLogFile(h.filename)
	if err != nil {
		return err
	}
	h.file = file
	h.bufWriter.Reset(file)

	if renameErr != nil {
		// kept appending to the old file
		return fmt.Errorf("handler: rotate log file: %w", renameErr)
	}

	h.currentSize = 0
	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}
	return nil
}

// cleanupOldBackups removes the oldest backups beyond maxBackups
func (h *FileHandler) cleanupOldBackups() {
	base := filepath.Base(h.filename)
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(h.filename), base+".*"))
	if err != nil {
		return
	}

	var backups []string
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), base+".") {
			backups = append(backups, m)
		}
	}
	if len(backups) <= h.maxBackups {
		return
	}

	// The timestamp suffix sorts chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-h.maxBackups] {
		if err := os.Remove(name); err != nil {
			return
		}
	}
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes, syncs and closes the file. Closing twice is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.bufWriter.Flush(); err != nil {
		_ = h.file.Close()
		return err
	}
	if err := h.file.Sync(); err != nil {
		_ = h.file.Close()
		return err
	}
	return h.file.Close()
}
