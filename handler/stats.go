package handler

import (
	"sync/atomic"

	"github.com/philipp01105/canonlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	processed [core.NoneLevel]atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	if level >= 0 && level < core.NoneLevel {
		s.processed[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if level >= 0 && level < core.NoneLevel {
		return s.processed[level].Load()
	}
	return 0
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// GetFailed returns the failed write count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	Failed         uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, core.NoneLevel),
		Failed:    s.GetFailed(),
	}
	for l := core.TraceLevel; l < core.NoneLevel; l++ {
		n := s.GetProcessed(l)
		snap.Processed[l] = n
		snap.ProcessedTotal += n
	}
	return snap
}
