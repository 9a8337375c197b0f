package capture

import (
	"sync/atomic"

	"github.com/philipp01105/canonlog/core"
)

// Stats tracks capture statistics
type Stats struct {
	captured  [core.NoneLevel + 1]atomic.Uint64
	flushed   atomic.Uint64
	discarded atomic.Uint64
}

func (s *Stats) recordCaptured(level core.Level) {
	if level >= 0 && level <= core.NoneLevel {
		s.captured[level].Add(1)
	}
}

func (s *Stats) recordFlushed(n int) {
	s.flushed.Add(uint64(n))
}

func (s *Stats) recordDiscarded(n int) {
	s.discarded.Add(uint64(n))
}

// StatsSnapshot is a point-in-time copy of Stats
type StatsSnapshot struct {
	// Captured counts entries appended per level
	Captured map[core.Level]uint64
	// CapturedTotal is the sum of Captured
	CapturedTotal uint64
	// Flushed counts entries returned by Flush or FlushAll
	Flushed uint64
	// Discarded counts entries dropped by Close without being flushed
	Discarded uint64
}

// Pending returns the number of entries captured but neither flushed
// nor discarded at the time of the snapshot.
func (s StatsSnapshot) Pending() uint64 {
	done := s.Flushed + s.Discarded
	if done > s.CapturedTotal {
		return 0
	}
	return s.CapturedTotal - done
}

// Snapshot returns a snapshot of current statistics
func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Captured: make(map[core.Level]uint64, len(s.captured)),
	}
	// flushed and discarded are loaded first so Pending never sees an
	// entry as done before it was counted as captured
	snap.Flushed = s.flushed.Load()
	snap.Discarded = s.discarded.Load()
	for l := core.TraceLevel; l <= core.NoneLevel; l++ {
		n := s.captured[l].Load()
		if n > 0 {
			snap.Captured[l] = n
			snap.CapturedTotal += n
		}
	}
	return snap
}
