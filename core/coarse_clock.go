package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts a background goroutine that refreshes a cached
// wall-clock reading every 500µs. Calling it more than once is a no-op.
// The goroutine lives for the rest of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for now := range ticker.C {
				coarseNow.Store(&now)
			}
		}()
	})
}

// CoarseNow returns the cached time, or time.Now when the coarse clock
// has not been started.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
