package engine

import (
	"sync"
	"time"
)

// PausableClock derives match time from a TimeProvider, freezing while paused
// Game time starts at zero when the clock is created or reset
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	start       time.Time // Real time at creation or last reset
	paused      bool
	pausedAt    time.Time     // Real time the current pause began
	pausedTotal time.Duration // Sum of completed pauses
}

// NewPausableClock creates a running clock reading from source
// A nil source falls back to the monotonic system clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Elapsed returns game time since start, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.elapsedAt(pc.source.Now())
}

func (pc *PausableClock) elapsedAt(now time.Time) time.Duration {
	if pc.paused {
		now = pc.pausedAt
	}
	return now.Sub(pc.start) - pc.pausedTotal
}

// Pause freezes game time, returns false when already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return false
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
	return true
}

// Resume restarts game time, returns false when not paused
func (pc *PausableClock) Resume() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return false
	}
	pc.pausedTotal += pc.source.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
	return true
}

// IsPaused reports the pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration includes the pause in progress, if any
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedTotal
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}

// Reset zeroes game time and clears pause state
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.start = pc.source.Now()
	pc.paused = false
	pc.pausedAt = time.Time{}
	pc.pausedTotal = 0
}
