package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a TimeProvider that only moves when told to
// Safe for concurrent use
type MockTimeProvider struct {
	nanos atomic.Int64 // Unix nanoseconds
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.SetTime(start)
	return m
}

func (m *MockTimeProvider) Now() time.Time {
	return time.Unix(0, m.nanos.Load())
}

// SetTime jumps to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.nanos.Store(t.UnixNano())
}

// Advance moves forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.nanos.Add(int64(d))
}
