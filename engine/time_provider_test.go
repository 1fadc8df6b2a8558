package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	next := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(next)
	if now := mock.Now(); !now.Equal(next) {
		t.Errorf("Expected %v after SetTime, got %v", next, now)
	}

	mock.Advance(time.Hour)
	mock.Advance(15 * time.Minute)
	if now, want := mock.Now(), next.Add(75*time.Minute); !now.Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, now)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := mock.Now().Sub(time.Unix(0, 0)); got != time.Second {
		t.Errorf("Expected 1s total advance, got %v", got)
	}
}

func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(100, 0))
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed, got %v", got)
	}

	if !clock.Pause() {
		t.Error("Expected first Pause to report a change")
	}
	if clock.Pause() {
		t.Error("Expected second Pause to be a no-op")
	}
	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected elapsed frozen at 2s, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s in-progress pause, got %v", got)
	}

	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %v", got)
	}
	if clock.IsPaused() {
		t.Error("Expected clock running")
	}
	if clock.Resume() {
		t.Error("Expected Resume on running clock to be a no-op")
	}
}

func TestPausableClockReset(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Reset()

	if clock.IsPaused() {
		t.Error("Expected Reset to clear pause")
	}
	if got := clock.Elapsed(); got != 0 {
		t.Errorf("Expected 0 elapsed after reset, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 0 {
		t.Errorf("Expected pause total cleared, got %v", got)
	}
}
