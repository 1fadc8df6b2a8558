package pose

import (
	"sync"
	"sync/atomic"
)

// Hand is one detected hand with its classifier label ("Left" or "Right")
type Hand struct {
	Handedness string     `json:"handedness"`
	Landmarks  []Landmark `json:"landmarks"`
}

// Frame is a raw provider result in camera orientation
type Frame struct {
	Pose  []Landmark `json:"pose,omitempty"`
	Hands []Hand     `json:"hands,omitempty"`
}

// Tracker smooths incoming frames and publishes the latest mirrored skeleton
// Update may be called from any goroutine; Snapshot never blocks and returns
// an immutable value replaced wholesale on each frame
type Tracker struct {
	mu        sync.Mutex
	prevPose  []Landmark // Smoothed, camera orientation
	prevLeft  []Landmark // Smoothed, mirrored
	prevRight []Landmark // Smoothed, mirrored

	latest atomic.Pointer[Skeleton]
	frames atomic.Int64

	ready   atomic.Bool
	onReady func()
}

// NewTracker creates a tracker with an empty snapshot
func NewTracker() *Tracker {
	t := &Tracker{}
	t.latest.Store(&Skeleton{})
	return t
}

// OnReady registers fn to fire once, when the first body landmarks arrive
// Fires immediately if pose data already exists
func (t *Tracker) OnReady(fn func()) {
	t.mu.Lock()
	t.onReady = fn
	fire := t.ready.Load()
	t.mu.Unlock()

	if fire && fn != nil {
		fn()
	}
}

// Update ingests one provider frame
func (t *Tracker) Update(f Frame) {
	t.mu.Lock()

	next := &Skeleton{}

	if len(f.Pose) > 0 {
		smoothed := Smooth(t.prevPose, f.Pose, BodyFilter)
		// Keep an owned copy in camera orientation for the next frame
		t.prevPose = append(t.prevPose[:0:0], smoothed...)
		next.Pose = Mirror(smoothed)
	} else {
		t.prevPose = nil
	}

	var sawLeft, sawRight bool
	for _, h := range f.Hands {
		if len(h.Landmarks) == 0 {
			continue
		}
		mirrored := Mirror(h.Landmarks)
		if h.Handedness == "Left" {
			next.LeftHand = Smooth(t.prevLeft, mirrored, HandFilter)
			t.prevLeft = next.LeftHand
			sawLeft = true
		} else {
			next.RightHand = Smooth(t.prevRight, mirrored, HandFilter)
			t.prevRight = next.RightHand
			sawRight = true
		}
	}
	if !sawLeft {
		t.prevLeft = nil
	}
	if !sawRight {
		t.prevRight = nil
	}

	t.latest.Store(next)
	t.frames.Add(1)

	fire := next.HasPose() && t.ready.CompareAndSwap(false, true)
	fn := t.onReady
	t.mu.Unlock()

	if fire && fn != nil {
		fn()
	}
}

// Snapshot returns the most recent skeleton, never nil
func (t *Tracker) Snapshot() *Skeleton {
	return t.latest.Load()
}

// Ready reports whether pose data has ever been received
func (t *Tracker) Ready() bool {
	return t.ready.Load()
}

// Frames returns the number of frames ingested
func (t *Tracker) Frames() int64 {
	return t.frames.Load()
}

// Reset drops smoothing history and the current snapshot
// The ready flag is kept; OnReady does not fire again
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prevPose, t.prevLeft, t.prevRight = nil, nil, nil
	t.latest.Store(&Skeleton{})
}
