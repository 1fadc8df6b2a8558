package pose

import (
	"encoding/json"
	"math"
	"sync"
	"sync/atomic"
	"testing"
)

func TestTrackerMirrorsPose(t *testing.T) {
	tr := NewTracker()
	f := Frame{Pose: lmSet(33, 0.3, 0.5)}
	tr.Update(f)

	s := tr.Snapshot()
	if !s.HasPose() {
		t.Fatal("Expected pose in snapshot")
	}
	if math.Abs(s.Pose[0].X-0.7) > 1e-9 {
		t.Errorf("Expected mirrored x 0.7, got %f", s.Pose[0].X)
	}
	if f.Pose[0].X != 0.3 {
		t.Error("Expected provider frame untouched")
	}
}

func TestTrackerSmoothsAgainstPreviousFrame(t *testing.T) {
	tr := NewTracker()
	tr.Update(Frame{Pose: lmSet(33, 0.5, 0.5)})
	tr.Update(Frame{Pose: lmSet(33, 0.51, 0.5)})

	// Slow motion keeps base alpha 0.5 in camera space: 0.505, mirrored 0.495
	got := tr.Snapshot().Pose[0].X
	if math.Abs(got-0.495) > 1e-9 {
		t.Errorf("Expected 0.495, got %f", got)
	}
}

func TestTrackerReadyFiresOnce(t *testing.T) {
	tr := NewTracker()
	calls := 0
	tr.OnReady(func() { calls++ })

	tr.Update(Frame{})
	if calls != 0 {
		t.Fatal("Expected no ready callback without pose data")
	}

	tr.Update(Frame{Pose: lmSet(33, 0.5, 0.5)})
	tr.Update(Frame{Pose: lmSet(33, 0.5, 0.5)})
	if calls != 1 {
		t.Errorf("Expected ready callback once, got %d", calls)
	}

	late := 0
	tr.OnReady(func() { late++ })
	if late != 1 {
		t.Errorf("Expected late registration to fire immediately, got %d", late)
	}
}

func TestTrackerReadyConcurrentRegistration(t *testing.T) {
	frame := Frame{Pose: lmSet(33, 0.5, 0.5)}
	for i := 0; i < 200; i++ {
		tr := NewTracker()
		var calls atomic.Int32
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			tr.Update(frame)
		}()
		go func() {
			defer wg.Done()
			tr.OnReady(func() { calls.Add(1) })
		}()
		wg.Wait()

		if n := calls.Load(); n != 1 {
			t.Fatalf("Iteration %d: expected ready callback once, got %d", i, n)
		}
	}
}

func TestLandmarkMissingVisibility(t *testing.T) {
	var lms []Landmark
	data := `[{"x":0.1,"y":0.2,"z":0},{"x":0.3,"y":0.4,"z":0,"visibility":0.25}]`
	if err := json.Unmarshal([]byte(data), &lms); err != nil {
		t.Fatalf("Expected decode, got %v", err)
	}
	if lms[0].Visibility != 1 {
		t.Errorf("Expected absent visibility as 1, got %f", lms[0].Visibility)
	}
	if lms[1].Visibility != 0.25 || lms[1].Y != 0.4 {
		t.Errorf("Expected explicit fields kept, got %+v", lms[1])
	}
}

func TestTrackerHandsByLabel(t *testing.T) {
	tr := NewTracker()
	tr.Update(Frame{
		Pose:  lmSet(33, 0.5, 0.5),
		Hands: []Hand{{Handedness: "Left", Landmarks: lmSet(21, 0.2, 0.2)}},
	})

	s := tr.Snapshot()
	if s.LeftHand == nil || s.RightHand != nil {
		t.Fatal("Expected only left hand present")
	}
	if math.Abs(s.LeftHand[0].X-0.8) > 1e-9 {
		t.Errorf("Expected mirrored hand x 0.8, got %f", s.LeftHand[0].X)
	}

	tr.Update(Frame{Pose: lmSet(33, 0.5, 0.5)})
	if tr.Snapshot().LeftHand != nil {
		t.Error("Expected hand cleared when absent from frame")
	}
}

func TestTrackerSnapshotImmutable(t *testing.T) {
	tr := NewTracker()
	tr.Update(Frame{Pose: lmSet(33, 0.5, 0.5)})
	first := tr.Snapshot()
	x := first.Pose[0].X

	tr.Update(Frame{Pose: lmSet(33, 0.9, 0.5)})
	if first.Pose[0].X != x {
		t.Error("Expected published snapshot to stay unchanged after next frame")
	}
	if tr.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", tr.Frames())
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Update(Frame{Pose: lmSet(33, 0.5, 0.5)})
	tr.Reset()
	if tr.Snapshot().HasPose() {
		t.Error("Expected empty snapshot after reset")
	}
	if !tr.Ready() {
		t.Error("Expected ready flag kept after reset")
	}
}

func TestSyntheticFrameRoundTrip(t *testing.T) {
	s := StandingSkeleton(0.5, 0.5, 0.8)
	s.LeftHand = OpenHand(0.7, 0.5, 0.05)

	tr := NewTracker()
	tr.Update(s.Frame())
	got := tr.Snapshot()

	if math.Abs(got.Pose[LeftWrist].X-s.Pose[LeftWrist].X) > 1e-9 {
		t.Errorf("Expected wrist x %f, got %f", s.Pose[LeftWrist].X, got.Pose[LeftWrist].X)
	}
	if math.Abs(got.LeftHand[0].Y-s.LeftHand[0].Y) > 1e-9 {
		t.Error("Expected hand to round trip")
	}
}
