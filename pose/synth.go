package pose

import (
	"math"

	"github.com/lixenwraith/axododge/parameter"
)

// StandingSkeleton builds a fully visible upright body in normalized coordinates
// cx, cy is the pelvis-to-shoulder midpoint, height spans nose to ankles
// Used by the terminal demo and tests in place of a camera
func StandingSkeleton(cx, cy, height float64) *Skeleton {
	lms := make([]Landmark, parameter.PoseLandmarkCount)

	// Unlisted indices (eyes, mouth, fingers, feet) collapse onto nearby joints
	set := func(i int, dx, dy float64) {
		lms[i] = Landmark{X: cx + dx*height, Y: cy + dy*height, Visibility: 1}
	}
	for i := range lms {
		set(i, 0, -0.42)
	}

	set(Nose, 0, -0.42)
	set(LeftEar, 0.04, -0.43)
	set(RightEar, -0.04, -0.43)
	set(LeftShoulder, 0.12, -0.30)
	set(RightShoulder, -0.12, -0.30)
	set(LeftElbow, 0.20, -0.15)
	set(RightElbow, -0.20, -0.15)
	set(LeftWrist, 0.24, 0)
	set(RightWrist, -0.24, 0)
	set(LeftHip, 0.08, 0.05)
	set(RightHip, -0.08, 0.05)
	set(LeftKnee, 0.09, 0.28)
	set(RightKnee, -0.09, 0.28)
	set(LeftAnkle, 0.10, 0.50)
	set(RightAnkle, -0.10, 0.50)

	for _, i := range []int{17, 19, 21} {
		lms[i] = lms[LeftWrist]
	}
	for _, i := range []int{18, 20, 22} {
		lms[i] = lms[RightWrist]
	}
	for _, i := range []int{29, 31} {
		lms[i] = lms[LeftAnkle]
	}
	for _, i := range []int{30, 32} {
		lms[i] = lms[RightAnkle]
	}

	return &Skeleton{Pose: lms}
}

// OpenHand builds 21 hand landmarks fanned around a palm centre
func OpenHand(cx, cy, size float64) []Landmark {
	lms := make([]Landmark, parameter.HandLandmarkCount)
	lms[0] = Landmark{X: cx, Y: cy + size*0.5, Visibility: 1}

	// Five fingers of four joints each, spread over a half circle
	for f := 0; f < 5; f++ {
		angle := math.Pi + float64(f)*math.Pi/4
		for j := 0; j < 4; j++ {
			reach := size * (0.3 + 0.2*float64(j))
			lms[1+f*4+j] = Landmark{
				X:          cx + math.Cos(angle)*reach,
				Y:          cy + math.Sin(angle)*reach,
				Visibility: 1,
			}
		}
	}
	return lms
}

// Offset returns a copy of s translated by dx, dy (normalized)
func (s *Skeleton) Offset(dx, dy float64) *Skeleton {
	shift := func(in []Landmark) []Landmark {
		if in == nil {
			return nil
		}
		out := make([]Landmark, len(in))
		for i, lm := range in {
			lm.X += dx
			lm.Y += dy
			out[i] = lm
		}
		return out
	}
	return &Skeleton{
		Pose:      shift(s.Pose),
		LeftHand:  shift(s.LeftHand),
		RightHand: shift(s.RightHand),
	}
}

// Frame converts s into a provider frame, undoing the mirror so a tracker
// ingesting it publishes s back in game orientation
func (s *Skeleton) Frame() Frame {
	f := Frame{Pose: Mirror(s.Pose)}
	if s.LeftHand != nil {
		f.Hands = append(f.Hands, Hand{Handedness: "Left", Landmarks: Mirror(s.LeftHand)})
	}
	if s.RightHand != nil {
		f.Hands = append(f.Hands, Hand{Handedness: "Right", Landmarks: Mirror(s.RightHand)})
	}
	return f
}
