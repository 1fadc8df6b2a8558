// Package pose holds tracked body landmarks, the adaptive smoothing filter and
// the latest-snapshot tracker shared between the pose provider and the game loop
package pose

import (
	"encoding/json"

	"github.com/lixenwraith/axododge/vmath"
)

// Landmark is one tracked anatomical point
// X and Y are normalized to [0,1] of the camera frame, Z is relative depth
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// UnmarshalJSON decodes a landmark, treating an absent visibility as fully visible
// Hand landmarks from most estimators carry no visibility score
func (lm *Landmark) UnmarshalJSON(data []byte) error {
	type plain Landmark
	p := plain{Visibility: 1}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*lm = Landmark(p)
	return nil
}

// Pose landmark indices
const (
	Nose          = 0
	LeftEar       = 7
	RightEar      = 8
	LeftShoulder  = 11
	RightShoulder = 12
	LeftElbow     = 13
	RightElbow    = 14
	LeftWrist     = 15
	RightWrist    = 16
	LeftHip       = 23
	RightHip      = 24
	LeftKnee      = 25
	RightKnee     = 26
	LeftAnkle     = 27
	RightAnkle    = 28
)

// Limbs lists the eight limb segments as landmark index pairs
var Limbs = [8][2]int{
	{LeftShoulder, LeftElbow},
	{LeftElbow, LeftWrist},
	{RightShoulder, RightElbow},
	{RightElbow, RightWrist},
	{LeftHip, LeftKnee},
	{LeftKnee, LeftAnkle},
	{RightHip, RightKnee},
	{RightKnee, RightAnkle},
}

// Skeleton is one frame of tracked landmarks
// A nil slice means the part was not detected this frame
type Skeleton struct {
	Pose      []Landmark
	LeftHand  []Landmark
	RightHand []Landmark
}

// HasPose reports whether body landmarks are present
func (s *Skeleton) HasPose() bool {
	return s != nil && len(s.Pose) > 0
}

// Point converts landmark i of set into surface coordinates
func Point(set []Landmark, i int, width, height float64) vmath.Vec {
	lm := set[i]
	return vmath.V(lm.X*width, lm.Y*height)
}

// Mirror flips landmarks horizontally into a new slice
// Camera previews are shown mirrored, so game space uses x → 1-x
func Mirror(in []Landmark) []Landmark {
	if in == nil {
		return nil
	}
	out := make([]Landmark, len(in))
	for i, lm := range in {
		lm.X = 1 - lm.X
		out[i] = lm
	}
	return out
}
