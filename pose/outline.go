package pose

import "github.com/lixenwraith/axododge/parameter"

// Outline is the positioning box in normalized game (mirrored) coordinates
type Outline struct {
	Left, Top, Right, Bottom float64
}

// DefaultOutline is the centred standing box shown before each match
var DefaultOutline = Outline{
	Left:   parameter.OutlineLeft,
	Top:    parameter.OutlineTop,
	Right:  parameter.OutlineRight,
	Bottom: parameter.OutlineBottom,
}

// outlineKeyPoints are the landmarks that must sit inside the box
var outlineKeyPoints = [...]int{
	Nose,
	LeftShoulder, RightShoulder,
	LeftHip, RightHip,
	LeftElbow, RightElbow,
	LeftWrist, RightWrist,
}

// Contains reports whether a normalized point lies inside the box
func (o Outline) Contains(x, y float64) bool {
	return x >= o.Left && x <= o.Right && y >= o.Top && y <= o.Bottom
}

// InOutline reports whether enough confidently tracked key points are inside o
// Returns false with no pose or when no key point is visible
func InOutline(s *Skeleton, o Outline) bool {
	if !s.HasPose() || len(s.Pose) < parameter.PoseLandmarkCount {
		return false
	}

	var visible, inside int
	for _, idx := range outlineKeyPoints {
		lm := s.Pose[idx]
		if lm.Visibility < parameter.OutlineMinVisibility {
			continue
		}
		visible++
		if o.Contains(lm.X, lm.Y) {
			inside++
		}
	}

	if visible == 0 {
		return false
	}
	return float64(inside)/float64(visible) >= parameter.OutlineRequiredRatio
}
