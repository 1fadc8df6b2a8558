package posefeed

import (
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
)

// Message types sent to the client
const (
	TypeHello  = "hello"
	TypeStatus = "status"
	TypeError  = "error"
)

// FrameMessage is one inbound landmark frame in camera orientation
type FrameMessage struct {
	Pose  []pose.Landmark `json:"pose"`
	Hands []pose.Hand     `json:"hands"`
}

// ServerMessage is every outbound message; unused fields are omitted
type ServerMessage struct {
	Type    string  `json:"type"`
	Session string  `json:"session,omitempty"`
	Phase   string  `json:"phase,omitempty"`
	Score   int64   `json:"score"`
	Lives   int64   `json:"lives"`
	Combo   int64   `json:"combo"`
	Level   int64   `json:"level"`
	Time    float64 `json:"time"`
	Error   string  `json:"error,omitempty"`
}

// Validate drops malformed parts and reports whether anything usable remains
// A pose must carry every body landmark; hands must carry 21 landmarks and a Left/Right label
func (m *FrameMessage) Validate() (pose.Frame, string) {
	var f pose.Frame
	var problem string

	switch len(m.Pose) {
	case 0:
	case parameter.PoseLandmarkCount:
		f.Pose = m.Pose
	default:
		problem = "pose must have 33 landmarks"
	}

	for _, h := range m.Hands {
		if len(h.Landmarks) != parameter.HandLandmarkCount {
			problem = "hand must have 21 landmarks"
			continue
		}
		if h.Handedness != "Left" && h.Handedness != "Right" {
			problem = "handedness must be Left or Right"
			continue
		}
		f.Hands = append(f.Hands, h)
	}
	return f, problem
}
