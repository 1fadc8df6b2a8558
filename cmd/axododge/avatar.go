package main

import (
	"log"

	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
)

// feedState reports whether an external pose provider is connected
type feedState interface {
	ActiveSession() string
}

// Avatar is a keyboard-driven stand-in body fed to the tracker every frame
// It yields to an external pose feed while a session is connected
type Avatar struct {
	tracker *pose.Tracker
	feed    feedState

	x, y    float64 // Current body centre, normalized game space
	tx, ty  float64 // Centre the body is walking toward
	hands   bool
	yielded bool
}

// NewAvatar creates a centred avatar; feed may be nil
func NewAvatar(tracker *pose.Tracker, feed feedState) *Avatar {
	a := &Avatar{tracker: tracker, feed: feed}
	a.Center()
	a.x, a.y = a.tx, a.ty
	return a
}

// Nudge moves the walk target by whole steps, clamped to the play area
func (a *Avatar) Nudge(dx, dy int) {
	a.tx = clamp(a.tx+float64(dx)*parameter.AvatarStep, parameter.AvatarMinX, parameter.AvatarMaxX)
	a.ty = clamp(a.ty+float64(dy)*parameter.AvatarStep, parameter.AvatarMinY, parameter.AvatarMaxY)
}

// Center sends the body back to the middle of the frame
func (a *Avatar) Center() {
	a.tx, a.ty = 0.5, 0.5
}

// ToggleHands shows or hides hand landmarks, returning the new state
func (a *Avatar) ToggleHands() bool {
	a.hands = !a.hands
	return a.hands
}

// Position returns the current body centre
func (a *Avatar) Position() (x, y float64) {
	return a.x, a.y
}

// Update implements engine.Animator
func (a *Avatar) Update(dt float64) {
	if a.feed != nil && a.feed.ActiveSession() != "" {
		if !a.yielded {
			log.Printf("[Avatar] pose feed connected, keyboard body suspended")
			a.yielded = true
		}
		return
	}
	if a.yielded {
		log.Printf("[Avatar] pose feed gone, keyboard body resumed")
		a.yielded = false
	}

	step := parameter.AvatarSpeed * dt
	a.x = approach(a.x, a.tx, step)
	a.y = approach(a.y, a.ty, step)
	a.tracker.Update(a.Skeleton().Frame())
}

// Skeleton builds the body at the current position in game orientation
func (a *Avatar) Skeleton() *pose.Skeleton {
	s := pose.StandingSkeleton(a.x, a.y, parameter.AvatarHeight)
	if a.hands {
		size := parameter.AvatarHandSize
		lw, rw := s.Pose[pose.LeftWrist], s.Pose[pose.RightWrist]
		s.LeftHand = pose.OpenHand(lw.X, lw.Y-size, size)
		s.RightHand = pose.OpenHand(rw.X, rw.Y-size, size)
	}
	return s
}

func approach(cur, target, step float64) float64 {
	switch {
	case cur < target:
		return min(cur+step, target)
	case cur > target:
		return max(cur-step, target)
	}
	return cur
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
