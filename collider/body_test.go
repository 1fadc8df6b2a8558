package collider

import (
	"testing"

	"github.com/lixenwraith/axododge/pose"
)

const surface = 1000.0

func standingBody() *Body {
	return NewBody(pose.StandingSkeleton(0.5, 0.5, 0.8), surface, surface)
}

func TestTorsoCentreAlwaysCollides(t *testing.T) {
	b := standingBody()
	poly, ok := b.Torso()
	if !ok {
		t.Fatal("Expected torso polygon")
	}

	var cx, cy float64
	for _, v := range poly {
		cx += v.X / 4
		cy += v.Y / 4
	}

	for _, r := range []float64{0.001, 1, 20, 120} {
		if !b.HitsTorso(Probe{X: cx, Y: cy, Radius: r}) {
			t.Errorf("Expected torso centre hit at radius %f", r)
		}
		if !b.Collides(Probe{X: cx, Y: cy, Radius: r}) {
			t.Errorf("Expected collision at torso centre with radius %f", r)
		}
	}
}

func TestHeadDisc(t *testing.T) {
	b := standingBody()
	c, r, ok := b.Head()
	if !ok {
		t.Fatal("Expected head disc")
	}
	// Ears 64px apart
	if r < 54.39 || r > 54.41 {
		t.Errorf("Expected radius 54.4, got %f", r)
	}
	if c.Y <= 156 {
		t.Errorf("Expected centre shifted toward the nose, got y=%f", c.Y)
	}

	if !b.HitsHead(Probe{X: 500, Y: 100, Radius: 10}) {
		t.Error("Expected hit just above the head")
	}
	if b.HitsHead(Probe{X: 500, Y: 40, Radius: 10}) {
		t.Error("Expected miss well above the head")
	}
}

func TestHeadMissingEar(t *testing.T) {
	s := pose.StandingSkeleton(0.5, 0.5, 0.8)
	s.Pose[pose.LeftEar].Visibility = 0
	b := NewBody(s, surface, surface)
	if _, _, ok := b.Head(); ok {
		t.Error("Expected no head disc with an unreliable ear")
	}
	if b.HitsHead(Probe{X: 500, Y: 156, Radius: 10}) {
		t.Error("Expected head test to degrade to false")
	}
}

func TestLimbCapsule(t *testing.T) {
	b := standingBody()
	// Left upper arm: (596,260) -> (660,380), probe 8px off its midpoint
	px, py := 628+8*120.0/136, 320-8*64.0/136

	if !b.HitsLimbs(Probe{X: px, Y: py, Radius: 10}) {
		t.Error("Expected limb hit inside capsule")
	}
	if b.HitsLimbs(Probe{X: px, Y: py, Radius: 5}) {
		t.Error("Expected limb miss outside capsule")
	}
}

func TestHands(t *testing.T) {
	s := pose.StandingSkeleton(0.5, 0.5, 0.8)
	s.RightHand = pose.OpenHand(0.1, 0.1, 0.05)
	b := NewBody(s, surface, surface)

	wrist := s.RightHand[0]
	if !b.HitsHands(Probe{X: wrist.X * surface, Y: wrist.Y * surface, Radius: 5}) {
		t.Error("Expected hit on hand outline")
	}
	if b.HitsHands(Probe{X: 300, Y: 300, Radius: 5}) {
		t.Error("Expected miss away from hand")
	}

	s.RightHand = s.RightHand[:10]
	if b.HitsHands(Probe{X: wrist.X * surface, Y: wrist.Y * surface, Radius: 5}) {
		t.Error("Expected incomplete hand to be skipped")
	}
}

func TestNoPoseNeverCollides(t *testing.T) {
	skel := &pose.Skeleton{RightHand: pose.OpenHand(0.5, 0.5, 0.1)}
	b := NewBody(skel, surface, surface)
	if b.Collides(Probe{X: 500, Y: 500, Radius: 100}) {
		t.Error("Expected no collision without pose landmarks")
	}

	var nilBody *Body
	if nilBody.Collides(Probe{X: 1, Y: 1, Radius: 1}) {
		t.Error("Expected nil body to never collide")
	}
	if NewBody(nil, surface, surface).Collides(Probe{X: 1, Y: 1, Radius: 1}) {
		t.Error("Expected nil skeleton to never collide")
	}
}

func TestFarProbeMisses(t *testing.T) {
	if standingBody().Collides(Probe{X: 50, Y: 50, Radius: 10}) {
		t.Error("Expected corner probe to miss the body")
	}
}
