// Package collider approximates the tracked body with simple shapes and tests
// targets against it
package collider

import (
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
	"github.com/lixenwraith/axododge/vmath"
	"gonum.org/v1/gonum/spatial/r2"
)

// Probe is a disc on the play surface, in pixels
type Probe struct {
	X, Y   float64
	Radius float64
}

func (p Probe) center() vmath.Vec { return vmath.V(p.X, p.Y) }

// Body tests probes against one skeleton snapshot
// Geometry is derived on every call; a Body is cheap to rebuild per frame
type Body struct {
	skel          *pose.Skeleton
	width, height float64
}

// NewBody binds a skeleton to a surface size
// A nil skeleton yields a body that never collides
func NewBody(skel *pose.Skeleton, width, height float64) *Body {
	return &Body{skel: skel, width: width, height: height}
}

// Skeleton returns the bound snapshot
func (b *Body) Skeleton() *pose.Skeleton { return b.skel }

// Collides reports whether the probe touches any body region
// Regions are tested head, torso, limbs, hands and stop at the first hit
func (b *Body) Collides(p Probe) bool {
	if b == nil || !b.skel.HasPose() {
		return false
	}
	return b.HitsHead(p) || b.HitsTorso(p) || b.HitsLimbs(p) || b.HitsHands(p)
}

// point returns landmark i in surface space, false if missing or unreliable
func (b *Body) point(set []pose.Landmark, i int) (vmath.Vec, bool) {
	if i >= len(set) || set[i].Visibility < parameter.ColliderMinVisibility {
		return vmath.Vec{}, false
	}
	return pose.Point(set, i, b.width, b.height), true
}

// Head returns the head disc
func (b *Body) Head() (center vmath.Vec, radius float64, ok bool) {
	if !b.skel.HasPose() {
		return vmath.Vec{}, 0, false
	}
	le, okL := b.point(b.skel.Pose, pose.LeftEar)
	re, okR := b.point(b.skel.Pose, pose.RightEar)
	if !okL || !okR {
		return vmath.Vec{}, 0, false
	}

	earDist := vmath.Dist(le, re)
	center = vmath.Midpoint(le, re)

	if nose, okN := b.point(b.skel.Pose, pose.Nose); okN {
		toNose := r2.Sub(nose, center)
		if n := r2.Norm(toNose); n > 0 {
			center = r2.Add(center, r2.Scale(earDist*parameter.HeadNoseOffset/n, toNose))
		}
	}
	return center, earDist * parameter.HeadRadiusFactor, true
}

// HitsHead tests the probe against the head disc
func (b *Body) HitsHead(p Probe) bool {
	c, r, ok := b.Head()
	if !ok {
		return false
	}
	return vmath.DiscsOverlap(c, r, p.center(), p.Radius)
}

// Torso returns the shoulder-shoulder-hip-hip quadrilateral
func (b *Body) Torso() ([]vmath.Vec, bool) {
	if !b.skel.HasPose() {
		return nil, false
	}
	idx := [4]int{pose.LeftShoulder, pose.RightShoulder, pose.RightHip, pose.LeftHip}
	poly := make([]vmath.Vec, 0, 4)
	for _, i := range idx {
		v, ok := b.point(b.skel.Pose, i)
		if !ok {
			return nil, false
		}
		poly = append(poly, v)
	}
	return poly, true
}

// HitsTorso tests the probe centre inside the torso or within radius of an edge
func (b *Body) HitsTorso(p Probe) bool {
	poly, ok := b.Torso()
	if !ok {
		return false
	}
	return vmath.PolygonHit(p.center(), poly, p.Radius*parameter.LimbThicknessFactor)
}

// HitsLimbs tests the probe against each limb capsule
// Segments with a missing endpoint are skipped individually
func (b *Body) HitsLimbs(p Probe) bool {
	if !b.skel.HasPose() {
		return false
	}
	c := p.center()
	thickness := p.Radius * parameter.LimbThicknessFactor
	for _, limb := range pose.Limbs {
		a, okA := b.point(b.skel.Pose, limb[0])
		e, okE := b.point(b.skel.Pose, limb[1])
		if !okA || !okE {
			continue
		}
		if vmath.CapsuleHit(c, a, e, thickness) {
			return true
		}
	}
	return false
}

// HandPolygon returns the polygon through all points of a hand, in landmark order
func (b *Body) HandPolygon(hand []pose.Landmark) ([]vmath.Vec, bool) {
	if len(hand) < parameter.HandLandmarkCount {
		return nil, false
	}
	poly := make([]vmath.Vec, len(hand))
	for i := range hand {
		poly[i] = pose.Point(hand, i, b.width, b.height)
	}
	return poly, true
}

// HitsHands tests the probe against each present hand
func (b *Body) HitsHands(p Probe) bool {
	if b.skel == nil {
		return false
	}
	c := p.center()
	thickness := p.Radius * parameter.LimbThicknessFactor
	for _, hand := range [2][]pose.Landmark{b.skel.LeftHand, b.skel.RightHand} {
		poly, ok := b.HandPolygon(hand)
		if !ok {
			continue
		}
		if vmath.PolygonHit(c, poly, thickness) {
			return true
		}
	}
	return false
}
