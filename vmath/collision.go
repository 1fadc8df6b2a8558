package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DiscsOverlap reports strict overlap of two discs
// Touching discs (distance == ra+rb) do not overlap
func DiscsOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	r := ra + rb
	return r2.Norm2(r2.Sub(a, b)) < r*r
}

// SegmentDistance returns the distance from p to segment ab and whether the
// perpendicular projection of p falls on the segment
// Degenerate segments (a == b) report onSegment false
func SegmentDistance(p, a, b Vec) (dist float64, onSegment bool) {
	ab := r2.Sub(b, a)
	length := r2.Norm(ab)
	if length == 0 {
		return Dist(p, a), false
	}

	dir := r2.Scale(1/length, ab)
	proj := r2.Dot(r2.Sub(p, a), dir)
	if proj < 0 || proj > length {
		return math.Inf(1), false
	}

	closest := r2.Add(a, r2.Scale(proj, dir))
	return Dist(p, closest), true
}

// CapsuleHit reports whether p lies within a thick segment
// Points beyond the endpoints never hit, matching a flat-ended capsule
func CapsuleHit(p, a, b Vec, thickness float64) bool {
	d, ok := SegmentDistance(p, a, b)
	return ok && d <= thickness/2
}

// PointInPolygon tests p against a closed polygon using even-odd ray casting
// Polygons with fewer than 3 vertices contain nothing
func PointInPolygon(p Vec, poly []Vec) bool {
	if len(poly) < 3 {
		return false
	}

	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		vi, vj := poly[i], poly[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PolygonHit reports whether a disc at p touches poly: either the centre is
// inside or any edge lies within the band of the given thickness
func PolygonHit(p Vec, poly []Vec, thickness float64) bool {
	if PointInPolygon(p, poly) {
		return true
	}
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if CapsuleHit(p, a, b, thickness) {
			return true
		}
	}
	return false
}
