package vmath

import (
	"math"
	"testing"
)

func TestDiscsOverlap(t *testing.T) {
	if !DiscsOverlap(V(0, 0), 10, V(15, 0), 10) {
		t.Error("Expected overlapping discs")
	}
	if DiscsOverlap(V(0, 0), 10, V(20, 0), 10) {
		t.Error("Expected touching discs to not overlap")
	}
	if DiscsOverlap(V(0, 0), 5, V(100, 100), 5) {
		t.Error("Expected distant discs to not overlap")
	}
}

func TestSegmentDistance(t *testing.T) {
	d, ok := SegmentDistance(V(5, 3), V(0, 0), V(10, 0))
	if !ok {
		t.Fatal("Expected projection on segment")
	}
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("Expected distance 3, got %f", d)
	}

	if _, ok := SegmentDistance(V(-1, 0), V(0, 0), V(10, 0)); ok {
		t.Error("Expected projection before start to be off segment")
	}
	if _, ok := SegmentDistance(V(11, 0), V(0, 0), V(10, 0)); ok {
		t.Error("Expected projection past end to be off segment")
	}
	if _, ok := SegmentDistance(V(0, 0), V(4, 4), V(4, 4)); ok {
		t.Error("Expected degenerate segment to never report on segment")
	}
}

func TestCapsuleHit(t *testing.T) {
	a, b := V(0, 0), V(100, 0)
	if !CapsuleHit(V(50, 10), a, b, 20) {
		t.Error("Expected hit at exactly half thickness")
	}
	if CapsuleHit(V(50, 10.5), a, b, 20) {
		t.Error("Expected miss beyond half thickness")
	}
	if CapsuleHit(V(105, 0), a, b, 20) {
		t.Error("Expected miss beyond endpoint")
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Vec{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}

	if !PointInPolygon(V(5, 5), square) {
		t.Error("Expected centre inside square")
	}
	if PointInPolygon(V(15, 5), square) {
		t.Error("Expected point right of square outside")
	}
	if PointInPolygon(V(5, 5), square[:2]) {
		t.Error("Expected degenerate polygon to contain nothing")
	}

	// Concave: L shape, notch at top right
	ell := []Vec{V(0, 0), V(10, 0), V(10, 5), V(5, 5), V(5, 10), V(0, 10)}
	if PointInPolygon(V(8, 8), ell) {
		t.Error("Expected notch point outside L polygon")
	}
	if !PointInPolygon(V(2, 8), ell) {
		t.Error("Expected arm point inside L polygon")
	}
}

func TestPolygonHitEdgeBand(t *testing.T) {
	square := []Vec{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}

	if !PolygonHit(V(13, 5), square, 6) {
		t.Error("Expected hit within edge band")
	}
	if PolygonHit(V(14, 5), square, 6) {
		t.Error("Expected miss outside edge band")
	}
}

func TestWrapAngle(t *testing.T) {
	p := WrapAngle(2*math.Pi+0.5, 2*math.Pi)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Expected 0.5, got %f", p)
	}
	if WrapAngle(1, 2*math.Pi) != 1 {
		t.Error("Expected in-range phase unchanged")
	}
}
