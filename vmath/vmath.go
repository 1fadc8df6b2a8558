package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or direction on the play surface, in pixels
type Vec = r2.Vec

// V builds a Vec
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// --- Scalars ---

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp blends a toward b by t, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapAngle keeps a phase in [0, period)
func WrapAngle(phase, period float64) float64 {
	if phase >= period || phase < 0 {
		phase = math.Mod(phase, period)
		if phase < 0 {
			phase += period
		}
	}
	return phase
}

// --- Vectors ---

// Dist returns the Euclidean distance between a and b
func Dist(a, b Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b Vec) Vec {
	return r2.Scale(0.5, r2.Add(a, b))
}

// FromAngle returns a vector of length mag pointing at angle (radians)
func FromAngle(angle, mag float64) Vec {
	return Vec{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}
