package pose

import (
	"math"

	"github.com/lixenwraith/axododge/parameter"
)

// FilterParams configures the adaptive smoothing filter for one skeleton part
type FilterParams struct {
	Base      float64 // Weight of the previous frame at rest
	Threshold float64 // Max displacement tolerated before alpha drops
	Scale     float64 // Displacement normalizer for the reduction
	Reduction float64 // Alpha removed per normalized unit of displacement
	Floor     float64 // Lowest alpha ever used
}

// BodyFilter smooths the 33 body landmarks
var BodyFilter = FilterParams{
	Base:      parameter.BodyFilterAlpha,
	Threshold: parameter.BodyQuickMoveThreshold,
	Scale:     parameter.BodyAlphaScale,
	Reduction: parameter.BodyAlphaReduction,
	Floor:     parameter.BodyAlphaFloor,
}

// HandFilter smooths the 21 landmarks of each hand
var HandFilter = FilterParams{
	Base:      parameter.HandFilterAlpha,
	Threshold: parameter.HandQuickMoveThreshold,
	Scale:     parameter.HandAlphaScale,
	Reduction: parameter.HandAlphaReduction,
	Floor:     parameter.HandAlphaFloor,
}

// Alpha returns the previous-frame weight for a given peak displacement
// Result is always within [p.Floor, p.Base]
func Alpha(maxMovement float64, p FilterParams) float64 {
	if maxMovement <= p.Threshold {
		return p.Base
	}
	alpha := p.Base - (maxMovement/p.Scale)*p.Reduction
	return math.Max(p.Floor, alpha)
}

// MaxMovement returns the largest 2D displacement between matching landmarks
func MaxMovement(prev, in []Landmark) float64 {
	var peak float64
	n := min(len(prev), len(in))
	for i := 0; i < n; i++ {
		dx := in[i].X - prev[i].X
		dy := in[i].Y - prev[i].Y
		if d := math.Sqrt(dx*dx + dy*dy); d > peak {
			peak = d
		}
	}
	return peak
}

// Smooth blends incoming landmarks toward the previous frame
// First frames and size changes pass through untouched
// The result is a new slice; neither input is modified
func Smooth(prev, in []Landmark, p FilterParams) []Landmark {
	if prev == nil || len(prev) != len(in) {
		return in
	}

	alpha := Alpha(MaxMovement(prev, in), p)
	out := make([]Landmark, len(in))
	for i := range in {
		out[i] = Landmark{
			X:          prev[i].X*alpha + in[i].X*(1-alpha),
			Y:          prev[i].Y*alpha + in[i].Y*(1-alpha),
			Z:          prev[i].Z*alpha + in[i].Z*(1-alpha),
			Visibility: in[i].Visibility,
		}
	}
	return out
}
