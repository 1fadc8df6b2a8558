package parameter

import "math"

// Target Lifecycle
const (
	// TargetFadeRate is alpha lost per second once a target is finished
	TargetFadeRate = 2.0

	// TargetPulseRate is the cosmetic pulse phase advance in radians per second
	TargetPulseRate = 3.0

	// TargetPulsePeriod wraps the pulse phase
	TargetPulsePeriod = 2 * math.Pi
)

// Target Colors
const (
	HazardWarningColor = "#FFD700"
	HazardActiveColor  = "#FF0000"
	RewardWarningColor = "#87CEFA"
	RewardActiveColor  = "#6C7CEA"
)
