package parameter

// Body Collider
const (
	// HeadRadiusFactor scales the inter-ear distance into the head disc radius
	HeadRadiusFactor = 0.85

	// HeadNoseOffset shifts the head centre toward the nose, as a fraction of the inter-ear distance
	HeadNoseOffset = 0.1

	// LimbThicknessFactor is capsule thickness in multiples of the probe radius
	LimbThicknessFactor = 2.0

	// ColliderMinVisibility skips landmarks the tracker is unsure about
	ColliderMinVisibility = 0.3
)
