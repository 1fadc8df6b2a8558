package parameter

import "time"

// Landmark Counts
const (
	// PoseLandmarkCount is the number of body landmarks per frame
	PoseLandmarkCount = 33

	// HandLandmarkCount is the number of landmarks per hand
	HandLandmarkCount = 21
)

// Body Smoothing Filter
const (
	// BodyFilterAlpha is the base weight of the previous frame
	BodyFilterAlpha = 0.5
	// BodyQuickMoveThreshold is the max per-landmark displacement (normalized) before alpha is reduced
	BodyQuickMoveThreshold = 0.02
	// BodyAlphaScale normalizes displacement when computing the reduction
	BodyAlphaScale = 0.05
	// BodyAlphaReduction is the alpha removed per unit of normalized displacement
	BodyAlphaReduction = 0.3
	// BodyAlphaFloor is the minimum alpha, bounds lag during fast motion
	BodyAlphaFloor = 0.2
)

// Hand Smoothing Filter
const (
	HandFilterAlpha        = 0.4
	HandQuickMoveThreshold = 0.016
	HandAlphaScale         = 0.04
	HandAlphaReduction     = 0.35
	HandAlphaFloor         = 0.15
)

// Positioning Outline
const (
	// OutlineMinVisibility is the visibility below which a key point is ignored
	OutlineMinVisibility = 0.6

	// OutlineRequiredRatio is the share of visible key points that must be inside the outline
	OutlineRequiredRatio = 0.75

	// OutlineLeft..OutlineBottom bound the outline box in normalized camera coordinates
	OutlineLeft   = 0.25
	OutlineRight  = 0.75
	OutlineTop    = 0.05
	OutlineBottom = 0.95

	// PositioningHoldSeconds is how long the player must stay inside the outline
	PositioningHoldSeconds = 3.0

	// CountdownSeconds is the pre-match countdown after positioning
	CountdownSeconds = 3
)

// Pose Feed
const (
	// PoseFeedPath is the websocket endpoint for landmark frames
	PoseFeedPath = "/pose"

	// PoseFeedReadLimit caps one inbound JSON frame in bytes
	PoseFeedReadLimit = 256 << 10

	// PoseFeedWriteTimeout bounds one status reply
	PoseFeedWriteTimeout = 2 * time.Second

	// PoseFeedShutdownTimeout bounds graceful listener shutdown
	PoseFeedShutdownTimeout = 3 * time.Second
)

// Keyboard Avatar
const (
	// AvatarHeight is the nose-to-ankle span of the synthetic body (normalized)
	AvatarHeight = 0.8

	// AvatarStep is the target shift per key press (normalized)
	AvatarStep = 0.06

	// AvatarSpeed is the max body travel per second (normalized)
	AvatarSpeed = 1.5

	// AvatarMinX..AvatarMaxY bound the body centre
	AvatarMinX = 0.1
	AvatarMaxX = 0.9
	AvatarMinY = 0.35
	AvatarMaxY = 0.65

	// AvatarHandSize is the palm-to-fingertip span of synthetic hands
	AvatarHandSize = 0.05
)
