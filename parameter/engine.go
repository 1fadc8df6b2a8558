package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single simulation step in seconds
	// Stalls longer than this are dropped instead of simulated
	MaxTickDelta = 0.1

	// LoopCommandBuffer is the capacity of the cross-goroutine command channel
	LoopCommandBuffer = 64

	// TimeEpsilon absorbs float drift when comparing accumulated tick time against durations
	TimeEpsilon = 1e-6
)

// Event Bus Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Play Surface
const (
	// DefaultSurfaceWidth is the logical width of the play surface in pixels
	DefaultSurfaceWidth = 1280.0

	// DefaultSurfaceHeight is the logical height of the play surface in pixels
	DefaultSurfaceHeight = 720.0
)
