package constants

import "time"

// Game Loop Timing Constants
const (
	// FramesPerSecond is the simulation tick rate
	FramesPerSecond = 60

	// FrameUpdateInterval is the frame tick interval derived from FramesPerSecond
	FrameUpdateInterval = time.Second / FramesPerSecond
)

// Viewport
const (
	// ViewportWidth is the logical playfield width in world units
	ViewportWidth = 960

	// ViewportHeight is the logical playfield height in world units
	ViewportHeight = 540
)
