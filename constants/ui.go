package constants

import "time"

// Score display
const (
	// ScoreFormat renders the score text
	ScoreFormat = "Score: %d"

	// ScoreTextX, ScoreTextY anchor the score text in world units
	ScoreTextX = 30
	ScoreTextY = 30
)

// Terminal glyphs
const (
	GlyphShip   = 'A'
	GlyphBullet = '|'
	GlyphAlien  = 'W'
	GlyphStar   = '.'
)

// Input
const (
	// Terminals report presses only, so releases are synthesized.
	// KeyInitialHoldWindow covers the delay before the first autorepeat,
	// which terminals set anywhere between 250ms and 660ms.
	KeyInitialHoldWindow = 700 * time.Millisecond

	// KeyHoldWindow is how long a key stays held between autorepeats
	KeyHoldWindow = 180 * time.Millisecond

	// EventQueueSize buffers terminal events between the poller and the loop
	EventQueueSize = 100
)
