// @focus: #constants { gameplay }
package constants

// Ship Movement
const (
	// ShipSpeed is the per-tick displacement for each held direction
	// Diagonals are the unnormalized sum of both axes
	ShipSpeed = 3

	// ShipStartX, ShipStartY place the ship at the viewport center
	ShipStartX = ViewportWidth / 2
	ShipStartY = ViewportHeight / 2
)

// Screen Wrap
// Thresholds leave room for the ship sprite half-width beyond the edges
const (
	WrapRightThreshold  = 972
	WrapRightTarget     = -20
	WrapLeftThreshold   = -22
	WrapLeftTarget      = 970
	WrapBottomThreshold = 550
	WrapBottomTarget    = -10
	WrapTopThreshold    = -12
	WrapTopTarget       = 545
)

// Bullets
const (
	// BulletSpeed is the upward per-tick displacement
	BulletSpeed = 5

	// BulletSpawnOffsetY is added to the ship y when a bullet is fired
	BulletSpawnOffsetY = -10

	// BulletTopBound culls bullets once y drops below it
	BulletTopBound = -40
)

// Aliens
const (
	// AlienSpeed is the downward per-tick displacement
	AlienSpeed = 2

	// AlienSpawnY starts aliens above the visible area
	AlienSpawnY = -50
)

// Stars (decorative)
const (
	StarSpeed  = 6
	StarSpawnY = -30
)

// BottomBound culls aliens and stars once y exceeds it
const BottomBound = 600

// Scoring
const (
	// AlienKillScore is awarded when a bullet destroys an alien
	AlienKillScore = 10

	// ShipHitPenalty is subtracted when an alien collides with the ship
	ShipHitPenalty = 10
)
