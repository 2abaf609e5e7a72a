// @focus: #constants { entities }
package constants

// Sprite sizes in world units, centered on the entity position
const (
	ShipWidth  = 24
	ShipHeight = 24

	BulletWidth  = 4
	BulletHeight = 14

	AlienWidth  = 36
	AlienHeight = 28

	StarWidth  = 4
	StarHeight = 4
)
