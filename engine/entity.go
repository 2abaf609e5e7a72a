package engine

import "github.com/lixenwraith/starblaster/vmath"

// Kind discriminates the four entity types
type Kind uint8

const (
	KindShip Kind = iota
	KindBullet
	KindAlien
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindBullet:
		return "bullet"
	case KindAlien:
		return "alien"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// layer orders drawing back to front
func (k Kind) layer() int {
	switch k {
	case KindStar:
		return 0
	case KindAlien:
		return 1
	case KindBullet:
		return 2
	default:
		return 3
	}
}

// Entity is a positioned simulation object
// ID doubles as the presentation handle on the render surface
type Entity struct {
	ID    uint64
	Kind  Kind
	Pos   vmath.Vec2
	Speed float64

	destroyed bool
}

// Destroyed reports whether the entity has left the simulation
func (e *Entity) Destroyed() bool {
	return e.destroyed
}
