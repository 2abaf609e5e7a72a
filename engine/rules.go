package engine

import "github.com/lixenwraith/starblaster/constants"

// SpriteSize is an entity's bounding box size, centered on its position
type SpriteSize struct {
	W float64 `toml:"w"`
	H float64 `toml:"h"`
}

// Sprites holds the bounding box size of each entity kind
type Sprites struct {
	Ship   SpriteSize `toml:"ship"`
	Bullet SpriteSize `toml:"bullet"`
	Alien  SpriteSize `toml:"alien"`
	Star   SpriteSize `toml:"star"`
}

// Size returns the sprite size for kind
func (s Sprites) Size(k Kind) SpriteSize {
	switch k {
	case KindShip:
		return s.Ship
	case KindBullet:
		return s.Bullet
	case KindAlien:
		return s.Alien
	default:
		return s.Star
	}
}

// WrapRule teleports the ship past a threshold to a target on the opposite edge
type WrapRule struct {
	RightThreshold  float64 `toml:"right_threshold"`
	RightTarget     float64 `toml:"right_target"`
	LeftThreshold   float64 `toml:"left_threshold"`
	LeftTarget      float64 `toml:"left_target"`
	BottomThreshold float64 `toml:"bottom_threshold"`
	BottomTarget    float64 `toml:"bottom_target"`
	TopThreshold    float64 `toml:"top_threshold"`
	TopTarget       float64 `toml:"top_target"`
}

// Rules are the tunable constants of the simulation
type Rules struct {
	ViewportWidth  int `toml:"viewport_width"`
	ViewportHeight int `toml:"viewport_height"`

	ShipSpeed float64 `toml:"ship_speed"`

	BulletSpeed        float64 `toml:"bullet_speed"`
	BulletSpawnOffsetY float64 `toml:"bullet_spawn_offset_y"`
	BulletTopBound     float64 `toml:"bullet_top_bound"`

	AlienSpeed  float64 `toml:"alien_speed"`
	AlienSpawnY float64 `toml:"alien_spawn_y"`

	StarSpeed  float64 `toml:"star_speed"`
	StarSpawnY float64 `toml:"star_spawn_y"`

	BottomBound float64 `toml:"bottom_bound"`

	AlienKillScore int `toml:"alien_kill_score"`
	ShipHitPenalty int `toml:"ship_hit_penalty"`

	Wrap    WrapRule `toml:"wrap"`
	Sprites Sprites  `toml:"sprites"`
}

// DefaultRules returns the stock 960x540 rule set
func DefaultRules() Rules {
	return Rules{
		ViewportWidth:      constants.ViewportWidth,
		ViewportHeight:     constants.ViewportHeight,
		ShipSpeed:          constants.ShipSpeed,
		BulletSpeed:        constants.BulletSpeed,
		BulletSpawnOffsetY: constants.BulletSpawnOffsetY,
		BulletTopBound:     constants.BulletTopBound,
		AlienSpeed:         constants.AlienSpeed,
		AlienSpawnY:        constants.AlienSpawnY,
		StarSpeed:          constants.StarSpeed,
		StarSpawnY:         constants.StarSpawnY,
		BottomBound:        constants.BottomBound,
		AlienKillScore:     constants.AlienKillScore,
		ShipHitPenalty:     constants.ShipHitPenalty,
		Wrap: WrapRule{
			RightThreshold:  constants.WrapRightThreshold,
			RightTarget:     constants.WrapRightTarget,
			LeftThreshold:   constants.WrapLeftThreshold,
			LeftTarget:      constants.WrapLeftTarget,
			BottomThreshold: constants.WrapBottomThreshold,
			BottomTarget:    constants.WrapBottomTarget,
			TopThreshold:    constants.WrapTopThreshold,
			TopTarget:       constants.WrapTopTarget,
		},
		Sprites: Sprites{
			Ship:   SpriteSize{W: constants.ShipWidth, H: constants.ShipHeight},
			Bullet: SpriteSize{W: constants.BulletWidth, H: constants.BulletHeight},
			Alien:  SpriteSize{W: constants.AlienWidth, H: constants.AlienHeight},
			Star:   SpriteSize{W: constants.StarWidth, H: constants.StarHeight},
		},
	}
}
