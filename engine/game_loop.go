package engine

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/lixenwraith/starblaster/constants"
	"github.com/lixenwraith/starblaster/input"
	"github.com/lixenwraith/starblaster/vmath"
)

// GameLoop runs the per-frame simulation
// Every method must be called from the same goroutine; spawners and input
// handlers interleave with Update but never run inside it
type GameLoop struct {
	rules   Rules
	state   *GameState
	surface Surface
	sound   SoundSink
	rng     *rand.Rand

	nextID uint64
	frame  uint64
}

// NewGameLoop creates the ship at the viewport center and shows the initial score
// A nil sound sink plays nothing
func NewGameLoop(rules Rules, surface Surface, sound SoundSink, rng *rand.Rand) *GameLoop {
	if sound == nil {
		sound = silentSink{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &GameLoop{
		rules:   rules,
		state:   NewGameState(),
		surface: surface,
		sound:   sound,
		rng:     rng,
	}

	center := vmath.Vec2{X: float64(rules.ViewportWidth / 2), Y: float64(rules.ViewportHeight / 2)}
	g.state.Ship = g.newEntity(KindShip, center, rules.ShipSpeed)
	surface.Add(g.state.Ship)
	g.showScore()

	return g
}

// State exposes the simulation state for rendering and inspection
func (g *GameLoop) State() *GameState {
	return g.state
}

// Rules returns the active rule set
func (g *GameLoop) Rules() Rules {
	return g.rules
}

// Frame returns the number of completed updates
func (g *GameLoop) Frame() uint64 {
	return g.frame
}

// KeyDown records a key press resolved to action
func (g *GameLoop) KeyDown(key string, action input.Action) {
	g.state.Input.SetKey(key, action, true)
}

// KeyUp records a key release; releasing a fire key clears the fire latch
func (g *GameLoop) KeyUp(key string, action input.Action) {
	g.state.Input.SetKey(key, action, false)
}

// ReleaseAll drops every held key and clears the fire latch
// Frontends call it when they stop receiving key events, such as on focus loss
func (g *GameLoop) ReleaseAll() {
	g.state.Input.Reset()
}

// PointerDown fires immediately, bypassing the keyboard fire latch
func (g *GameLoop) PointerDown() {
	g.fire()
}

// Update advances the simulation by one frame tick
func (g *GameLoop) Update() {
	g.moveShip()
	g.wrapShip()

	if g.state.Input.TryFire() {
		g.fire()
	}

	g.updateBullets()
	g.updateAliens()
	g.updateStars()

	g.frame++
}

// moveShip applies a fixed displacement per held direction
// Diagonals are not normalized
func (g *GameLoop) moveShip() {
	in := g.state.Input
	var dir vmath.Vec2

	if in.Held(input.ActionMoveUp) {
		dir.Y--
	}
	if in.Held(input.ActionMoveLeft) {
		dir.X--
	}
	if in.Held(input.ActionMoveDown) {
		dir.Y++
	}
	if in.Held(input.ActionMoveRight) {
		dir.X++
	}

	ship := g.state.Ship
	ship.Pos = ship.Pos.Add(dir.Scale(g.rules.ShipSpeed))
}

func (g *GameLoop) wrapShip() {
	w := g.rules.Wrap
	pos := &g.state.Ship.Pos

	if pos.X > w.RightThreshold {
		pos.X = w.RightTarget
	}
	if pos.X < w.LeftThreshold {
		pos.X = w.LeftTarget
	}
	if pos.Y > w.BottomThreshold {
		pos.Y = w.BottomTarget
	}
	if pos.Y < w.TopThreshold {
		pos.Y = w.TopTarget
	}
}

func (g *GameLoop) fire() {
	ship := g.state.Ship
	pos := vmath.Vec2{X: ship.Pos.X, Y: ship.Pos.Y + g.rules.BulletSpawnOffsetY}
	b := g.newEntity(KindBullet, pos, g.rules.BulletSpeed)

	g.surface.Add(b)
	g.state.Bullets = append(g.state.Bullets, b)
	g.sound.PlayFire()
}

// updateBullets walks newest to oldest so removal never skips an entry
// A bullet destroys at most one alien per frame
func (g *GameLoop) updateBullets() {
	bullets := g.state.Bullets

	for i := len(bullets) - 1; i >= 0; i-- {
		b := bullets[i]
		b.Pos = b.Pos.Add(vmath.Vec2{Y: -b.Speed})

		if b.Pos.Y < g.rules.BulletTopBound {
			g.destroy(b)
			bullets = slices.Delete(bullets, i, i+1)
			continue
		}

		box := g.surface.Bounds(b)
		aliens := g.state.Aliens
		for j := len(aliens) - 1; j >= 0; j-- {
			a := aliens[j]
			if !box.Intersects(g.surface.Bounds(a)) {
				continue
			}

			g.destroy(b)
			g.destroy(a)
			bullets = slices.Delete(bullets, i, i+1)
			g.state.Aliens = slices.Delete(aliens, j, j+1)
			g.addScore(g.rules.AlienKillScore)
			break
		}
	}

	g.state.Bullets = bullets
}

// updateAliens moves aliens down, culls past the bottom bound, and resolves ship hits
// The ship is never destroyed
func (g *GameLoop) updateAliens() {
	aliens := g.state.Aliens
	shipBox := g.surface.Bounds(g.state.Ship)

	for i := len(aliens) - 1; i >= 0; i-- {
		a := aliens[i]
		a.Pos = a.Pos.Add(vmath.Vec2{Y: a.Speed})

		if a.Pos.Y > g.rules.BottomBound {
			g.destroy(a)
			aliens = slices.Delete(aliens, i, i+1)
		} else if shipBox.Intersects(g.surface.Bounds(a)) {
			g.destroy(a)
			aliens = slices.Delete(aliens, i, i+1)
			g.addScore(-g.rules.ShipHitPenalty)
		}
	}

	g.state.Aliens = aliens
}

func (g *GameLoop) updateStars() {
	stars := g.state.Stars

	for i := len(stars) - 1; i >= 0; i-- {
		s := stars[i]
		s.Pos = s.Pos.Add(vmath.Vec2{Y: s.Speed})

		if s.Pos.Y > g.rules.BottomBound {
			g.destroy(s)
			stars = slices.Delete(stars, i, i+1)
		}
	}

	g.state.Stars = stars
}

func (g *GameLoop) newEntity(kind Kind, pos vmath.Vec2, speed float64) *Entity {
	g.nextID++
	return &Entity{ID: g.nextID, Kind: kind, Pos: pos, Speed: speed}
}

func (g *GameLoop) destroy(e *Entity) {
	e.destroyed = true
	g.surface.Remove(e)
}

func (g *GameLoop) addScore(delta int) {
	g.state.Score += delta
	g.showScore()
}

func (g *GameLoop) showScore() {
	g.surface.SetScoreText(fmt.Sprintf(constants.ScoreFormat, g.state.Score))
}
