package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/starblaster/vmath"
)

// SpawnAlien adds one alien at a random x above the viewport
func (g *GameLoop) SpawnAlien() *Entity {
	a := g.newEntity(KindAlien, vmath.Vec2{X: g.randomX(), Y: g.rules.AlienSpawnY}, g.rules.AlienSpeed)
	g.surface.Add(a)
	g.state.Aliens = append(g.state.Aliens, a)
	return a
}

// SpawnStar adds one decorative star at a random x above the viewport
func (g *GameLoop) SpawnStar() *Entity {
	s := g.newEntity(KindStar, vmath.Vec2{X: g.randomX(), Y: g.rules.StarSpawnY}, g.rules.StarSpeed)
	g.surface.Add(s)
	g.state.Stars = append(g.state.Stars, s)
	return s
}

// randomX is uniform over the integers [0, ViewportWidth]
func (g *GameLoop) randomX() float64 {
	return float64(g.rng.Intn(g.rules.ViewportWidth + 1))
}

// RegisterSpawners adds one scheduler task per star period and one alien task
// Star timers stay independent; merging them would change the spawn rhythm
func (g *GameLoop) RegisterSpawners(s *Scheduler, starPeriods []time.Duration, alienPeriod time.Duration) error {
	for i, period := range starPeriods {
		if err := s.Every(fmt.Sprintf("star-%d", i), period, func() { g.SpawnStar() }); err != nil {
			return err
		}
	}
	return s.Every("alien", alienPeriod, func() { g.SpawnAlien() })
}
