package engine

import (
	"sort"

	"github.com/lixenwraith/starblaster/vmath"
)

// Surface is the render collaborator the loop draws through
type Surface interface {
	Add(e *Entity)
	Remove(e *Entity)
	// Bounds returns the entity's current box in surface coordinates
	Bounds(e *Entity) vmath.Rect
	SetScoreText(text string)
}

// SoundSink receives audio cues
type SoundSink interface {
	PlayFire()
}

type silentSink struct{}

func (silentSink) PlayFire() {}

// Stage is the headless Surface shared by all frontends
// It tracks attached entities and answers bounds from the sprite table
type Stage struct {
	sprites   Sprites
	entities  map[uint64]*Entity
	scoreText string
}

// NewStage creates an empty stage
func NewStage(sprites Sprites) *Stage {
	return &Stage{
		sprites:  sprites,
		entities: make(map[uint64]*Entity),
	}
}

func (s *Stage) Add(e *Entity) {
	s.entities[e.ID] = e
}

func (s *Stage) Remove(e *Entity) {
	delete(s.entities, e.ID)
}

// Bounds centers the kind's sprite box on the entity position
func (s *Stage) Bounds(e *Entity) vmath.Rect {
	size := s.sprites.Size(e.Kind)
	return vmath.CenteredRect(e.Pos, size.W, size.H)
}

func (s *Stage) SetScoreText(text string) {
	s.scoreText = text
}

// ScoreText returns the last score text set
func (s *Stage) ScoreText() string {
	return s.scoreText
}

// Contains reports whether e is attached
func (s *Stage) Contains(e *Entity) bool {
	_, ok := s.entities[e.ID]
	return ok
}

// Len returns the number of attached entities
func (s *Stage) Len() int {
	return len(s.entities)
}

// Entities returns attached entities in draw order: stars, aliens, bullets, ship
// Ties break on ID so newer entities draw on top
func (s *Stage) Entities() []*Entity {
	out := make([]*Entity, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := out[i].Kind.layer(), out[j].Kind.layer()
		if li != lj {
			return li < lj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
