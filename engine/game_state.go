package engine

import "github.com/lixenwraith/starblaster/input"

// GameState is all mutable simulation state
// It is owned by a single GameLoop and mutated only from its goroutine
type GameState struct {
	Ship    *Entity
	Bullets []*Entity
	Aliens  []*Entity
	Stars   []*Entity

	// Score is unbounded and may go negative
	Score int

	Input *input.State
}

// NewGameState creates a state with no ship and empty collections
func NewGameState() *GameState {
	return &GameState{
		Bullets: make([]*Entity, 0, 16),
		Aliens:  make([]*Entity, 0, 16),
		Stars:   make([]*Entity, 0, 64),
		Input:   input.NewState(),
	}
}
