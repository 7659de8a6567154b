// internal/entity/world.go
package entity

import "brainrot-td/internal/component"

// World is the single mutable state every system works on. Only the game
// loop that owns it may touch it.
type World struct {
	Tick   uint64
	Phase  component.Phase
	Board  *component.Board
	Player *component.Player
}

func NewWorld() *World {
	return &World{
		Phase:  component.PhaseInit,
		Board:  component.NewBoard(),
		Player: &component.Player{Level: 1},
	}
}

// Reset clears the board and wallet for a new game; the level counter is kept.
func (w *World) Reset() {
	w.Tick = 0
	w.Phase = component.PhaseInit
	w.Board = component.NewBoard()
	w.Player.Coins = 0
}

// EnemiesLeft counts active and pending enemies.
func (w *World) EnemiesLeft() int {
	return len(w.Board.Enemies) + len(w.Board.Pending)
}
