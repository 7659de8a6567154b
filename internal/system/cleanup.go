package system

import (
	"brainrot-td/internal/component"
	"brainrot-td/internal/entity"
	"brainrot-td/internal/event"
)

// CleanupSystem removes dead enemies and announces each kill.
type CleanupSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update returns the number of enemies removed.
func (s *CleanupSystem) Update() int {
	board := s.world.Board
	kept := board.Enemies[:0]
	removed := 0
	for _, enemy := range board.Enemies {
		if enemy.HP == 0 {
			removed++
			s.eventDispatcher.Dispatch(event.Event{
				Type:    event.EnemyKilled,
				Tick:    s.world.Tick,
				Message: "enemy destroyed",
				Data:    enemy,
			})
			continue
		}
		kept = append(kept, enemy)
	}
	for i := len(kept); i < len(board.Enemies); i++ {
		board.Enemies[i] = component.Enemy{}
	}
	board.Enemies = kept
	return removed
}
