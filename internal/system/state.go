// internal/system/state.go
package system

import (
	"log"

	"brainrot-td/internal/component"
	"brainrot-td/internal/entity"
	"brainrot-td/internal/event"
)

// StateSystem drives the phase transitions of a game.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{world: world, eventDispatcher: eventDispatcher}
}

// Start moves Init to Running and reports whether it did.
func (s *StateSystem) Start() bool {
	if s.world.Phase != component.PhaseInit {
		return false
	}
	s.world.Phase = component.PhaseRunning
	return true
}

// CheckVictory ends a running game once no enemy is pending or active.
func (s *StateSystem) CheckVictory() bool {
	if s.world.Phase != component.PhaseRunning || s.world.EnemiesLeft() != 0 {
		return false
	}
	s.world.Phase = component.PhaseEnd
	log.Printf("StateSystem: all enemies cleared at tick %d", s.world.Tick)
	s.eventDispatcher.Dispatch(event.Event{
		Type:    event.GameEnded,
		Tick:    s.world.Tick,
		Message: "all enemies cleared",
	})
	return true
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Phase
}
