// internal/system/movement.go
package system

import (
	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/entity"
)

// MovementSystem двигает врагов по периметру.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update advances every enemy by speed * slow factor * tick. A missing factor
// counts as no slow.
func (s *MovementSystem) Update(slowFactors []float64) {
	enemies := s.world.Board.Enemies
	for i := range enemies {
		factor := 1.0
		if i < len(slowFactors) {
			factor = slowFactors[i]
		}
		enemy := &enemies[i]
		enemy.Position = component.WrapPosition(enemy.Position + enemy.MoveSpeed*factor*config.TickDelta)
	}
}
