// internal/system/player_system.go
package system

import (
	"brainrot-td/internal/config"
	"brainrot-td/internal/entity"
	"brainrot-td/internal/event"
)

// PlayerSystem ведёт кошелёк игрока: начисляет монеты за убийства и
// списывает их за покупки.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	s.world.Player.Coins += config.KillReward
}

// Spend takes cost coins if the balance allows it.
func (s *PlayerSystem) Spend(cost int) bool {
	if s.world.Player.Coins < cost {
		return false
	}
	s.world.Player.Coins -= cost
	return true
}
