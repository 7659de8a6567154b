// internal/system/area_attack_system.go
package system

import (
	"brainrot-td/internal/component"
	"brainrot-td/internal/utils"
)

// resolveArea hits every live enemy within AoeRange of the primary target.
// The radius is measured from the target, not from the ally.
func (s *CombatSystem) resolveArea(ally component.Ally, target int, damage int) {
	enemies := s.world.Board.Enemies
	cx, cy := enemies[target].GridPosition()
	for i := range enemies {
		enemy := &enemies[i]
		if !enemy.Alive() {
			continue
		}
		ex, ey := enemy.GridPosition()
		if utils.Distance(cx, cy, ex, ey) <= float64(ally.AoeRange) {
			hitEnemy(enemy, ally, damage)
		}
	}
}
