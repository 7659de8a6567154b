package system

import (
	"math"

	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/entity"
	"brainrot-td/internal/utils"
)

// CombatSystem управляет атакой союзников.
type CombatSystem struct {
	world *entity.World
	ready []component.Coord
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Update ticks every cooldown, then resolves the allies that became ready.
// Ready allies are collected before any enemy is touched.
func (s *CombatSystem) Update() {
	board := s.world.Board
	s.ready = s.ready[:0]
	for i := range board.Allies {
		for j := range board.Allies[i] {
			ally := board.Allies[i][j].Ally()
			if ally == nil {
				continue
			}
			ally.AttackCooldown = math.Max(0, ally.AttackCooldown-config.TickDelta)
			if ally.AttackCooldown <= 0 {
				s.ready = append(s.ready, component.Coord{Row: i, Col: j})
			}
		}
	}

	for _, pos := range s.ready {
		ally := board.Slot(pos).Ally()
		if !s.attack(pos, *ally) {
			// Цели нет — союзник остаётся готовым.
			continue
		}
		ally.AttackCooldown = math.Max(0, ally.AtkSpeed)
	}
}

// attack reports whether the ally found a target.
func (s *CombatSystem) attack(pos component.Coord, ally component.Ally) bool {
	target := s.findNearestEnemyInRange(pos, ally.Range)
	if target < 0 {
		return false
	}

	damage := ally.Atk
	if ally.Has(component.Critical) {
		damage *= config.CriticalMultiplier
	}

	if ally.Has(component.Aoe) {
		s.resolveArea(ally, target, damage)
	} else {
		hitEnemy(&s.world.Board.Enemies[target], ally, damage)
	}
	return true
}

// findNearestEnemyInRange returns the index of the closest live enemy within
// rangeRadius of the cell, or -1. The earliest enemy wins a tie.
func (s *CombatSystem) findNearestEnemyInRange(pos component.Coord, rangeRadius int) int {
	ax, ay := pos.World()
	nearest := -1
	minDistance := math.MaxFloat64
	for i, enemy := range s.world.Board.Enemies {
		if !enemy.Alive() {
			continue
		}
		ex, ey := enemy.GridPosition()
		distance := utils.Distance(ax, ay, ex, ey)
		if distance <= float64(rangeRadius) && distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}
	return nearest
}

// hitEnemy applies damage and one debuff per Slow/Dot element of the ally.
// Debuffs of the same kind stack.
func hitEnemy(enemy *component.Enemy, ally component.Ally, damage int) {
	ApplyDamage(enemy, damage)
	for _, e := range ally.ElementList() {
		switch e {
		case component.Slow:
			enemy.SlowList = append(enemy.SlowList, component.Debuff{
				Value:    config.SlowDebuffValue,
				Cooldown: config.SlowDebuffDuration,
			})
		case component.Dot:
			enemy.DotList = append(enemy.DotList, component.Debuff{
				Value:    config.DotDebuffValue,
				Cooldown: config.DotDebuffDuration,
			})
		}
	}
}
