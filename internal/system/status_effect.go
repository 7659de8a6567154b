// internal/system/status_effect.go
package system

import (
	"math"

	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/entity"
)

// StatusEffectSystem управляет жизненным циклом дебаффов: урон от яда и
// замедление.
type StatusEffectSystem struct {
	world   *entity.World
	factors []float64
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update applies the summed dot damage as one hit, computes the slow factor
// 0.5^(sum of slows), and decays both lists. The returned factors are
// index-aligned with Board.Enemies and valid until the next call.
func (s *StatusEffectSystem) Update() []float64 {
	enemies := s.world.Board.Enemies
	s.factors = s.factors[:0]
	for i := range enemies {
		enemy := &enemies[i]

		var dot int
		enemy.DotList, dot = decayDebuffs(enemy.DotList)
		ApplyDamage(enemy, dot)

		var slow int
		enemy.SlowList, slow = decayDebuffs(enemy.SlowList)
		s.factors = append(s.factors, math.Pow(config.SlowBase, float64(slow)))
	}
	return s.factors
}

// decayDebuffs sums the magnitudes, then ticks every duration down and drops
// the expired ones in the same pass.
func decayDebuffs(list []component.Debuff) ([]component.Debuff, int) {
	sum := 0
	kept := list[:0]
	for _, d := range list {
		sum += d.Value
		d.Cooldown -= config.TickDelta
		if d.Cooldown > 0 {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		return nil, sum
	}
	return kept, sum
}
