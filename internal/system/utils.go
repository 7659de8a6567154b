// internal/system/utils.go
package system

import (
	"brainrot-td/internal/component"
	"brainrot-td/internal/utils"
)

// ApplyDamage снимает здоровье с насыщением в нуле: hp' = max(0, hp - damage).
func ApplyDamage(enemy *component.Enemy, damage int) {
	if damage <= 0 {
		return
	}
	enemy.HP = utils.SaturatingSub(enemy.HP, damage)
}
