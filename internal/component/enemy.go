package component

import "brainrot-td/internal/config"

// Enemy представляет врага, идущего по периметру.
type Enemy struct {
	HP        int
	MoveSpeed float64 // единиц пути в секунду
	Position  float64 // [0, PathLength)
	DotList   []Debuff
	SlowList  []Debuff
}

// NewEnemy returns an enemy with the baseline stats used by the spawn batch.
func NewEnemy() Enemy {
	return Enemy{
		HP:        config.EnemyHealth,
		MoveSpeed: config.EnemySpeed,
		Position:  config.EnemyStartPoint,
	}
}

// Alive reports whether the enemy still has hit points.
func (e Enemy) Alive() bool {
	return e.HP > 0
}

// GridPosition projects the path position onto grid space.
func (e Enemy) GridPosition() (float64, float64) {
	return ProjectPath(e.Position)
}

// Clone returns a copy that shares no debuff storage with e.
func (e Enemy) Clone() Enemy {
	c := e
	c.DotList = append([]Debuff(nil), e.DotList...)
	c.SlowList = append([]Debuff(nil), e.SlowList...)
	return c
}
