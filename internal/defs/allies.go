// internal/defs/allies.go
package defs

import "brainrot-td/internal/component"

// AllyStats holds every tunable stat of a freshly bought ally.
type AllyStats struct {
	Atk            int     `yaml:"atk" json:"atk"`
	Range          int     `yaml:"range" json:"range"`
	AoeRange       int     `yaml:"aoe_range" json:"aoe_range"`
	Level          int     `yaml:"level" json:"level"`
	AtkSpeed       float64 `yaml:"atk_speed" json:"atk_speed"`
	AttackCooldown float64 `yaml:"attack_cooldown" json:"attack_cooldown"`
	LevelupRatio   float64 `yaml:"levelup_ratio" json:"levelup_ratio"`
	SpecialValue   float64 `yaml:"special_value" json:"special_value"`
}

// AllyOverride is one record of the tuning file. Nil fields are filled from
// the default record.
type AllyOverride struct {
	Atk            *int     `yaml:"atk,omitempty" json:"atk,omitempty"`
	Range          *int     `yaml:"range,omitempty" json:"range,omitempty"`
	AoeRange       *int     `yaml:"aoe_range,omitempty" json:"aoe_range,omitempty"`
	Level          *int     `yaml:"level,omitempty" json:"level,omitempty"`
	AtkSpeed       *float64 `yaml:"atk_speed,omitempty" json:"atk_speed,omitempty"`
	AttackCooldown *float64 `yaml:"attack_cooldown,omitempty" json:"attack_cooldown,omitempty"`
	LevelupRatio   *float64 `yaml:"levelup_ratio,omitempty" json:"levelup_ratio,omitempty"`
	SpecialValue   *float64 `yaml:"special_value,omitempty" json:"special_value,omitempty"`
}

// DefaultStats — встроенная запись, если файл настроек не загрузился.
func DefaultStats() AllyStats {
	return AllyStats{
		Atk:            10,
		Range:          2,
		AoeRange:       0,
		Level:          1,
		AtkSpeed:       1.0,
		AttackCooldown: 0.0,
		LevelupRatio:   1.5,
		SpecialValue:   2.0,
	}
}

// Apply returns base with every non-nil field of o written over it.
func (o AllyOverride) Apply(base AllyStats) AllyStats {
	if o.Atk != nil {
		base.Atk = *o.Atk
	}
	if o.Range != nil {
		base.Range = *o.Range
	}
	if o.AoeRange != nil {
		base.AoeRange = *o.AoeRange
	}
	if o.Level != nil {
		base.Level = *o.Level
	}
	if o.AtkSpeed != nil {
		base.AtkSpeed = *o.AtkSpeed
	}
	if o.AttackCooldown != nil {
		base.AttackCooldown = *o.AttackCooldown
	}
	if o.LevelupRatio != nil {
		base.LevelupRatio = *o.LevelupRatio
	}
	if o.SpecialValue != nil {
		base.SpecialValue = *o.SpecialValue
	}
	return base
}

// Tuning is the resolved per-element stat table plus purchase weights.
type Tuning struct {
	Default  AllyStats
	Elements map[component.Element]AllyStats
	Weights  map[component.Element]int
}

// DefaultTuning returns the table used when no file could be loaded.
func DefaultTuning() *Tuning {
	return &Tuning{
		Default:  DefaultStats(),
		Elements: map[component.Element]AllyStats{},
		Weights:  map[component.Element]int{},
	}
}

// StatsFor returns the stats of element e, falling back to the default record.
func (t *Tuning) StatsFor(e component.Element) AllyStats {
	if s, ok := t.Elements[e]; ok {
		return s
	}
	return t.Default
}

// NewAlly builds a fresh single-element ally from the table.
func (t *Tuning) NewAlly(e component.Element) component.Ally {
	s := t.StatsFor(e)
	cooldown := s.AttackCooldown
	if cooldown < 0 {
		cooldown = 0
	}
	return component.Ally{
		Element:        e,
		Atk:            s.Atk,
		Range:          s.Range,
		AoeRange:       s.AoeRange,
		Level:          s.Level,
		AtkSpeed:       s.AtkSpeed,
		AttackCooldown: cooldown,
		LevelupRatio:   s.LevelupRatio,
		SpecialValue:   s.SpecialValue,
	}
}
