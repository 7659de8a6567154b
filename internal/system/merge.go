// internal/system/merge.go
package system

import (
	"brainrot-td/internal/component"
	"brainrot-td/internal/utils"
)

// Merge combines two allies. It returns false when the pair cannot merge, in
// which case the caller leaves both in place.
//
//   - same level, same (primary, secondary): upgrade, level+1, stats scaled
//     by levelup_ratio, secondary dropped
//   - same level, neither hybrid: hybrid, lower element becomes primary
//   - anything else: no merge
//
// Merge(a, b) == Merge(b, a) for every pair.
func Merge(a, b component.Ally) (component.Ally, bool) {
	if a.Level != b.Level {
		return component.Ally{}, false
	}
	if a.Element == b.Element && a.SecondElement == b.SecondElement {
		return upgrade(a, b), true
	}
	if a.HasSecond() || b.HasSecond() {
		return component.Ally{}, false
	}
	return hybrid(a, b), true
}

// combine takes the maximum of the integer stats and the mean of the float
// ones. Both rules are symmetric, and for identical inputs they return the
// input unchanged.
func combine(a, b component.Ally) component.Ally {
	return component.Ally{
		Element:        a.Element,
		Atk:            utils.MaxInt(a.Atk, b.Atk),
		Range:          utils.MaxInt(a.Range, b.Range),
		AoeRange:       utils.MaxInt(a.AoeRange, b.AoeRange),
		Level:          a.Level,
		AtkSpeed:       utils.Mean(a.AtkSpeed, b.AtkSpeed),
		LevelupRatio:   utils.Mean(a.LevelupRatio, b.LevelupRatio),
		SpecialValue:   utils.Mean(a.SpecialValue, b.SpecialValue),
		AttackCooldown: 0,
	}
}

func upgrade(a, b component.Ally) component.Ally {
	m := combine(a, b)
	r := m.LevelupRatio
	m.Atk = int(float64(m.Atk) * r)
	m.Range = int(float64(m.Range) * r)
	m.AoeRange = int(float64(m.AoeRange) * r)
	m.Level++
	m.AtkSpeed *= r
	m.SpecialValue *= r
	return m
}

func hybrid(a, b component.Ally) component.Ally {
	m := combine(a, b)
	lo, hi := a.Element, b.Element
	if hi < lo {
		lo, hi = hi, lo
	}
	m.Element, m.SecondElement = lo, hi
	return m
}
