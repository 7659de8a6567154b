package system

import (
	"testing"

	"brainrot-td/internal/component"
)

func allyOf(e component.Element) component.Ally {
	a := basicAlly()
	a.Element = e
	return a
}

func TestMergeUpgradeScalesByRatio(t *testing.T) {
	a := basicAlly()
	a.AttackCooldown = 0.7
	got, ok := Merge(a, a)
	if !ok {
		t.Fatal("identical allies did not merge")
	}
	want := component.Ally{
		Element:        component.Basic,
		Atk:            15,
		Range:          3,
		AoeRange:       0,
		Level:          2,
		AtkSpeed:       1.5,
		AttackCooldown: 0,
		LevelupRatio:   1.5,
		SpecialValue:   3.0,
	}
	if got != want {
		t.Fatalf("upgrade = %+v\nwant %+v", got, want)
	}
}

func TestMergeUpgradeTruncates(t *testing.T) {
	a := basicAlly()
	a.Atk, a.Range, a.AoeRange = 7, 1, 1
	got, _ := Merge(a, a)
	if got.Atk != 10 || got.Range != 1 || got.AoeRange != 1 {
		t.Fatalf("truncation: %+v", got)
	}
}

func TestMergeHybridOrdersElements(t *testing.T) {
	crit, slow := allyOf(component.Critical), allyOf(component.Slow)
	crit.Atk = 20
	slow.AtkSpeed = 2.0
	got, ok := Merge(crit, slow)
	if !ok {
		t.Fatal("hybrid rejected")
	}
	if got.Element != component.Slow || got.SecondElement != component.Critical {
		t.Fatalf("elements = %v/%v", got.Element, got.SecondElement)
	}
	if got.Atk != 20 || got.Level != 1 || got.AttackCooldown != 0 || got.AtkSpeed != 1.5 {
		t.Fatalf("hybrid stats = %+v", got)
	}
}

func TestMergeHybridsOfSamePairUpgrade(t *testing.T) {
	h, _ := Merge(allyOf(component.Basic), allyOf(component.Dot))
	got, ok := Merge(h, h)
	if !ok || got.Level != 2 || got.HasSecond() || got.Element != component.Basic {
		t.Fatalf("hybrid upgrade = %+v, %v", got, ok)
	}
}

func TestMergeRejections(t *testing.T) {
	l2 := allyOf(component.Basic)
	l2.Level = 2
	hyb, _ := Merge(allyOf(component.Basic), allyOf(component.Slow))

	cases := []struct {
		name string
		a, b component.Ally
	}{
		{"levels differ, same element", allyOf(component.Basic), l2},
		{"levels differ, other element", allyOf(component.Dot), l2},
		{"hybrid with single", hyb, allyOf(component.Aoe)},
		{"hybrid with other hybrid", hyb, func() component.Ally { h, _ := Merge(allyOf(component.Dot), allyOf(component.Aoe)); return h }()},
	}
	for _, tc := range cases {
		if _, ok := Merge(tc.a, tc.b); ok {
			t.Errorf("%s: merged", tc.name)
		}
	}
}

func TestMergeIsCommutative(t *testing.T) {
	var pool []component.Ally
	for _, e := range component.Elements {
		a := allyOf(e)
		a.Atk = 5 + int(e)*3
		a.AtkSpeed = 0.5 + float64(e)/10
		a.SpecialValue = float64(e)
		pool = append(pool, a)
	}
	h1, _ := Merge(pool[0], pool[3])
	h2, _ := Merge(pool[3], pool[0])
	pool = append(pool, h1, h2)

	for i := range pool {
		for j := range pool {
			ab, okAB := Merge(pool[i], pool[j])
			ba, okBA := Merge(pool[j], pool[i])
			if okAB != okBA || ab != ba {
				t.Errorf("Merge(%d,%d) = %+v,%v but Merge(%d,%d) = %+v,%v", i, j, ab, okAB, j, i, ba, okBA)
			}
		}
	}
}
