package utils

import (
	"testing"

	"brainrot-td/internal/component"
	"brainrot-td/internal/defs"
)

func TestPRNGIsReproducible(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntInclusive(0, 100), b.IntInclusive(0, 100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed = %d", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed must be replaced")
	}
}

func TestIntInclusiveBounds(t *testing.T) {
	s := NewPRNGService(7)
	sawLo, sawHi := false, false
	for i := 0; i < 5000; i++ {
		v := s.IntInclusive(0, 10)
		if v < 0 || v > 10 {
			t.Fatalf("out of range: %d", v)
		}
		sawLo = sawLo || v == 0
		sawHi = sawHi || v == 10
	}
	if !sawLo || !sawHi {
		t.Error("bounds never drawn")
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.ChooseWeighted(nil); got != component.Basic {
		t.Errorf("empty table = %v", got)
	}
	only := []defs.LootEntry{{Element: component.Dot, Weight: 0}, {Element: component.Slow, Weight: 5}}
	for i := 0; i < 50; i++ {
		if got := s.ChooseWeighted(only); got != component.Slow {
			t.Fatalf("zero-weight entry chosen: %v", got)
		}
	}
	counts := map[component.Element]int{}
	table := defs.DefaultTuning().LootTable()
	for i := 0; i < 5000; i++ {
		counts[s.ChooseWeighted(table)]++
	}
	for _, e := range component.Elements {
		if counts[e] < 700 {
			t.Errorf("%v drawn %d times out of 5000", e, counts[e])
		}
	}
}

func TestMathHelpers(t *testing.T) {
	if SaturatingSub(15, 20) != 0 || SaturatingSub(20, 15) != 5 || SaturatingSub(3, 3) != 0 {
		t.Error("SaturatingSub")
	}
	if Distance(0, 0, 3, 4) != 5 {
		t.Error("Distance")
	}
	if Mean(1, 2) != 1.5 || MaxInt(3, -1) != 3 {
		t.Error("Mean/MaxInt")
	}
}
