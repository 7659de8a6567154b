package component

import (
	"math"
	"testing"
)

func TestProjectPathSegments(t *testing.T) {
	tests := []struct {
		pos  float64
		x, y float64
	}{
		{0, 0, 0},
		{3.5, 3.5, 0},
		{7.99, 7.99, 0},
		{8, 8, 0},
		{10, 8, 2},
		{12, 0, 12},
		{15.5, 3.5, 12},
		{20, 0, 0},
		{23, 0, 3},
		{24, 0, 0},
		{25.5, 1.5, 0},
		{-1, 0, 3},
	}
	for _, tt := range tests {
		x, y := ProjectPath(tt.pos)
		if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 {
			t.Errorf("ProjectPath(%v) = (%v, %v), want (%v, %v)", tt.pos, x, y, tt.x, tt.y)
		}
	}
}

func TestProjectPathNaNFallsBackToOrigin(t *testing.T) {
	x, y := ProjectPath(math.NaN())
	if x != 0 || y != 0 {
		t.Fatalf("ProjectPath(NaN) = (%v, %v), want origin", x, y)
	}
}

func TestWrapPositionAcrossLoop(t *testing.T) {
	p := WrapPosition(23.99 + 1.0/60)
	want := 23.99 + 1.0/60 - 24
	if math.Abs(p-want) > 1e-9 {
		t.Fatalf("WrapPosition = %v, want %v", p, want)
	}
	x, y := ProjectPath(p)
	if y != 0 || math.Abs(x-want) > 1e-9 {
		t.Fatalf("wrapped enemy should be on the top edge, got (%v, %v)", x, y)
	}
}

func TestFrameCellsWalkPerimeterClockwise(t *testing.T) {
	if len(frameCells) != 24 {
		t.Fatalf("frame has %d perimeter cells, want 24", len(frameCells))
	}
	seen := map[Coord]bool{}
	for _, c := range frameCells {
		if seen[c] {
			t.Fatalf("cell %v visited twice", c)
		}
		seen[c] = true
		inner := c.Row > 0 && c.Row < 4 && c.Col > 0 && c.Col < 8
		if inner {
			t.Fatalf("cell %v is inside the ally grid", c)
		}
	}
	checks := map[float64]Coord{
		0:    {0, 0},
		8.5:  {0, 8},
		9:    {1, 8},
		12.2: {4, 8},
		20:   {4, 0},
		23.9: {1, 0},
	}
	for pos, want := range checks {
		r, c := FrameCell(pos)
		if r != want.Row || c != want.Col {
			t.Errorf("FrameCell(%v) = (%d, %d), want %v", pos, r, c, want)
		}
	}
}

func TestSlotTakePut(t *testing.T) {
	var s Slot
	if s.Occupied() || s.Ally() != nil {
		t.Fatal("zero slot must be empty")
	}
	s.Put(Ally{Element: Dot, Atk: 7})
	s.Ally().AttackCooldown = 0.5
	got, ok := s.Get()
	if !ok || got.Atk != 7 || got.AttackCooldown != 0.5 {
		t.Fatalf("Get after Put = %+v, %v", got, ok)
	}
	taken, ok := s.Take()
	if !ok || taken.Element != Dot {
		t.Fatalf("Take = %+v, %v", taken, ok)
	}
	if s.Occupied() {
		t.Fatal("slot still occupied after Take")
	}
	if _, ok := s.Take(); ok {
		t.Fatal("second Take must report empty")
	}
}

func TestBoardCloneIsDeep(t *testing.T) {
	b := NewBoard()
	b.Slot(Coord{1, 2}).Put(Ally{Element: Basic})
	b.Enemies = append(b.Enemies, Enemy{HP: 5, DotList: []Debuff{{Value: 2, Cooldown: 1}}})
	b.Pending = append(b.Pending, PendingEnemy{Enemy: NewEnemy(), Delay: 3})

	c := b.Clone()
	b.Slot(Coord{1, 2}).Take()
	b.Enemies[0].DotList[0].Value = 99
	b.Pending[0].Delay = 0

	if !c.Allies[1][2].Occupied() {
		t.Error("clone lost its ally")
	}
	if c.Enemies[0].DotList[0].Value != 2 {
		t.Error("clone shares debuff storage")
	}
	if c.Pending[0].Delay != 3 {
		t.Error("clone shares pending storage")
	}
	if got := len(b.EmptyCells()); got != 21 {
		t.Errorf("EmptyCells = %d, want 21", got)
	}
}

func TestAllyNamesAndElements(t *testing.T) {
	a := Ally{Element: Basic}
	if a.HasSecond() || len(a.ElementList()) != 1 {
		t.Fatal("single element ally reported as hybrid")
	}
	if a.Name() != "Tung Tung Sahur" {
		t.Errorf("Name = %q", a.Name())
	}
	h := Ally{Element: Slow, SecondElement: Critical}
	if !h.Has(Critical) || !h.Has(Slow) || h.Has(Dot) {
		t.Error("Has mismatch for hybrid")
	}
	if h.Name() != "Brr Tralala" {
		t.Errorf("hybrid Name = %q", h.Name())
	}
}

func TestParseElement(t *testing.T) {
	for _, e := range Elements {
		got, ok := ParseElement(" " + e.String() + " ")
		if !ok || got != e {
			t.Errorf("ParseElement(%q) = %v, %v", e.String(), got, ok)
		}
	}
	if _, ok := ParseElement("fire"); ok {
		t.Error("unknown element parsed")
	}
	if !(Basic < Slow && Slow < Aoe && Aoe < Dot && Dot < Critical) {
		t.Error("element order changed")
	}
}
