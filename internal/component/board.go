// internal/component/board.go
package component

import "brainrot-td/internal/config"

// Coord addresses a cell of the ally grid.
type Coord struct {
	Row, Col int
}

// World returns the grid-space position of the cell: column j, row i sits
// at (j+1, i+1), inside the perimeter path.
func (c Coord) World() (float64, float64) {
	return float64(c.Col + 1), float64(c.Row + 1)
}

// Slot — клетка сетки: пустая или с одним союзником. Союзник хранится по
// значению, поэтому перемещение — это Take + Put, без общих указателей.
type Slot struct {
	ally   Ally
	filled bool
}

func (s *Slot) Occupied() bool {
	return s.filled
}

// Get returns a copy of the ally in the slot.
func (s *Slot) Get() (Ally, bool) {
	return s.ally, s.filled
}

// Ally returns a pointer for in-place updates, or nil for an empty slot.
// The pointer must not outlive the current tick.
func (s *Slot) Ally() *Ally {
	if !s.filled {
		return nil
	}
	return &s.ally
}

// Take empties the slot and returns what it held.
func (s *Slot) Take() (Ally, bool) {
	a, ok := s.ally, s.filled
	s.ally, s.filled = Ally{}, false
	return a, ok
}

// Put stores a, replacing any previous occupant.
func (s *Slot) Put(a Ally) {
	s.ally, s.filled = a, true
}

// PendingEnemy — враг в очереди появления и его обратный отсчёт в тиках.
type PendingEnemy struct {
	Enemy Enemy
	Delay int
}

// Board owns the ally grid and both enemy collections.
type Board struct {
	Allies  [config.GridRows][config.GridCols]Slot
	Enemies []Enemy
	Pending []PendingEnemy
}

func NewBoard() *Board {
	return &Board{}
}

// Slot returns the slot at c. Coordinates come from the cursor, which keeps
// them in range.
func (b *Board) Slot(c Coord) *Slot {
	return &b.Allies[c.Row][c.Col]
}

// EmptyCells lists free cells in row-major order.
func (b *Board) EmptyCells() []Coord {
	var cells []Coord
	for i := range b.Allies {
		for j := range b.Allies[i] {
			if !b.Allies[i][j].Occupied() {
				cells = append(cells, Coord{Row: i, Col: j})
			}
		}
	}
	return cells
}

// OccupiedCount returns the number of allies on the grid.
func (b *Board) OccupiedCount() int {
	n := 0
	for i := range b.Allies {
		for j := range b.Allies[i] {
			if b.Allies[i][j].Occupied() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (b *Board) Clone() Board {
	c := Board{Allies: b.Allies}
	c.Enemies = make([]Enemy, len(b.Enemies))
	for i, e := range b.Enemies {
		c.Enemies[i] = e.Clone()
	}
	c.Pending = make([]PendingEnemy, len(b.Pending))
	for i, p := range b.Pending {
		c.Pending[i] = PendingEnemy{Enemy: p.Enemy.Clone(), Delay: p.Delay}
	}
	return c
}
