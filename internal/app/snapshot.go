package app

import (
	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/system"
)

// MergePreview shows what dropping the selected ally on the hovered one
// would produce.
type MergePreview struct {
	Left, Right       component.Ally
	HasLeft, HasRight bool
	Result            component.Ally
	CanMerge          bool
}

// Snapshot is a read-only copy of everything the frontends display.
type Snapshot struct {
	ID           string
	Tick         uint64
	Phase        component.Phase
	Level        int
	Coins        int
	Board        component.Board
	Cursor       component.Coord
	Selected     component.Coord
	HasSelection bool
	Preview      MergePreview
	Events       []string
}

// Snapshot copies the observable state. Changing the copy never affects the
// game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:           g.ID,
		Tick:         g.world.Tick,
		Phase:        g.world.Phase,
		Level:        g.world.Player.Level,
		Coins:        g.world.Player.Coins,
		Board:        g.world.Board.Clone(),
		Cursor:       g.cursor,
		Selected:     g.selected,
		HasSelection: g.hasSelection,
		Preview:      g.mergePreview(),
		Events:       g.Events.Lines(config.EventLogCapacity),
	}
}

func (g *Game) mergePreview() MergePreview {
	var p MergePreview
	hovered, hasHovered := g.world.Board.Slot(g.cursor).Get()
	if g.hasSelection {
		p.Left, p.HasLeft = g.world.Board.Slot(g.selected).Get()
		if g.cursor != g.selected {
			p.Right, p.HasRight = hovered, hasHovered
		}
	} else {
		p.Left, p.HasLeft = hovered, hasHovered
	}
	if p.HasLeft && p.HasRight {
		p.Result, p.CanMerge = system.Merge(p.Left, p.Right)
	}
	return p
}

// FrameCounts buckets the active enemies into the cells of the frame around
// the ally grid.
func (s *Snapshot) FrameCounts() [config.FrameRows][config.FrameCols]int {
	var counts [config.FrameRows][config.FrameCols]int
	for _, e := range s.Board.Enemies {
		row, col := component.FrameCell(e.Position)
		counts[row][col]++
	}
	return counts
}

// EnemiesLeft counts active and pending enemies.
func (s *Snapshot) EnemiesLeft() int {
	return len(s.Board.Enemies) + len(s.Board.Pending)
}
