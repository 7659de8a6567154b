package app

import (
	"fmt"

	"brainrot-td/internal/config"
	"brainrot-td/internal/event"
	"brainrot-td/internal/system"
)

// Direction of a cursor move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// MoveCursor moves the cursor one cell, wrapping on both axes.
func (g *Game) MoveCursor(dir Direction) {
	switch dir {
	case Up:
		g.cursor.Row = (g.cursor.Row + config.GridRows - 1) % config.GridRows
	case Down:
		g.cursor.Row = (g.cursor.Row + 1) % config.GridRows
	case Left:
		g.cursor.Col = (g.cursor.Col + config.GridCols - 1) % config.GridCols
	case Right:
		g.cursor.Col = (g.cursor.Col + 1) % config.GridCols
	}
}

// ToggleSelection selects the ally under the cursor, or drops the selected
// ally onto the cursor cell: a move if the cell is empty, a merge if not.
// A failed merge puts the ally back and keeps the selection.
func (g *Game) ToggleSelection() {
	board := g.world.Board
	if !g.hasSelection {
		if board.Slot(g.cursor).Occupied() {
			g.selected = g.cursor
			g.hasSelection = true
		}
		return
	}
	if g.cursor == g.selected {
		return
	}

	src, dst := board.Slot(g.selected), board.Slot(g.cursor)
	ally, _ := src.Take()
	target, occupied := dst.Get()
	if !occupied {
		dst.Put(ally)
		g.hasSelection = false
		g.dispatch(event.AllyMoved, fmt.Sprintf("moved %s to (%d,%d)", ally.Name(), g.cursor.Row, g.cursor.Col), g.cursor)
		return
	}

	merged, ok := system.Merge(ally, target)
	if !ok {
		src.Put(ally)
		g.dispatch(event.MergeRejected, fmt.Sprintf("%s and %s cannot merge", ally.Name(), target.Name()), nil)
		return
	}
	dst.Put(merged)
	g.hasSelection = false
	g.dispatch(event.AllyMerged, fmt.Sprintf("merged into %s lv%d", merged.Name(), merged.Level), merged)
}
