package render

import (
	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
)

// Layout places the 9x5 frame on screen. Frame cell (0,0) is the top-left
// path cell; ally (r,c) sits at frame cell (r+1,c+1).
type Layout struct {
	X, Y     float32
	CellSize float32
}

func DefaultLayout() Layout {
	return Layout{X: config.BoardOffsetX, Y: config.BoardOffsetY, CellSize: config.CellSize}
}

// FrameCellRect returns the top-left corner and size of a frame cell.
func (l Layout) FrameCellRect(row, col int) (x, y, size float32) {
	return l.X + float32(col)*l.CellSize, l.Y + float32(row)*l.CellSize, l.CellSize
}

// AllyCellRect returns the rectangle of an ally grid cell.
func (l Layout) AllyCellRect(c component.Coord) (x, y, size float32) {
	return l.FrameCellRect(c.Row+1, c.Col+1)
}

// Width and Height of the whole frame.
func (l Layout) Width() float32 {
	return float32(config.FrameCols) * l.CellSize
}

func (l Layout) Height() float32 {
	return float32(config.FrameRows) * l.CellSize
}

// IsPathCell reports whether a frame cell lies on the enemy path.
func IsPathCell(row, col int) bool {
	return row == 0 || col == 0 || row == config.FrameRows-1 || col == config.FrameCols-1
}
