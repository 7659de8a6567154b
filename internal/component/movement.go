// component/movement.go
package component

import (
	"math"

	"brainrot-td/internal/config"
)

// WrapPosition folds any path value into [0, PathLength).
func WrapPosition(p float64) float64 {
	p = math.Mod(p, config.PathLength)
	if p < 0 {
		p += config.PathLength
	}
	if p >= config.PathLength {
		p = 0
	}
	return p
}

// ProjectPath maps a scalar path position onto grid coordinates.
//
//	top    [0,8)   -> (p, 0)
//	right  [8,12)  -> (8, p-8)
//	bottom [12,20) -> (p-12, 12)
//	left   [20,24) -> (0, p-20)
//
// Anything else (NaN, infinities) maps to the origin.
func ProjectPath(position float64) (float64, float64) {
	p := WrapPosition(position)
	switch {
	case p >= 0 && p < 8:
		return p, 0
	case p >= 8 && p < 12:
		return 8, p - 8
	case p >= 12 && p < 20:
		return p - 12, 12
	case p >= 20 && p < 24:
		return 0, p - 20
	default:
		return 0, 0
	}
}

// FrameCell returns the frame cell (row, col) of the 9x5 display frame that
// shows an enemy at the given path position. Cells are numbered clockwise from
// the top-left corner, one per whole path unit.
func FrameCell(position float64) (int, int) {
	i := int(math.Floor(WrapPosition(position))) % len(frameCells)
	if i < 0 {
		i = 0
	}
	c := frameCells[i]
	return c.Row, c.Col
}

// frameCells — 24 клетки периметра по часовой стрелке.
var frameCells = func() []Coord {
	cells := make([]Coord, 0, 2*(config.FrameCols+config.FrameRows)-4)
	for col := 0; col < config.FrameCols; col++ {
		cells = append(cells, Coord{Row: 0, Col: col})
	}
	for row := 1; row < config.FrameRows; row++ {
		cells = append(cells, Coord{Row: row, Col: config.FrameCols - 1})
	}
	for col := config.FrameCols - 2; col >= 0; col-- {
		cells = append(cells, Coord{Row: config.FrameRows - 1, Col: col})
	}
	for row := config.FrameRows - 2; row >= 1; row-- {
		cells = append(cells, Coord{Row: row, Col: 0})
	}
	return cells
}()
