// internal/ui/board_renderer.go
package ui

import (
	"fmt"
	"image/color"

	"brainrot-td/internal/app"
	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BoardRenderer draws the frame, allies, enemy counts and the cursor.
type BoardRenderer struct {
	layout   render.Layout
	fontFace font.Face
}

func NewBoardRenderer(layout render.Layout, face font.Face) *BoardRenderer {
	return &BoardRenderer{layout: layout, fontFace: face}
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	counts := snap.FrameCounts()
	for row := 0; row < config.FrameRows; row++ {
		for col := 0; col < config.FrameCols; col++ {
			x, y, size := r.layout.FrameCellRect(row, col)
			if render.IsPathCell(row, col) {
				vector.DrawFilledRect(screen, x, y, size, size, config.PathCellColor, false)
				vector.StrokeRect(screen, x, y, size, size, config.StrokeWidth, config.CellStrokeColor, false)
				if n := counts[row][col]; n > 0 {
					r.drawEnemies(screen, x, y, size, n)
				}
				continue
			}
			vector.DrawFilledRect(screen, x, y, size, size, config.CellColor, false)
			vector.StrokeRect(screen, x, y, size, size, config.StrokeWidth, config.CellStrokeColor, false)
		}
	}

	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridCols; col++ {
			c := component.Coord{Row: row, Col: col}
			if ally, ok := snap.Board.Allies[row][col].Get(); ok {
				r.drawAlly(screen, c, ally)
			}
		}
	}

	if snap.HasSelection {
		x, y, size := r.layout.AllyCellRect(snap.Selected)
		vector.StrokeRect(screen, x+3, y+3, size-6, size-6, config.StrokeWidth*2, config.SelectedColor, false)
	}
	x, y, size := r.layout.AllyCellRect(snap.Cursor)
	vector.StrokeRect(screen, x+1, y+1, size-2, size-2, config.StrokeWidth*2, config.CursorColor, false)
}

func (r *BoardRenderer) drawEnemies(screen *ebiten.Image, x, y, size float32, n int) {
	cx, cy := x+size/2, y+size/2
	vector.DrawFilledCircle(screen, cx, cy, size/4, config.EnemyColor, true)
	label := fmt.Sprintf("%d", n)
	r.drawCentered(screen, label, cx, cy, config.TextLightColor)
}

func (r *BoardRenderer) drawAlly(screen *ebiten.Image, c component.Coord, ally component.Ally) {
	x, y, size := r.layout.AllyCellRect(c)
	primary, secondary := render.AllyColors(ally)
	inset := size / 8
	inner := size - 2*inset
	// Гибрид — две половины.
	vector.DrawFilledRect(screen, x+inset, y+inset, inner/2, inner, primary, false)
	vector.DrawFilledRect(screen, x+inset+inner/2, y+inset, inner/2, inner, secondary, false)
	vector.StrokeRect(screen, x+inset, y+inset, inner, inner, config.StrokeWidth, render.DarkenColor(primary), false)

	r.drawCentered(screen, ally.Element.String()[:1]+secondInitial(ally), x+size/2, y+size/2-6, config.TextDarkColor)
	r.drawCentered(screen, fmt.Sprintf("lv%d", ally.Level), x+size/2, y+size/2+10, config.TextDarkColor)
}

func (r *BoardRenderer) drawCentered(screen *ebiten.Image, s string, cx, cy float32, clr color.Color) {
	b := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, int(cx)-b.Dx()/2, int(cy)-b.Dy()/2-b.Min.Y, clr)
}

func secondInitial(a component.Ally) string {
	if !a.HasSecond() {
		return ""
	}
	return a.SecondElement.String()[:1]
}

func (r *BoardRenderer) FontFace() font.Face {
	return r.fontFace
}
