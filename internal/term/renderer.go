// internal/term/renderer.go
package term

import (
	"fmt"
	"image/color"

	"brainrot-td/internal/app"
	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/pkg/render"
	"brainrot-td/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const (
	cellW   = 6
	cellH   = 3
	originX = 1
	originY = 1
	panelX  = originX + config.FrameCols*cellW + 2
	eventsY = originY + config.FrameRows*cellH + 1
)

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

var (
	styleText     = tcell.StyleDefault.Foreground(rgb(config.TextLightColor))
	styleTitle    = tcell.StyleDefault.Foreground(rgb(config.SelectedColor)).Bold(true)
	stylePath     = tcell.StyleDefault.Background(rgb(render.DarkenColor(config.PathCellColor)))
	styleEnemy    = tcell.StyleDefault.Background(rgb(render.DarkenColor(config.PathCellColor))).Foreground(rgb(config.EnemyColor)).Bold(true)
	styleCell     = tcell.StyleDefault.Background(rgb(config.CellColor))
	styleSelected = tcell.StyleDefault.Background(rgb(config.SelectedColor)).Foreground(rgb(config.TextDarkColor))
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *Renderer) DrawMenu() {
	r.screen.Clear()
	lines := []string{
		"BRAINROT TOWER DEFENSE",
		"",
		"enter    start",
		"arrows   move the cursor (or hjkl)",
		"enter    pick up / drop an ally",
		"space    buy an ally",
		"q/esc    quit",
	}
	for i, line := range lines {
		style := styleText
		if i == 0 {
			style = styleTitle
		}
		r.drawText(originX+2, originY+2+i, line, style)
	}
	r.screen.Show()
}

func (r *Renderer) Draw(snap *app.Snapshot) {
	r.screen.Clear()

	counts := snap.FrameCounts()
	for row := 0; row < config.FrameRows; row++ {
		for col := 0; col < config.FrameCols; col++ {
			if render.IsPathCell(row, col) {
				r.drawPathCell(row, col, counts[row][col])
			}
		}
	}
	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridCols; col++ {
			c := component.Coord{Row: row, Col: col}
			r.drawAllyCell(c, snap)
		}
	}

	width, _ := r.screen.Size()
	panelW := width - panelX
	y := originY
	r.drawText(panelX, y, "Brainrot TD", styleTitle)
	y++
	for _, line := range render.InfoLines(snap) {
		r.drawText(panelX, y, utils.Truncate(line, panelW), styleText)
		y++
	}
	y++
	r.drawText(panelX, y, "Merge", styleTitle)
	y++
	for _, line := range render.MergeLines(snap.Preview) {
		r.drawText(panelX, y, utils.Truncate(line, panelW), styleText)
		y++
	}

	_, height := r.screen.Size()
	rows := utils.Clamp(height-eventsY, 0, len(snap.Events))
	for i, line := range render.Tail(snap.Events, rows) {
		r.drawText(originX, eventsY+i, utils.Truncate(line, panelX-originX-1), styleText)
	}

	r.screen.Show()
}

func (r *Renderer) drawPathCell(row, col, enemies int) {
	x, y := originX+col*cellW, originY+row*cellH
	r.fill(x, y, stylePath)
	if enemies > 0 {
		label := fmt.Sprintf("x%d", enemies)
		r.drawText(x+(cellW-len(label))/2, y+cellH/2, label, styleEnemy)
	}
}

func (r *Renderer) drawAllyCell(c component.Coord, snap *app.Snapshot) {
	x, y := originX+(c.Col+1)*cellW, originY+(c.Row+1)*cellH
	style := styleCell
	ally, ok := snap.Board.Allies[c.Row][c.Col].Get()
	if ok {
		primary, secondary := render.AllyColors(ally)
		style = tcell.StyleDefault.Background(rgb(render.DarkenColor(primary))).Foreground(rgb(secondary))
	}
	if snap.HasSelection && snap.Selected == c {
		style = styleSelected
	}
	if snap.Cursor == c {
		style = style.Reverse(true)
	}
	r.fill(x, y, style)
	if !ok {
		return
	}

	tag := string([]rune(ally.Element.String())[:1])
	if ally.HasSecond() {
		tag += string([]rune(ally.SecondElement.String())[:1])
	}
	r.drawText(x+1, y, tag, style.Bold(true))
	r.drawText(x+1, y+1, fmt.Sprintf("lv%d", ally.Level), style)
}

func (r *Renderer) fill(x, y int, style tcell.Style) {
	for dy := 0; dy < cellH; dy++ {
		for dx := 0; dx < cellW; dx++ {
			r.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
