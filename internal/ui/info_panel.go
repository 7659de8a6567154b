// internal/ui/info_panel.go
package ui

import (
	"image/color"

	"brainrot-td/internal/app"
	"brainrot-td/internal/config"
	"brainrot-td/pkg/render"
	"brainrot-td/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelPadding = 10
	charWidth    = 7 // basicfont.Face7x13
)

// Panel is a titled box of text lines on the right or bottom of the screen.
type Panel struct {
	X, Y, W, H float32
	Title      string
	fontFace   font.Face
	maxChars   int
}

func NewPanel(x, y, w, h float32, title string, face font.Face) *Panel {
	return &Panel{X: x, Y: y, W: w, H: h, Title: title, fontFace: face, maxChars: int(w-2*panelPadding) / charWidth}
}

// DrawLines draws the box and as many lines as fit, top to bottom.
func (p *Panel) DrawLines(screen *ebiten.Image, lines []string, clr color.Color) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.W, p.H, config.PanelColor, true)
	vector.StrokeRect(screen, p.X, p.Y, p.W, p.H, config.StrokeWidth, config.RunningStateColor, true)

	x := int(p.X) + panelPadding
	y := int(p.Y) + panelPadding + config.TextLineHeight
	text.Draw(screen, p.Title, p.fontFace, x, y, config.SelectedColor)
	y += config.TextLineHeight + 4

	for _, line := range lines {
		if float32(y) > p.Y+p.H-panelPadding {
			break
		}
		text.Draw(screen, utils.Truncate(line, p.maxChars), p.fontFace, x, y, clr)
		y += config.TextLineHeight
	}
}

// InfoPanel shows the wallet, level and phase.
type InfoPanel struct {
	*Panel
}

func NewInfoPanel(x, y, w, h float32, face font.Face) *InfoPanel {
	return &InfoPanel{Panel: NewPanel(x, y, w, h, "Brainrot TD", face)}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	p.DrawLines(screen, render.InfoLines(snap), config.TextLightColor)
}
