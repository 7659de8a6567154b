package ui

import (
	"brainrot-td/internal/app"
	"brainrot-td/internal/config"
	"brainrot-td/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// EventPanel shows the newest events at the bottom.
type EventPanel struct {
	*Panel
	rows int
}

func NewEventPanel(x, y, w, h float32, face font.Face) *EventPanel {
	rows := int(h)/config.TextLineHeight - 2
	if rows < 1 {
		rows = 1
	}
	return &EventPanel{Panel: NewPanel(x, y, w, h, "Events", face), rows: rows}
}

func (p *EventPanel) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	p.DrawLines(screen, render.Tail(snap.Events, p.rows), config.TextLightColor)
}
