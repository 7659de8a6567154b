package ui

import (
	"brainrot-td/internal/app"
	"brainrot-td/internal/config"
	"brainrot-td/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// MergePanel shows the hovered/selected ally and the merge result.
type MergePanel struct {
	*Panel
}

func NewMergePanel(x, y, w, h float32, face font.Face) *MergePanel {
	return &MergePanel{Panel: NewPanel(x, y, w, h, "Merge", face)}
}

func (p *MergePanel) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	p.DrawLines(screen, render.MergeLines(snap.Preview), config.TextLightColor)
}
