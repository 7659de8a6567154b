// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"brainrot-td/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок с цветом текущей фазы. Пульсирует при смене фазы.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	lastPhase  component.Phase
	changeTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase, stateColor color.RGBA) {
	if phase != i.lastPhase {
		i.lastPhase = phase
		i.changeTime = time.Now()
	}
	elapsed := time.Since(i.changeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}
