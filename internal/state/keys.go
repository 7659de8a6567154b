package state

import (
	"brainrot-td/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = []struct {
	key ebiten.Key
	dir app.Direction
}{
	{ebiten.KeyArrowUp, app.Up},
	{ebiten.KeyArrowDown, app.Down},
	{ebiten.KeyArrowLeft, app.Left},
	{ebiten.KeyArrowRight, app.Right},
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func enterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}
