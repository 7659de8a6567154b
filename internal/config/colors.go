package config

import "image/color"

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	CellColor       = color.RGBA{45, 45, 60, 255}
	PathCellColor   = color.RGBA{70, 100, 120, 220}
	CellStrokeColor = color.RGBA{110, 110, 130, 255}
	CursorColor     = color.RGBA{220, 60, 220, 255}
	SelectedColor   = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	PanelColor      = color.RGBA{30, 30, 45, 230}

	InitStateColor    = color.RGBA{128, 128, 128, 255}
	RunningStateColor = color.RGBA{70, 130, 180, 220}
	PauseStateColor   = color.RGBA{194, 178, 128, 255}
	EndStateColor     = color.RGBA{50, 205, 50, 255}

	// Цвета стихий, в порядке Basic, Slow, Aoe, Dot, Critical.
	ElementColors = []color.RGBA{
		{240, 240, 240, 255}, // Basic — белый
		{135, 206, 250, 255}, // Slow — голубой
		{255, 120, 120, 255}, // Aoe — красный
		{144, 238, 144, 255}, // Dot — зелёный
		{255, 215, 0, 255},   // Critical — жёлтый
	}
)
