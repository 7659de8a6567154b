// pkg/render/color.go
package render

import (
	"image/color"

	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
)

// ElementColor returns the display color of an element. NoElement is gray.
func ElementColor(e component.Element) color.RGBA {
	if !e.Valid() {
		return color.RGBA{128, 128, 128, 255}
	}
	return config.ElementColors[e.Index()]
}

// AllyColors returns the fill colors of an ally: the primary element and,
// for hybrids, the secondary one. Non-hybrids repeat the primary.
func AllyColors(a component.Ally) (color.RGBA, color.RGBA) {
	primary := ElementColor(a.Element)
	if !a.HasSecond() {
		return primary, primary
	}
	return primary, ElementColor(a.SecondElement)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// PhaseColor returns the state indicator color of a phase.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.PhaseRunning:
		return config.RunningStateColor
	case component.PhasePause:
		return config.PauseStateColor
	case component.PhaseEnd:
		return config.EndStateColor
	default:
		return config.InitStateColor
	}
}
