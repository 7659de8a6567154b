package render

import (
	"fmt"

	"brainrot-td/internal/app"
	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
)

// ShortID is the first eight characters of a game id.
func ShortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}

// InfoLines describes the game as plain lines.
func InfoLines(snap *app.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Game    %s", ShortID(snap.ID)),
		fmt.Sprintf("Level   %d", snap.Level),
		fmt.Sprintf("Phase   %s", snap.Phase),
		fmt.Sprintf("Coins   %d", snap.Coins),
		fmt.Sprintf("Enemies %d", snap.EnemiesLeft()),
		fmt.Sprintf("Tick    %d", snap.Tick),
		"",
		"arrows move  enter pick/drop",
		fmt.Sprintf("space buy (%d coins)", config.AllyCost),
		"q/esc quit",
	}
	if snap.Phase == component.PhaseEnd {
		lines = append(lines, "", "all enemies down!", "enter: next level")
	}
	return lines
}

// MergeLines describes a merge preview as plain lines.
func MergeLines(m app.MergePreview) []string {
	if !m.HasLeft {
		return []string{"empty cell"}
	}
	lines := AllyLines(m.Left)
	if !m.HasRight {
		return lines
	}
	lines = append(lines, "+")
	lines = append(lines, AllyLines(m.Right)...)
	if !m.CanMerge {
		return append(lines, "= cannot merge")
	}
	lines = append(lines, "=")
	return append(lines, AllyLines(m.Result)...)
}

// AllyLines describes one ally in two lines.
func AllyLines(a component.Ally) []string {
	elements := a.Element.String()
	if a.HasSecond() {
		elements += "/" + a.SecondElement.String()
	}
	return []string{
		fmt.Sprintf("%s lv%d (%s)", a.Name(), a.Level, elements),
		fmt.Sprintf(" atk %d rng %d aoe %d spd %.2f", a.Atk, a.Range, a.AoeRange, a.AtkSpeed),
	}
}

// Tail returns the last n lines.
func Tail(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
