// cmd/game/main.go
package main

import (
	"log"
	"os"

	"brainrot-td/internal/app"
	"brainrot-td/internal/config"
	"brainrot-td/internal/defs"
	"brainrot-td/internal/state"
	"brainrot-td/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update вызывается ebiten с фиксированной частотой TicksPerSec.
func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flags, err := config.ParseFlags("game", os.Args[1:], "")
	if err != nil {
		os.Exit(2)
	}
	logFile, err := config.RedirectLog(flags.LogPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	tuning := defs.LoadTuningOrDefault(flags.TuningPath)
	session := app.NewSession(tuning, utils.NewPRNGService(flags.Seed))

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session, basicfont.Face7x13))

	ebiten.SetTPS(config.TicksPerSec)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Brainrot Tower Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
