// internal/state/game_state.go
package state

import (
	"brainrot-td/internal/app"
	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/ui"
	"brainrot-td/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// GameState — состояние игры: клавиши превращаются в команды сессии, каждый
// Update — ровно один тик.
type GameState struct {
	sm         *StateMachine
	session    *app.Session
	renderer   *ui.BoardRenderer
	indicator  *ui.StateIndicator
	infoPanel  *ui.InfoPanel
	mergePanel *ui.MergePanel
	eventPanel *ui.EventPanel
}

func NewGameState(sm *StateMachine, session *app.Session, face font.Face) *GameState {
	layout := render.DefaultLayout()
	panelX := layout.X + layout.Width() + config.BoardOffsetX
	panelW := float32(config.PanelWidth)
	infoH := float32(200)
	bottomY := layout.Y + layout.Height() + config.BoardOffsetX/2

	return &GameState{
		sm:        sm,
		session:   session,
		renderer:  ui.NewBoardRenderer(layout, face),
		indicator: ui.NewStateIndicator(float32(config.ScreenWidth-config.IndicatorOffsetX), float32(config.IndicatorOffsetX), float32(config.IndicatorRadius)),
		infoPanel: ui.NewInfoPanel(panelX, layout.Y, panelW, infoH, face),
		mergePanel: ui.NewMergePanel(panelX, layout.Y+infoH+config.BoardOffsetX/2, panelW,
			float32(config.ScreenHeight)-layout.Y-infoH-config.BoardOffsetX, face),
		eventPanel: ui.NewEventPanel(layout.X, bottomY, layout.Width(), float32(config.ScreenHeight)-bottomY-config.BoardOffsetX/2, face),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}

	snap, ok := g.session.Snapshot()
	if !ok {
		g.sm.SetState(NewMenuState(g.sm, g.session, g.renderer.FontFace()))
		return nil
	}

	for _, dk := range directionKeys {
		if inpututil.IsKeyJustPressed(dk.key) {
			_ = g.session.Handle(app.Command{Kind: app.CmdMoveCursor, Dir: dk.dir})
		}
	}
	if enterPressed() {
		if snap.Phase == component.PhaseEnd {
			_ = g.session.Handle(app.Command{Kind: app.CmdStartGame})
		} else {
			_ = g.session.Handle(app.Command{Kind: app.CmdToggleSelection})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		// Отказ уже записан в журнал событий.
		_ = g.session.Handle(app.Command{Kind: app.CmdBuyAlly})
	}

	g.session.Tick()
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap, ok := g.session.Snapshot()
	if !ok {
		return
	}
	g.renderer.Draw(screen, &snap)
	g.indicator.Draw(screen, snap.Phase, render.PhaseColor(snap.Phase))
	g.infoPanel.Draw(screen, &snap)
	g.mergePanel.Draw(screen, &snap)
	g.eventPanel.Draw(screen, &snap)
}

func (g *GameState) Exit() {}
