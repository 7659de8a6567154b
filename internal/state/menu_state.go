// internal/state/menu_state.go
package state

import (
	"brainrot-td/internal/app"
	"brainrot-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm       *StateMachine
	session  *app.Session
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, session *app.Session, face font.Face) *MenuState {
	return &MenuState{sm: sm, session: session, fontFace: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	if enterPressed() {
		_ = m.session.Handle(app.Command{Kind: app.CmdStartGame})
		m.sm.SetState(NewGameState(m.sm, m.session, m.fontFace))
	}
	return nil
}

var menuLines = []string{
	"BRAINROT TOWER DEFENSE",
	"",
	"enter  start",
	"arrows move the cursor",
	"enter  pick up / drop an ally",
	"space  buy an ally",
	"q/esc  quit",
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	y := config.ScreenHeight / 3
	for i, line := range menuLines {
		b := text.BoundString(m.fontFace, line)
		clr := config.TextLightColor
		if i == 0 {
			clr = config.SelectedColor
		}
		text.Draw(screen, line, m.fontFace, (config.ScreenWidth-b.Dx())/2, y, clr)
		y += config.TextLineHeight * 2
	}
}

func (m *MenuState) Exit() {}
