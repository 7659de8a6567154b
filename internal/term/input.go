package term

import (
	"brainrot-td/internal/app"
	"brainrot-td/internal/component"

	"github.com/gdamore/tcell/v2"
)

// InputKind is a key press with the game's meaning but not yet bound to a
// command; Enter means start or toggle depending on the session.
type InputKind int

const (
	InputMove InputKind = iota
	InputEnter
	InputBuy
	InputQuit
	InputResize
)

type Input struct {
	Kind InputKind
	Dir  app.Direction
}

// DecodeEvent maps a tcell event to an input. Unknown keys are dropped.
func DecodeEvent(ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Input{Kind: InputResize}, true
	case *tcell.EventKey:
		return decodeKey(ev)
	}
	return Input{}, false
}

func decodeKey(ev *tcell.EventKey) (Input, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return Input{Kind: InputMove, Dir: app.Up}, true
	case tcell.KeyDown:
		return Input{Kind: InputMove, Dir: app.Down}, true
	case tcell.KeyLeft:
		return Input{Kind: InputMove, Dir: app.Left}, true
	case tcell.KeyRight:
		return Input{Kind: InputMove, Dir: app.Right}, true
	case tcell.KeyEnter:
		return Input{Kind: InputEnter}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Kind: InputQuit}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return Input{Kind: InputBuy}, true
		case 'q', 'Q':
			return Input{Kind: InputQuit}, true
		case 'k':
			return Input{Kind: InputMove, Dir: app.Up}, true
		case 'j':
			return Input{Kind: InputMove, Dir: app.Down}, true
		case 'h':
			return Input{Kind: InputMove, Dir: app.Left}, true
		case 'l':
			return Input{Kind: InputMove, Dir: app.Right}, true
		}
	}
	return Input{}, false
}

// Commands binds an input to session commands. Inputs that make no sense in
// the current mode produce nothing, so the session never sees a gameplay
// command without a game.
func Commands(in Input, s *app.Session) []app.Command {
	snap, inGame := s.Snapshot()
	switch in.Kind {
	case InputEnter:
		if !inGame || snap.Phase == component.PhaseEnd {
			return []app.Command{{Kind: app.CmdStartGame}}
		}
		return []app.Command{{Kind: app.CmdToggleSelection}}
	case InputMove:
		if inGame {
			return []app.Command{{Kind: app.CmdMoveCursor, Dir: in.Dir}}
		}
	case InputBuy:
		if inGame {
			return []app.Command{{Kind: app.CmdBuyAlly}}
		}
	}
	return nil
}
