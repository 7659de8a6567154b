package app

import (
	"fmt"
	"log"

	"brainrot-td/internal/component"
	"brainrot-td/internal/defs"
	"brainrot-td/internal/event"
	"brainrot-td/internal/utils"
)

// Mode is the top-level screen of a session.
type Mode int

const (
	ModeMenu Mode = iota
	ModeInGame
)

func (m Mode) String() string {
	if m == ModeInGame {
		return "in-game"
	}
	return "menu"
}

// CommandKind names a player command.
type CommandKind int

const (
	CmdStartGame CommandKind = iota
	CmdMoveCursor
	CmdToggleSelection
	CmdBuyAlly
)

func (k CommandKind) String() string {
	switch k {
	case CmdStartGame:
		return "StartGame"
	case CmdMoveCursor:
		return "MoveCursor"
	case CmdToggleSelection:
		return "ToggleSelection"
	case CmdBuyAlly:
		return "BuyAlly"
	default:
		return fmt.Sprintf("Command(%d)", int(k))
	}
}

// Command is a decoded input. Dir is only read for CmdMoveCursor.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// Session owns at most one Game and routes commands to it. Frontends feed it
// commands and ticks from a single goroutine.
type Session struct {
	tuning    *defs.Tuning
	rng       *utils.PRNGService
	mode      Mode
	game      *Game
	listeners []event.Listener
}

func NewSession(tuning *defs.Tuning, rng *utils.PRNGService) *Session {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Session{tuning: tuning, rng: rng, mode: ModeMenu}
}

// Subscribe attaches l to every event of every game this session starts,
// including the current one.
func (s *Session) Subscribe(l event.Listener) {
	s.listeners = append(s.listeners, l)
	if s.game != nil {
		s.game.EventDispatcher.SubscribeAll(l)
	}
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Snapshot returns the current game's state, or false when no game exists.
func (s *Session) Snapshot() (Snapshot, bool) {
	if s.game == nil {
		return Snapshot{}, false
	}
	return s.game.Snapshot(), true
}

// Tick advances the current game, if any.
func (s *Session) Tick() {
	if s.game != nil {
		s.game.Update()
	}
}

// Handle applies one command. Only a rejected purchase is reported as an
// error; gameplay commands without a game and StartGame during a running
// game are programming errors and panic.
func (s *Session) Handle(cmd Command) error {
	if cmd.Kind == CmdStartGame {
		s.startGame()
		return nil
	}
	if s.game == nil {
		panic(fmt.Sprintf("app: %s with no active game", cmd.Kind))
	}

	switch cmd.Kind {
	case CmdMoveCursor:
		s.game.MoveCursor(cmd.Dir)
	case CmdToggleSelection:
		s.game.ToggleSelection()
	case CmdBuyAlly:
		if err := s.game.BuyAlly(); err != nil {
			log.Printf("[game %s] %v", s.game.shortID(), err)
			return err
		}
	default:
		panic(fmt.Sprintf("app: unknown command %s", cmd.Kind))
	}
	return nil
}

func (s *Session) startGame() {
	level := 1
	if s.game != nil {
		if s.game.Phase() != component.PhaseEnd {
			panic("app: StartGame while a game is running")
		}
		// Уровень растёт только после победы.
		level = s.game.Level() + 1
	}

	g := NewGame(s.tuning, s.rng)
	g.world.Player.Level = level
	for _, l := range s.listeners {
		g.EventDispatcher.SubscribeAll(l)
	}
	g.InitGame()
	s.game = g
	s.mode = ModeInGame
}
