// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/defs"
	"brainrot-td/internal/entity"
	"brainrot-td/internal/event"
	"brainrot-td/internal/system"
	"brainrot-td/internal/utils"

	"github.com/google/uuid"
)

// Game holds the main game state and logic. It has exactly one owner: the
// loop that calls Update and the input handlers, never concurrently.
type Game struct {
	ID              string
	Tuning          *defs.Tuning
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Events          *event.Log

	world              *entity.World
	spawnSystem        *system.SpawnSystem
	combatSystem       *system.CombatSystem
	statusEffectSystem *system.StatusEffectSystem
	movementSystem     *system.MovementSystem
	cleanupSystem      *system.CleanupSystem
	playerSystem       *system.PlayerSystem
	stateSystem        *system.StateSystem

	cursor       component.Coord
	selected     component.Coord
	hasSelection bool
}

// NewGame creates a game in the Init phase with an empty board. Nil tuning
// means the built-in defaults; a nil rng is seeded from the clock.
func NewGame(tuning *defs.Tuning, rng *utils.PRNGService) *Game {
	if tuning == nil {
		tuning = defs.DefaultTuning()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ID:              uuid.New().String(),
		Tuning:          tuning,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		Events:          event.NewLog(config.EventLogCapacity),

		world:              world,
		spawnSystem:        system.NewSpawnSystem(world, rng, eventDispatcher),
		combatSystem:       system.NewCombatSystem(world),
		statusEffectSystem: system.NewStatusEffectSystem(world),
		movementSystem:     system.NewMovementSystem(world),
		cleanupSystem:      system.NewCleanupSystem(world, eventDispatcher),
		playerSystem:       system.NewPlayerSystem(world),
		stateSystem:        system.NewStateSystem(world, eventDispatcher),
	}

	eventDispatcher.Subscribe(event.EnemyKilled, g.playerSystem)
	eventDispatcher.SubscribeAll(g.Events)
	eventDispatcher.SubscribeAll(event.ListenerFunc(g.logEvent))
	return g
}

// InitGame resets the board and wallet and queues the enemy batch. The game
// starts running on the next Update.
func (g *Game) InitGame() {
	g.world.Reset()
	g.world.Player.Coins = config.StartingCoins
	g.cursor = component.Coord{}
	g.selected = component.Coord{}
	g.hasSelection = false
	g.spawnSystem.StartBatch(config.SpawnBatchSize)

	log.Printf("[game %s] initialized, seed %d, level %d", g.shortID(), g.Rng.Seed(), g.world.Player.Level)
	g.dispatch(event.GameStarted, fmt.Sprintf("level %d started", g.world.Player.Level), nil)
}

// Update advances the game by one fixed 1/60s tick.
func (g *Game) Update() {
	switch g.world.Phase {
	case component.PhaseInit:
		g.stateSystem.Start()
	case component.PhaseRunning:
		g.world.Tick++
		g.combatSystem.Update()
		g.spawnSystem.Update()
		g.movementSystem.Update(g.statusEffectSystem.Update())
		g.cleanupSystem.Update()
		g.stateSystem.CheckVictory()
	case component.PhasePause, component.PhaseEnd:
		// Nothing to simulate.
	}
}

func (g *Game) Phase() component.Phase {
	return g.world.Phase
}

func (g *Game) Coins() int {
	return g.world.Player.Coins
}

func (g *Game) Level() int {
	return g.world.Player.Level
}

func (g *Game) Tick() uint64 {
	return g.world.Tick
}

func (g *Game) Cursor() component.Coord {
	return g.cursor
}

// Selection returns the selected cell, if any.
func (g *Game) Selection() (component.Coord, bool) {
	return g.selected, g.hasSelection
}

func (g *Game) dispatch(t event.EventType, msg string, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{
		Type:    t,
		Tick:    g.world.Tick,
		Message: msg,
		Data:    data,
	})
}

func (g *Game) logEvent(e event.Event) {
	if e.Type == event.EnemySpawned {
		return
	}
	msg := e.Message
	if msg == "" {
		msg = string(e.Type)
	}
	log.Printf("[game %s] tick %d: %s", g.shortID(), e.Tick, msg)
}

func (g *Game) shortID() string {
	if len(g.ID) < 8 {
		return g.ID
	}
	return g.ID[:8]
}
