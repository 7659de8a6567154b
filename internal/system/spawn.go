// internal/system/spawn.go
package system

import (
	"fmt"
	"log"

	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/entity"
	"brainrot-td/internal/event"
	"brainrot-td/internal/utils"
)

// SpawnSystem owns the pending queue: each entry counts down in ticks and is
// moved to the active enemies on the tick its countdown reaches zero.
type SpawnSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// StartBatch enqueues count baseline enemies, each with an independent delay
// in [0, SpawnMaxDelay] ticks.
func (s *SpawnSystem) StartBatch(count int) {
	board := s.world.Board
	for i := 0; i < count; i++ {
		board.Pending = append(board.Pending, component.PendingEnemy{
			Enemy: component.NewEnemy(),
			Delay: s.rng.IntInclusive(0, config.SpawnMaxDelay),
		})
	}
	log.Printf("SpawnSystem: queued %d enemies", count)
}

func (s *SpawnSystem) Update() {
	board := s.world.Board
	kept := board.Pending[:0]
	for i, p := range board.Pending {
		if p.Delay > 0 {
			p.Delay--
		}
		if p.Delay == 0 {
			board.Enemies = append(board.Enemies, p.Enemy)
			s.eventDispatcher.Dispatch(event.Event{
				Type:    event.EnemySpawned,
				Tick:    s.world.Tick,
				Message: fmt.Sprintf("enemy spawned, %d still queued", len(kept)+len(board.Pending)-i-1),
			})
			continue
		}
		kept = append(kept, p)
	}
	// Хвост старого массива больше не нужен.
	for i := len(kept); i < len(board.Pending); i++ {
		board.Pending[i] = component.PendingEnemy{}
	}
	board.Pending = kept
}
