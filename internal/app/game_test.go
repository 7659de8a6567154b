package app

import (
	"errors"
	"reflect"
	"testing"

	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/event"
	"brainrot-td/internal/utils"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(nil, utils.NewPRNGService(42))
	g.InitGame()
	return g
}

func strongAlly() component.Ally {
	return component.Ally{
		Element:  component.Critical,
		Atk:      100,
		Range:    20,
		Level:    1,
		AtkSpeed: 0,
	}
}

func TestInitGame(t *testing.T) {
	g := newTestGame(t)

	if g.Phase() != component.PhaseInit {
		t.Fatalf("phase = %v, want Init", g.Phase())
	}
	if g.Coins() != config.StartingCoins {
		t.Errorf("coins = %d, want %d", g.Coins(), config.StartingCoins)
	}
	if n := len(g.world.Board.Pending); n != config.SpawnBatchSize {
		t.Errorf("pending = %d, want %d", n, config.SpawnBatchSize)
	}
	for _, p := range g.world.Board.Pending {
		if p.Delay < 0 || p.Delay > config.SpawnMaxDelay {
			t.Errorf("delay %d outside [0, %d]", p.Delay, config.SpawnMaxDelay)
		}
	}
	if g.ID == "" {
		t.Error("game has no id")
	}
}

func TestFirstUpdateOnlyStartsGame(t *testing.T) {
	g := newTestGame(t)
	before := g.world.Board.Clone()

	g.Update()

	if g.Phase() != component.PhaseRunning {
		t.Fatalf("phase = %v, want Running", g.Phase())
	}
	if g.Tick() != 0 {
		t.Errorf("tick = %d, want 0", g.Tick())
	}
	if !reflect.DeepEqual(before.Pending, g.world.Board.Pending) {
		t.Error("pending enemies changed on the start tick")
	}
}

func TestBuyTenAllies(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 10; i++ {
		if err := g.BuyAlly(); err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
	}
	if g.Coins() != 0 {
		t.Errorf("coins = %d, want 0", g.Coins())
	}
	if n := g.world.Board.OccupiedCount(); n != 10 {
		t.Errorf("occupied = %d, want 10", n)
	}

	before := g.world.Board.Clone()
	if err := g.BuyAlly(); !errors.Is(err, ErrNotEnoughCoins) {
		t.Fatalf("err = %v, want ErrNotEnoughCoins", err)
	}
	if g.Coins() != 0 || !reflect.DeepEqual(before, g.world.Board.Clone()) {
		t.Error("rejected purchase changed the game")
	}
}

func TestBuyAllyBoardFull(t *testing.T) {
	g := newTestGame(t)
	g.world.Player.Coins = 1000

	for i := 0; i < config.GridRows*config.GridCols; i++ {
		if err := g.BuyAlly(); err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
	}
	coins := g.Coins()
	if err := g.BuyAlly(); !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want ErrBoardFull", err)
	}
	if g.Coins() != coins {
		t.Errorf("coins = %d, want %d", g.Coins(), coins)
	}
}

func TestBoughtAllyUsesTuning(t *testing.T) {
	g := newTestGame(t)
	if err := g.BuyAlly(); err != nil {
		t.Fatal(err)
	}
	var found bool
	for r := 0; r < config.GridRows; r++ {
		for c := 0; c < config.GridCols; c++ {
			a, ok := g.AllyAt(component.Coord{Row: r, Col: c})
			if !ok {
				continue
			}
			found = true
			want := g.Tuning.NewAlly(a.Element)
			if a != want {
				t.Errorf("ally = %+v, want %+v", a, want)
			}
		}
	}
	if !found {
		t.Fatal("no ally placed")
	}
}

func TestStrongAlliesWin(t *testing.T) {
	g := newTestGame(t)
	for r := 0; r < config.GridRows; r++ {
		for c := 0; c < config.GridCols; c++ {
			g.world.Board.Slot(component.Coord{Row: r, Col: c}).Put(strongAlly())
		}
	}

	var ended []event.Event
	g.EventDispatcher.Subscribe(event.GameEnded, event.ListenerFunc(func(e event.Event) {
		ended = append(ended, e)
	}))

	prev := g.world.EnemiesLeft()
	for i := 0; i < 400 && g.Phase() != component.PhaseEnd; i++ {
		g.Update()
		left := g.world.EnemiesLeft()
		if left > prev {
			t.Fatalf("tick %d: enemies grew from %d to %d", g.Tick(), prev, left)
		}
		prev = left
	}

	if g.Phase() != component.PhaseEnd {
		t.Fatalf("phase = %v after 400 ticks, want End", g.Phase())
	}
	want := config.StartingCoins + config.SpawnBatchSize*config.KillReward
	if g.Coins() != want {
		t.Errorf("coins = %d, want %d", g.Coins(), want)
	}
	if len(ended) != 1 {
		t.Errorf("GameEnded dispatched %d times, want 1", len(ended))
	}

	tick := g.Tick()
	g.Update()
	if g.Tick() != tick {
		t.Error("ended game kept ticking")
	}
}

func TestNoAlliesNeverEnds(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 600; i++ {
		g.Update()
		for _, e := range g.world.Board.Enemies {
			if e.Position < 0 || e.Position >= config.PathLength {
				t.Fatalf("position %v outside the path", e.Position)
			}
			if e.HP != config.EnemyHealth {
				t.Fatalf("hp = %d without allies", e.HP)
			}
		}
	}
	if g.Phase() != component.PhaseRunning {
		t.Errorf("phase = %v, want Running", g.Phase())
	}
	if n := len(g.world.Board.Enemies); n != config.SpawnBatchSize {
		t.Errorf("enemies = %d, want %d", n, config.SpawnBatchSize)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	if err := g.BuyAlly(); err != nil {
		t.Fatal(err)
	}
	g.Update()

	snap := g.Snapshot()
	snap.Board.Pending = nil
	snap.Board.Enemies = append(snap.Board.Enemies, component.NewEnemy())
	for r := range snap.Board.Allies {
		for c := range snap.Board.Allies[r] {
			snap.Board.Allies[r][c].Take()
		}
	}

	if g.world.Board.OccupiedCount() != 1 {
		t.Error("clearing the snapshot board removed a real ally")
	}
	if len(g.world.Board.Pending) != config.SpawnBatchSize {
		t.Error("snapshot shares pending enemies with the game")
	}
	if len(g.world.Board.Enemies) != 0 {
		t.Error("snapshot shares enemies with the game")
	}
}

func TestEventLogRecordsPurchases(t *testing.T) {
	g := newTestGame(t)
	if err := g.BuyAlly(); err != nil {
		t.Fatal(err)
	}
	recent := g.Events.Recent(1)
	if len(recent) != 1 || recent[0].Type != event.AllyBought {
		t.Fatalf("recent = %+v, want one AllyBought", recent)
	}
	if lines := g.Snapshot().Events; len(lines) != g.Events.Len() {
		t.Errorf("snapshot has %d lines, log has %d", len(lines), g.Events.Len())
	}
}

func TestSnapshotFrameCounts(t *testing.T) {
	g := newTestGame(t)
	g.world.Board.Enemies = []component.Enemy{
		{HP: 1, Position: 0.5},
		{HP: 1, Position: 0.9},
		{HP: 1, Position: 9.0},
		{HP: 1, Position: 23.5},
	}

	snap := g.Snapshot()
	counts := snap.FrameCounts()

	if counts[0][0] != 2 {
		t.Errorf("top-left = %d, want 2", counts[0][0])
	}
	if counts[1][8] != 1 {
		t.Errorf("right column first cell = %d, want 1", counts[1][8])
	}
	if counts[1][0] != 1 {
		t.Errorf("left column last cell = %d, want 1", counts[1][0])
	}
	if snap.EnemiesLeft() != 4+config.SpawnBatchSize {
		t.Errorf("enemies left = %d", snap.EnemiesLeft())
	}
}
