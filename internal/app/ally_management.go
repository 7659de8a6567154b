// internal/app/ally_management.go
package app

import (
	"errors"
	"fmt"

	"brainrot-td/internal/component"
	"brainrot-td/internal/config"
	"brainrot-td/internal/event"
)

var (
	// ErrNotEnoughCoins rejects a purchase; nothing changes.
	ErrNotEnoughCoins = errors.New("not enough coins")
	// ErrBoardFull rejects a purchase when no cell is free; nothing changes.
	ErrBoardFull = errors.New("no free cell on the board")
)

// BuyAlly spends AllyCost coins on a random ally placed on a random free cell.
func (g *Game) BuyAlly() error {
	if g.world.Player.Coins < config.AllyCost {
		return g.rejectPurchase(ErrNotEnoughCoins)
	}
	empty := g.world.Board.EmptyCells()
	if len(empty) == 0 {
		return g.rejectPurchase(ErrBoardFull)
	}
	if !g.playerSystem.Spend(config.AllyCost) {
		return g.rejectPurchase(ErrNotEnoughCoins)
	}

	element := g.Rng.ChooseWeighted(g.Tuning.LootTable())
	cell := empty[g.Rng.Intn(len(empty))]
	ally := g.Tuning.NewAlly(element)
	g.world.Board.Slot(cell).Put(ally)

	g.dispatch(event.AllyBought,
		fmt.Sprintf("bought %s at (%d,%d), %d coins left", ally.Name(), cell.Row, cell.Col, g.world.Player.Coins),
		cell)
	return nil
}

func (g *Game) rejectPurchase(err error) error {
	g.dispatch(event.PurchaseRejected, "purchase rejected: "+err.Error(), nil)
	return err
}

// AllyAt returns a copy of the ally at c.
func (g *Game) AllyAt(c component.Coord) (component.Ally, bool) {
	return g.world.Board.Slot(c).Get()
}
