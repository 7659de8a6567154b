// internal/term/loop.go
package term

import (
	"context"
	"time"

	"brainrot-td/internal/app"
	"brainrot-td/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Run owns the session until the player quits or ctx ends. Key events are
// decoded on a polling goroutine and funnelled through a channel into this
// loop, which is the only code that touches the session.
func Run(ctx context.Context, screen tcell.Screen, session *app.Session) error {
	inputs := make(chan Input, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			in, ok := DecodeEvent(ev)
			if !ok {
				continue
			}
			select {
			case inputs <- in:
			case <-done:
				return
			}
		}
	}()

	renderer := NewRenderer(screen)
	ticker := time.NewTicker(time.Second / config.TicksPerSec)
	defer ticker.Stop()

	draw := func() {
		if snap, ok := session.Snapshot(); ok {
			renderer.Draw(&snap)
		} else {
			renderer.DrawMenu()
		}
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in := <-inputs:
			switch in.Kind {
			case InputQuit:
				return nil
			case InputResize:
				screen.Sync()
			default:
				for _, cmd := range Commands(in, session) {
					// Отказы в покупке уже в журнале событий.
					_ = session.Handle(cmd)
				}
			}
			draw()

		case <-ticker.C:
			session.Tick()
			draw()
		}
	}
}
