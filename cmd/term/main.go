// cmd/term/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"brainrot-td/internal/app"
	"brainrot-td/internal/config"
	"brainrot-td/internal/defs"
	"brainrot-td/internal/term"
	"brainrot-td/internal/utils"

	"github.com/gdamore/tcell/v2"
)

func main() {
	flags, err := config.ParseFlags("term", os.Args[1:], "brainrot-td.log")
	if err != nil {
		os.Exit(2)
	}
	// Лог в файл, иначе он ломает экран.
	logFile, err := config.RedirectLog(flags.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(flags); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(flags config.Flags) error {
	tuning := defs.LoadTuningOrDefault(flags.TuningPath)
	session := app.NewSession(tuning, utils.NewPRNGService(flags.Seed))

	if !flags.Mute {
		sound := term.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sound.Cleanup()
			session.Subscribe(sound)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx, screen, session); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
