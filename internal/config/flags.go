package config

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// Flags are the command-line options shared by both frontends.
type Flags struct {
	TuningPath string
	Seed       int64
	LogPath    string
	Mute       bool
}

// ParseFlags parses args (without the program name). logDefault is where
// log output goes unless -log says otherwise; empty means stderr.
func ParseFlags(name string, args []string, logDefault string) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.TuningPath, "config", "assets/tuning.yaml", "ally tuning file (YAML or JSON); empty for built-in defaults")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed; 0 seeds from the clock")
	fs.StringVar(&f.LogPath, "log", logDefault, "log file; empty for stderr")
	fs.BoolVar(&f.Mute, "mute", false, "disable sound")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	if fs.NArg() > 0 {
		return Flags{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f, nil
}

// RedirectLog sends the standard logger to path (appending) and returns the
// closer. An empty path leaves stderr in place.
func RedirectLog(path string) (io.Closer, error) {
	if path == "" {
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
