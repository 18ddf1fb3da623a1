package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/config"
	"github.com/lixenwraith/maze3d/logger"
	"github.com/lixenwraith/maze3d/stats"
)

var (
	seedFlag    = flag.Int64("seed", 0, "Fixed maze seed (0 = random)")
	backendFlag = flag.String("stats-backend", "", "Score log backend: json or sqlite (overrides env)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *backendFlag != "" {
		cfg.StatsBackend = *backendFlag
	}

	log := logger.New(cfg.LogDir)
	defer log.Close()

	store, err := stats.Open(cfg.StatsBackend, cfg.StatsPath)
	if err != nil {
		// A corrupt JSON log still yields a usable store; anything without
		// one is fatal.
		if store == nil {
			fmt.Fprintf(os.Stderr, "Score log error: %v\n", err)
			os.Exit(1)
		}
		log.Warn("score log degraded: %v", err)
	}
	defer store.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: reset the terminal before the stack trace prints, or
	// the trace is unreadable in raw mode.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nMAZE3D CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	cues, err := audio.NewCues(cfg.AudioEnabled)
	if err != nil {
		log.Warn("audio initialization failed, continuing without sound: %v", err)
	}
	defer cues.Close()

	log.Info("maze3d starting, stats backend %s", cfg.StatsBackend)

	sh := newShell(screen, cfg, log, store, cues)
	sh.run()

	log.Info("maze3d exiting")
}
