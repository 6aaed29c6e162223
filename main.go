package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tama/internal/config"
	"tama/internal/save"
	"tama/internal/sim"
	"tama/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad configuration: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal; keep log chatter off the screen.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	saveDir := cfg.SaveDir
	if saveDir == "" {
		saveDir, err = save.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot locate save directory: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := save.NewStore(saveDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open save directory: %v\n", err)
		os.Exit(1)
	}

	now := sim.TimeNow()
	stats, clock := store.Load(now)
	engine := sim.New(stats, clock, store)

	model := ui.NewModel(engine, store, cfg.TickRate)
	program := tea.NewProgram(model, tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
