package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rungun/internal/core"
	"github.com/vovakirdan/tui-rungun/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window. The window reads real key releases,
so movement stops the moment a key is let go.

Controls:
  A/D, Left/Right  - Move
  W/Space/Up       - Jump
  J/K              - Shoot
  P                - Pause
  R                - Restart
  Q/Esc            - Quit

Examples:
  rungun window
  rungun window --difficulty easy --fps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger("rungun-window")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := gui.Run(gui.Options{
		Config:     gameCfg,
		Difficulty: preset,
		Runtime:    core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Store:      store,
		Logger:     logger,
		Player:     playerName(),
	})

	if store != nil {
		store.Close()
	}
	logCloser.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
