package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rungun/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from an interactive menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a difficulty.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Tab          - Run history
  Q            - Quit

Examples:
  rungun menu
  rungun menu --fps 30
  rungun menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a run log to this file")
	menuCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log per-frame debug events")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, _, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger("rungun")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalRuntime()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if err := tui.Run(tui.Options{
			Config:     gameCfg,
			Difficulty: menuResult.Difficulty,
			Runtime:    cfg,
			Store:      store,
			Logger:     logger,
			Player:     player,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// A fresh seed for the next run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = 0
		}
	}
}
