package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rungun/internal/core"
	"github.com/vovakirdan/tui-rungun/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  A/D, Left/Right  - Move (held keys repeat; release stops after a moment)
  W/Space/Up       - Jump
  J                - Shoot
  P                - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower, weaker grunts, less frequent spawns
  normal - The standard game
  hard   - Faster, tougher grunts, more frequent spawns

Examples:
  rungun play
  rungun play --difficulty hard
  rungun play --config ./my-rungun.yaml
  rungun play --log ./rungun.log --verbose`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by the local game hosts.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLogPath, "log", "", "Write a run log to this file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log per-frame debug events")
}

// terminalRuntime builds a runtime config sized to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger("rungun")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(tui.Options{
		Config:     gameCfg,
		Difficulty: preset,
		Runtime:    terminalRuntime(),
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
