// rungun is a side-scrolling run-and-gun game for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	rungun play              - Play in the terminal
//	rungun menu              - Pick a difficulty interactively
//	rungun window            - Play in a desktop window
//	rungun serve             - Start SSH server for remote play
//	rungun scores [mode]     - Show top runs for a difficulty
//	rungun history           - Browse the run history
//	rungun config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.rungun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rungun",
	Short: "Run & Gun - a side-scrolling shooter in your terminal",
	Long: `Run & Gun is a side-scrolling action game. Run right, jump, and shoot
the grunts that keep coming from ahead.

Available commands:
  play     - Play in the terminal
  menu     - Interactive difficulty picker and run history
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View top runs
  history  - Browse the run history
  config   - Print the default game config

Examples:
  rungun play
  rungun play --difficulty hard
  rungun window --log ./rungun.log
  rungun serve --ssh :2222
  rungun scores normal`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rungun/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
