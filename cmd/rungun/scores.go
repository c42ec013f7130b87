package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rungun/internal/config"
	"github.com/vovakirdan/tui-rungun/internal/platform/tui"
	"github.com/vovakirdan/tui-rungun/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [easy|normal|hard]",
	Short: "Show top runs for a difficulty",
	Long: `Display the best runs for a difficulty, ranked by kills and then
distance. Defaults to normal.

Examples:
  rungun scores
  rungun scores hard --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the run history",
	Long: `Open an interactive table of recorded runs.

Tab switches between the latest runs and the top runs of each difficulty.`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	difficulty := string(preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(difficulty, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Top Runs - %s\n", difficulty)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rungun play --difficulty %s' to set the first one!\n", difficulty)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-7s  %-12s  %s\n", "Rank", "Kills", "Distance", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-7s  %-12s  %s\n", "----", "-----", "--------", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-8.0f  %-7s  %-12s  %s\n",
			i+1, r.Kills, r.Distance, fmt.Sprintf("%.1fs", r.Duration), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	sum, err := store.Summarize(difficulty)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Farthest: %.0f\n",
			sum.Runs, sum.BestKills, sum.AvgKills, sum.Farthest)
	}
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
