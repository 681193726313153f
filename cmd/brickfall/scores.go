package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfall/internal/levels"
	"github.com/vovakirdan/brickfall/internal/platform/tui"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var (
	flagLimit      int
	flagClear      bool
	flagScoreboard bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best runs for a level",
	Long: `Display the top runs for the specified level (default: debug).

Examples:
  brickfall scores
  brickfall scores classic --limit 20
  brickfall scores --tui
  brickfall scores checker --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every run of the level")
	scoresCmd.Flags().BoolVar(&flagScoreboard, "tui", false, "Browse all levels in an interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := levels.DefaultLevel
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoreboard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height, levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagClear {
		if err := store.ClearRuns(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s\n", levelID)
		return
	}

	title := levelID
	if l, err := levels.Get(levelID); err == nil {
		title = l.Title
	}

	runs, err := store.TopRuns(levelID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickfall play %s' to set the first high score!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %-8s  %s\n", "Rank", "Score", "Bricks", "Collisions", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "------", "----------", "------", "----")

	for i, r := range runs {
		result := "lost"
		if r.Cleared {
			result = "cleared"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-10d  %-8s  %s\n",
			i+1, r.Score, r.BricksDestroyed, r.Collisions, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.LevelStats(levelID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Clears: %d  Average: %.1f\n",
			stats.HighScore, stats.Runs, stats.Clears, stats.AvgScore)
	}
}
