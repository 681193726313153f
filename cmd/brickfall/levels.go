package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/levels"
)

var flagShowTiles bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows every built-in level plus those loaded from --levels-dir.

Level files are YAML:

  id: tunnel
  name: Tunnel
  rows:
    - "1111111111111"
    - "1...........1"
    - "2222222222222"

'1' is a normal brick, '2' a multi-hit brick, '0' or '.' is empty.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowTiles, "tiles", false, "Print each level's tile sheet")
}

func runLevels(_ *cobra.Command, _ []string) {
	list := levels.List()

	if len(list) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range list {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "ID", "Bricks", "Title")
	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, info := range list {
		fmt.Printf("  %-*s  %6d  %s\n", maxIDLen, info.ID, info.Bricks, info.Title)
		if !flagShowTiles {
			continue
		}
		l, err := levels.Get(info.ID)
		if err != nil {
			continue
		}
		for _, row := range l.TileRows() {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", row)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Run 'brickfall play <id>' to play a level.")
}
