package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfall/internal/audio"
	"github.com/vovakirdan/brickfall/internal/audio/output"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/platform/tui"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. Without a level a picker menu is shown and you
return to it after each run.

Controls (defaults, see 'brickfall keys'):
  Left/Right  - Move paddle
  Space       - Serve
  P/Esc       - Pause
  R           - Restart (after the run ends)
  B           - Back to the level menu (when paused or finished)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower ball, faster paddle, half points
  normal - Configured speeds
  hard   - Faster ball, double points

Examples:
  brickfall play
  brickfall play classic
  brickfall play debug --difficulty hard --mute
  brickfall play checker --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.HoldTicks, "Ticks a key stays pressed after its last event")
}

func runPlay(_ *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Check the config before taking over the terminal
	if _, err := gameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := startAudio()
	if player != nil {
		defer output.Stop()
	}

	// Log lines would tear the alternate screen
	if f := redirectLog(); f != nil {
		defer f.Close()
	}

	if len(args) == 1 {
		if _, err := playLevel(args[0], cfg, store, player, false); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return
		case menuResult.WantsScoreboard:
			if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, ""); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		back, err := playLevel(menuResult.LevelID, cfg, store, player, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !back {
			return
		}
	}
}

// playLevel runs one level. Returns true if the player went back to the menu.
func playLevel(levelID string, cfg core.RuntimeConfig, store *storage.Store, player *audio.Player, fromMenu bool) (bool, error) {
	opts, err := gameOptions(levelID)
	if err != nil {
		return false, err
	}

	game := breakout.New(opts)
	logger.Debug("starting run", "level", game.ID(), "fps", cfg.TickRate)

	return tui.Run(game, cfg, tui.ModelOptions{
		Store:     store,
		Audio:     player,
		Logger:    logger,
		HoldTicks: flagHoldTicks,
		AllowBack: fromMenu,
	})
}

// startAudio opens the speaker. Failure leaves the game silent.
func startAudio() *audio.Player {
	cfg, err := gameConfig()
	if err != nil || !cfg.Audio.Enabled {
		return nil
	}
	player := audio.NewPlayer(cfg.Audio)
	if err := output.Start(player); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}
	return player
}

// redirectLog sends log output to ~/.brickfall/brickfall.log while the TUI
// owns the terminal.
func redirectLog() *os.File {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".brickfall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "brickfall.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("could not open log file", "error", err)
		return nil
	}
	logger.SetOutput(f)
	return f
}
