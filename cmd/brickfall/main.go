// brickfall is a terminal breakout built on a fixed-timestep simulation core.
//
// Usage:
//
//	brickfall play [level]       - Play a level (level picker when omitted)
//	brickfall simulate [level]   - Run a headless deterministic simulation
//	brickfall levels             - List available levels
//	brickfall keys               - Show the effective keybindings
//	brickfall scores [level]     - Show the best runs for a level
//	brickfall serve              - Start SSH server for remote play
//	brickfall config             - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.brickfall/brickfall.db)
//	--keys <path>         - Keybindings TOML (default: ~/.brickfall/keybindings.toml)
//	--config <path>       - Custom breakout.yaml
//	--difficulty <name>   - easy, normal or hard
//	--levels-dir <path>   - Extra YAML levels (default: ~/.brickfall/levels)
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Disable sound
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/levels"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagKeys       string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
	flagMute       bool
)

// logger is shared by every subcommand and handed to the TUI and SSH server.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "brickfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfall",
	Short: "Brickfall - breakout in your terminal",
	Long: `Brickfall is a terminal breakout game driven by a fixed-timestep
simulation. Levels are tile sheets; extra levels can be loaded from YAML.

Available commands:
  play      - Play a level
  simulate  - Headless deterministic run
  levels    - Show all available levels
  keys      - Show or initialise keybindings
  scores    - View the best runs
  serve     - Start SSH server for remote play
  config    - Print the effective game config

Examples:
  brickfall play
  brickfall play classic --difficulty hard
  brickfall simulate debug --ticks 3600 --autopilot
  brickfall serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return loadLevelsDir()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagKeys, "keys", "", "Path to keybindings TOML (default ~/.brickfall/keybindings.toml)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of YAML levels (default ~/.brickfall/levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadLevelsDir registers YAML levels. An explicit --levels-dir must load;
// the default directory is optional.
func loadLevelsDir() error {
	dir := flagLevelsDir
	explicit := dir != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, ".brickfall", "levels")
	}

	ids, err := levels.LoadDir(dir)
	switch {
	case err == nil:
		logger.Debug("loaded levels", "dir", dir, "count", len(ids))
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	case explicit:
		return err
	default:
		logger.Warn("skipping levels directory", "dir", dir, "error", err)
		return nil
	}
}

// gameConfig loads breakout.yaml and applies --difficulty and --mute.
func gameConfig() (config.BreakoutConfig, error) {
	cfg, skipped, err := config.LoadBreakoutReport(flagConfig)
	for _, sf := range skipped {
		logger.Warn("skipping config file", "path", sf.Path, "error", sf.Err)
	}
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// keybindings loads the bindings file, falling back to the defaults. A
// missing default file is only logged at debug level; every other failure
// is a warning.
func keybindings() (config.Keybindings, string) {
	path := flagKeys
	if path == "" {
		path = config.DefaultKeybindingsPath()
		if path == "" {
			return config.DefaultKeybindings(), "defaults"
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Debug("using default keybindings", "path", path, "error", err)
			return config.DefaultKeybindings(), "defaults"
		}
	}

	kb, err := config.LoadKeybindings(path)
	if err != nil {
		logger.Warn("using default keybindings", "path", path, "error", err)
		return config.DefaultKeybindings(), "defaults"
	}
	return kb, path
}

// gameOptions assembles a session for levelID.
func gameOptions(levelID string) (breakout.Options, error) {
	if levelID == "" {
		levelID = levels.DefaultLevel
	}
	level, err := levels.Get(levelID)
	if err != nil {
		return breakout.Options{}, fmt.Errorf("%w (run 'brickfall levels' to see available levels)", err)
	}
	cfg, err := gameConfig()
	if err != nil {
		return breakout.Options{}, err
	}
	kb, _ := keybindings()
	return breakout.Options{Level: level, Config: cfg, Keys: kb}, nil
}

// openStore opens the runs database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
