package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/config"
)

var flagInitKeys bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective keybindings",
	Long: `Print the keybindings in use as TOML. A missing or invalid file falls
back to the defaults (ArrowLeft / ArrowRight / Space) with a warning.

Key names follow the KeyboardEvent.code convention: ArrowLeft, ArrowRight,
ArrowUp, ArrowDown, Space, Enter, KeyA, KeyD, KeyH, KeyJ, KeyK, KeyL, KeyS,
KeyW, Comma, Period.

Examples:
  brickfall keys
  brickfall keys --init              # write the defaults if no file exists
  brickfall keys --keys ./vim.toml`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&flagInitKeys, "init", false, "Write the default keybindings file if it does not exist")
}

func runKeys(_ *cobra.Command, _ []string) {
	if flagInitKeys {
		if err := initKeybindings(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	kb, source := keybindings()
	text, err := kb.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Print(text)
}

func initKeybindings() error {
	path := flagKeys
	if path == "" {
		path = config.DefaultKeybindingsPath()
	}
	if path == "" {
		return errors.New("cannot resolve keybindings path")
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "%s already exists, leaving it alone\n", path)
		return nil
	}

	text, err := config.DefaultKeybindings().Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	return nil
}
