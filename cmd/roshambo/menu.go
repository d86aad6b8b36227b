package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roshambo/internal/platform/tui"
	"github.com/vovakirdan/roshambo/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or w/s to navigate, Enter to select a mode.
Press B or Esc in a game to return to the menu.

Controls:
  Up/Down/w/s  - Navigate menu
  Enter/Space  - Select mode
  T            - Toggle theme
  Q            - Quit

Examples:
  roshambo menu
  roshambo menu --fps 60`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := runtimeConfig()
	opts := a.options()
	lastID, err := gameIDForMode(a.mode())
	if err != nil {
		a.logger.Warn("ignoring stored mode", "error", err)
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, opts, lastID)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, cfg, opts)
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !result.BackToMenu {
			return nil
		}
		cfg = result.Config
		lastID = game.ID()
	}
}
