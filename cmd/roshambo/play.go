package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roshambo/internal/games/rps"
	"github.com/vovakirdan/roshambo/internal/platform/tui"
	"github.com/vovakirdan/roshambo/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [pvc|pvp]",
	Short: "Play a match",
	Long: `Start a best-of-3 match.

Without an argument the last used mode is played (see 'roshambo prefs'),
falling back to the mode in the config file.

Modes:
  pvc  - Player vs Computer
  pvp  - Player 1 vs Player 2 on one keyboard (moves stay hidden until both have chosen)

Controls (defaults, configurable in rps.yaml):
  A/S/D or 1/2/3  - Player 1 rock/paper/scissors
  J/K/L           - Player 2 rock/paper/scissors
  R               - Restart
  M               - Switch mode
  T               - Toggle light/dark theme
  ?               - Full help
  B/Esc           - Back
  Q/Ctrl+C        - Quit

Examples:
  roshambo play
  roshambo play pvp
  roshambo play --seed 42
  roshambo play --config ./my-rps.yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"pvc", "pvp"},
	RunE:      runPlay,
}

// gameIDForMode maps a mode name to its registry ID.
func gameIDForMode(name string) (string, error) {
	mode, err := rps.ParseMode(name)
	if err != nil {
		return "", err
	}
	if mode == rps.PlayerVsPlayer {
		return rps.IDVsPlayer, nil
	}
	return rps.IDVsComputer, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	modeName := a.mode()
	if len(args) == 1 {
		modeName = args[0]
	}
	gameID, err := gameIDForMode(modeName)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	if _, err := tui.Run(game, runtimeConfig(), a.options()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
