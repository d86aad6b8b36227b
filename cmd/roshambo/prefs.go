package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roshambo/internal/config"
	"github.com/vovakirdan/roshambo/internal/games/rps"
	"github.com/vovakirdan/roshambo/internal/platform/tui"
	"github.com/vovakirdan/roshambo/internal/storage"
)

var (
	flagPrefTheme string
	flagPrefMode  string
	flagPrefReset bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored preferences",
	Long: `Show or change the preferences remembered between runs.

Only the theme and the last played mode are stored. Scores are never saved.

Examples:
  roshambo prefs
  roshambo prefs --theme dark
  roshambo prefs --mode pvp
  roshambo prefs --reset`,
	Args: cobra.NoArgs,
	RunE: runPrefs,
}

func init() {
	prefsCmd.Flags().StringVar(&flagPrefTheme, "theme", "", "Set theme: light or dark")
	prefsCmd.Flags().StringVar(&flagPrefMode, "mode", "", "Set default mode: pvc or pvp")
	prefsCmd.Flags().BoolVar(&flagPrefReset, "reset", false, "Forget all stored preferences")
}

func runPrefs(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagPrefReset {
		for _, k := range []string{storage.KeyTheme, storage.KeyMode} {
			if err := store.Delete(k); err != nil {
				return err
			}
		}
	}

	if flagPrefTheme != "" {
		if _, err := tui.ThemeByName(flagPrefTheme); err != nil {
			return err
		}
		if err := store.SetTheme(flagPrefTheme); err != nil {
			return err
		}
	}

	if flagPrefMode != "" {
		mode, err := rps.ParseMode(flagPrefMode)
		if err != nil {
			return err
		}
		if err := store.SetMode(mode.String()); err != nil {
			return err
		}
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Printf("  %-6s  %s\n", "theme", store.Theme(settings.Theme))
	fmt.Printf("  %-6s  %s\n", "mode", store.Mode(settings.Mode))

	all, err := store.All()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println()
		fmt.Println("Nothing stored yet; showing config defaults.")
	}
	return nil
}
