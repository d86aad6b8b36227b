// roshambo is a rock-paper-scissors game for the terminal.
//
// Usage:
//
//	roshambo play [pvc|pvp]   - Play a match (vs computer or two players)
//	roshambo menu             - Pick a mode interactively
//	roshambo list             - List available game modes
//	roshambo serve            - Start SSH server for remote play
//	roshambo prefs            - Show or change stored preferences
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible computer moves
//	--db <path>        - Set preferences database path (default: ~/.roshambo/prefs.db)
//	--config <path>    - Use a specific YAML config file
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roshambo/internal/config"
	"github.com/vovakirdan/roshambo/internal/core"
	"github.com/vovakirdan/roshambo/internal/platform/tui"
	"github.com/vovakirdan/roshambo/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/roshambo/internal/games/rps"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roshambo",
	Short: "Rock Paper Scissors in your terminal",
	Long: `Roshambo is a terminal rock-paper-scissors game.

Play best of 3 rounds, each round best of 3 goes, against the computer
or against a friend on the same keyboard.

Available commands:
  play     - Play a match directly
  menu     - Interactive mode picker
  list     - Show all game modes
  serve    - Start SSH server for remote play
  prefs    - Show or change stored preferences

Examples:
  roshambo play
  roshambo play pvp
  roshambo menu
  roshambo serve --ssh :2222
  roshambo prefs --theme dark`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(prefsCmd)
}

// app bundles what every interactive command needs.
type app struct {
	settings config.Config
	store    *storage.Store
	logger   *log.Logger
	closers  []io.Closer
}

// newApp loads config, opens the log file and the preference store.
// Logs go to logOut (discarded when nil) unless --log-file is set.
// A store that cannot be opened is reported and skipped.
func newApp(logOut io.Writer) (*app, error) {
	a := &app{}

	if logOut == nil {
		logOut = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		logOut = f
	}
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "roshambo",
		Level:           level,
	})

	settings, err := config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.settings = settings

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		a.logger.Warn("running without preferences", "error", err)
	} else {
		a.store = store
		a.closers = append(a.closers, store)
	}

	return a, nil
}

func (a *app) options() tui.Options {
	return tui.Options{
		Settings: a.settings,
		Store:    a.store,
		Logger:   a.logger,
		Bell:     os.Stdout,
	}
}

// mode returns the preferred mode: stored preference, else config.
func (a *app) mode() string {
	if a.store != nil {
		return a.store.Mode(a.settings.Mode)
	}
	return a.settings.Mode
}

// Close releases the store and log file, newest first.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		//nolint:errcheck // Best-effort cleanup on exit
		a.closers[i].Close()
	}
}

// runtimeConfig builds the game config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
