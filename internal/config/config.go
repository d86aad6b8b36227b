// Package config provides YAML-based configuration loading for the
// rock-paper-scissors game: theme, default mode, sound cues and key bindings.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config contains all user-tunable settings.
type Config struct {
	Theme       string      `yaml:"theme"`
	Mode        string      `yaml:"mode"`
	ConfirmQuit bool        `yaml:"confirm_quit"`
	Sound       SoundConfig `yaml:"sound"`
	Keys        KeysConfig  `yaml:"keys"`
}

// SoundConfig maps semantic cues to a number of terminal bells.
type SoundConfig struct {
	Enabled bool           `yaml:"enabled"`
	Cues    map[string]int `yaml:"cues"`
}

// Bells returns how many bells to ring for a cue. Unknown cues are silent.
func (s SoundConfig) Bells(cue string) int {
	if !s.Enabled {
		return 0
	}
	return s.Cues[cue]
}

// MoveKeys binds keys to the three throws for one player.
type MoveKeys struct {
	Rock     []string `yaml:"rock"`
	Paper    []string `yaml:"paper"`
	Scissors []string `yaml:"scissors"`
}

// KeysConfig contains all key bindings. Keys use Bubble Tea key names
// ("a", "enter", "ctrl+c", ...).
type KeysConfig struct {
	Player1     MoveKeys `yaml:"player1"`
	Player2     MoveKeys `yaml:"player2"`
	Restart     []string `yaml:"restart"`
	ToggleMode  []string `yaml:"toggle_mode"`
	ToggleTheme []string `yaml:"toggle_theme"`
	Help        []string `yaml:"help"`
	Back        []string `yaml:"back"`
	Quit        []string `yaml:"quit"`
}

// bindings returns every binding with a label, for validation.
func (k KeysConfig) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"player1.rock", k.Player1.Rock},
		{"player1.paper", k.Player1.Paper},
		{"player1.scissors", k.Player1.Scissors},
		{"player2.rock", k.Player2.Rock},
		{"player2.paper", k.Player2.Paper},
		{"player2.scissors", k.Player2.Scissors},
		{"restart", k.Restart},
		{"toggle_mode", k.ToggleMode},
		{"toggle_theme", k.ToggleTheme},
		{"help", k.Help},
		{"back", k.Back},
		{"quit", k.Quit},
	}
}

// Validate checks the theme, mode and that no key is bound twice.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: theme %q (want light or dark)", ErrInvalid, c.Theme)
	}

	switch strings.ToLower(c.Mode) {
	case "pvc", "pvp":
	default:
		return fmt.Errorf("%w: mode %q (want pvc or pvp)", ErrInvalid, c.Mode)
	}

	seen := make(map[string]string)
	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: no key bound to %s", ErrInvalid, b.name)
		}
		for _, k := range b.keys {
			if prev, dup := seen[k]; dup {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.name)
			}
			seen[k] = b.name
		}
	}

	for cue, n := range c.Sound.Cues {
		if n < 0 {
			return fmt.Errorf("%w: negative bell count for cue %s", ErrInvalid, cue)
		}
	}
	return nil
}
