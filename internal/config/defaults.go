package config

import (
	_ "embed"
)

//go:embed defaults/rps.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:       ThemeLight,
		Mode:        "pvc",
		ConfirmQuit: true,
		Sound: SoundConfig{
			Enabled: true,
			Cues: map[string]int{
				"move_rock":     0,
				"move_paper":    0,
				"move_scissors": 0,
				"draw":          0,
				"win":           1,
				"lose":          2,
				"match_start":   1,
				"match_end":     3,
			},
		},
		Keys: KeysConfig{
			Player1: MoveKeys{
				Rock:     []string{"a", "1"},
				Paper:    []string{"s", "2"},
				Scissors: []string{"d", "3"},
			},
			Player2: MoveKeys{
				Rock:     []string{"j", "8"},
				Paper:    []string{"k", "9"},
				Scissors: []string{"l", "0"},
			},
			Restart:     []string{"r"},
			ToggleMode:  []string{"m"},
			ToggleTheme: []string{"t"},
			Help:        []string{"?"},
			Back:        []string{"b", "esc"},
			Quit:        []string{"q", "ctrl+c"},
		},
	}
}
