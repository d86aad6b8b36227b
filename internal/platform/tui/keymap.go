package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roshambo/internal/config"
	"github.com/vovakirdan/roshambo/internal/core"
)

// KeyMap holds the in-game key bindings.
// It implements help.KeyMap so the help bar stays in sync with the config.
type KeyMap struct {
	P1Rock     key.Binding
	P1Paper    key.Binding
	P1Scissors key.Binding
	P2Rock     key.Binding
	P2Paper    key.Binding
	P2Scissors key.Binding

	Restart     key.Binding
	ToggleMode  key.Binding
	ToggleTheme key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding

	// Player 2 bindings only appear in help during hot-seat play.
	hotSeat bool
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// NewKeyMap builds key bindings from the configuration.
func NewKeyMap(k config.KeysConfig) KeyMap {
	return KeyMap{
		P1Rock:      binding(k.Player1.Rock, "rock"),
		P1Paper:     binding(k.Player1.Paper, "paper"),
		P1Scissors:  binding(k.Player1.Scissors, "scissors"),
		P2Rock:      binding(k.Player2.Rock, "p2 rock"),
		P2Paper:     binding(k.Player2.Paper, "p2 paper"),
		P2Scissors:  binding(k.Player2.Scissors, "p2 scissors"),
		Restart:     binding(k.Restart, "restart"),
		ToggleMode:  binding(k.ToggleMode, "switch mode"),
		ToggleTheme: binding(k.ToggleTheme, "theme"),
		Help:        binding(k.Help, "more"),
		Back:        binding(k.Back, "menu"),
		Quit:        binding(k.Quit, "quit"),
	}
}

// DefaultKeyMap returns bindings for the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// SetHotSeat controls whether Player 2 bindings are shown and enabled.
func (km *KeyMap) SetHotSeat(on bool) {
	km.hotSeat = on
	km.P2Rock.SetEnabled(on)
	km.P2Paper.SetEnabled(on)
	km.P2Scissors.SetEnabled(on)
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.P1Rock, km.P1Paper, km.P1Scissors, km.Restart, km.Help, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	cols := [][]key.Binding{
		{km.P1Rock, km.P1Paper, km.P1Scissors},
	}
	if km.hotSeat {
		cols = append(cols, []key.Binding{km.P2Rock, km.P2Paper, km.P2Scissors})
	}
	return append(cols,
		[]key.Binding{km.Restart, km.ToggleMode, km.ToggleTheme},
		[]key.Binding{km.Help, km.Back, km.Quit},
	)
}

// MapKey translates a key message to a seat and action.
// Returns ActionNone for unbound keys. The help key is not an action and
// must be checked by the caller.
func (km KeyMap) MapKey(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.Player1, core.ActionQuit
	case key.Matches(msg, km.Back):
		return core.Player1, core.ActionBack
	case key.Matches(msg, km.P1Rock):
		return core.Player1, core.ActionRock
	case key.Matches(msg, km.P1Paper):
		return core.Player1, core.ActionPaper
	case key.Matches(msg, km.P1Scissors):
		return core.Player1, core.ActionScissors
	case key.Matches(msg, km.P2Rock):
		return core.Player2, core.ActionRock
	case key.Matches(msg, km.P2Paper):
		return core.Player2, core.ActionPaper
	case key.Matches(msg, km.P2Scissors):
		return core.Player2, core.ActionScissors
	case key.Matches(msg, km.Restart):
		return core.Player1, core.ActionRestart
	case key.Matches(msg, km.ToggleMode):
		return core.Player1, core.ActionToggleMode
	case key.Matches(msg, km.ToggleTheme):
		return core.Player1, core.ActionToggleTheme
	}
	return core.Player1, core.ActionNone
}

// MapKeyToMultiFrame records a game action in the frame.
// Platform actions (quit, back, theme) are returned without being recorded.
func (km KeyMap) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) core.Action {
	player, action := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionBack, core.ActionToggleTheme:
		return action
	}
	frame.Set(player, action)
	return action
}

// MenuKeyMap holds the mode picker bindings.
type MenuKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	ToggleTheme key.Binding
	Quit        key.Binding
}

// NewMenuKeyMap builds menu bindings. Theme and quit keys follow the config.
func NewMenuKeyMap(k config.KeysConfig) MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		ToggleTheme: binding(k.ToggleTheme, "theme"),
		Quit:        binding(k.Quit, "quit"),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.ToggleTheme, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

