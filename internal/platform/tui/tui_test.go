package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roshambo/internal/config"
	"github.com/vovakirdan/roshambo/internal/core"
	"github.com/vovakirdan/roshambo/internal/registry"
	"github.com/vovakirdan/roshambo/internal/storage"
)

var allActions = []core.Action{
	core.ActionRock, core.ActionPaper, core.ActionScissors,
	core.ActionRestart, core.ActionToggleMode,
}

// stubGame records the input it receives.
type stubGame struct {
	id      string
	mode    string
	resets  int
	resizes int
	p1, p2  []core.Action
	cues    []string
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Resize(w, h int) { g.resizes++ }

func (g *stubGame) ModeName() string { return g.mode }

func (g *stubGame) Step(in core.MultiInputFrame) core.StepResult {
	for _, a := range allActions {
		if in.Player1().Has(a) {
			g.p1 = append(g.p1, a)
		}
		if in.Player2().Has(a) {
			g.p2 = append(g.p2, a)
		}
	}
	if in.Player1().Has(core.ActionToggleMode) {
		if g.mode == "pvp" {
			g.mode = "pvc"
		} else {
			g.mode = "pvp"
		}
	}
	cues := g.cues
	g.cues = nil
	return core.StepResult{Cues: cues}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return core.GameState{} }

func init() {
	registry.Register("stub_a", func() registry.Game { return &stubGame{id: "stub_a", mode: "pvc"} })
	registry.Register("stub_b", func() registry.Game { return &stubGame{id: "stub_b", mode: "pvp"} })
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func send(t *testing.T, m GameModel, msgs ...tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		gm, ok := next.(GameModel)
		require.True(t, ok)
		m = gm
	}
	return m, cmd
}

func TestKeyMapDefaults(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key    string
		player core.PlayerID
		action core.Action
	}{
		{"a", core.Player1, core.ActionRock},
		{"2", core.Player1, core.ActionPaper},
		{"d", core.Player1, core.ActionScissors},
		{"r", core.Player1, core.ActionRestart},
		{"m", core.Player1, core.ActionToggleMode},
		{"t", core.Player1, core.ActionToggleTheme},
		{"q", core.Player1, core.ActionQuit},
		{"ctrl+c", core.Player1, core.ActionQuit},
		{"esc", core.Player1, core.ActionBack},
		{"x", core.Player1, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			player, action := km.MapKey(keyMsg(tt.key))
			assert.Equal(t, tt.player, player)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestKeyMapPlayerTwoOnlyInHotSeat(t *testing.T) {
	km := DefaultKeyMap()
	km.SetHotSeat(false)
	_, action := km.MapKey(keyMsg("k"))
	assert.Equal(t, core.ActionNone, action)
	assert.Len(t, km.FullHelp(), 3)

	km.SetHotSeat(true)
	player, action := km.MapKey(keyMsg("k"))
	assert.Equal(t, core.Player2, player)
	assert.Equal(t, core.ActionPaper, action)
	assert.Len(t, km.FullHelp(), 4)
}

func TestKeyMapCustomBindings(t *testing.T) {
	keys := config.Default().Keys
	keys.Player1.Rock = []string{"z"}
	km := NewKeyMap(keys)

	_, action := km.MapKey(keyMsg("z"))
	assert.Equal(t, core.ActionRock, action)
	_, action = km.MapKey(keyMsg("a"))
	assert.Equal(t, core.ActionNone, action)
	assert.Equal(t, "z", km.P1Rock.Help().Key)
}

func TestMapKeyToMultiFrame(t *testing.T) {
	km := DefaultKeyMap()
	km.SetHotSeat(true)
	frame := core.NewMultiInputFrame()

	assert.Equal(t, core.ActionRock, km.MapKeyToMultiFrame(keyMsg("a"), &frame))
	assert.Equal(t, core.ActionScissors, km.MapKeyToMultiFrame(keyMsg("l"), &frame))
	assert.Equal(t, core.ActionQuit, km.MapKeyToMultiFrame(keyMsg("q"), &frame))

	assert.True(t, frame.Player1().Has(core.ActionRock))
	assert.True(t, frame.Player2().Has(core.ActionScissors))
	assert.False(t, frame.Player1().Has(core.ActionQuit))
}

func TestThemes(t *testing.T) {
	light, err := ThemeByName("light")
	require.NoError(t, err)
	dark, err := ThemeByName("dark")
	require.NoError(t, err)
	_, err = ThemeByName("neon")
	require.Error(t, err)

	assert.Equal(t, "dark", light.Toggle().Name)
	assert.Equal(t, "light", dark.Toggle().Name)
	assert.NotEqual(t, light.Background, dark.Background)

	// Unknown roles fall back to the default style.
	assert.Equal(t, light.Base().GetForeground(), light.Style(core.Color(200)).GetForeground())
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColored(0, 0, "Rock", core.ColorWin)
	s.DrawTextColored(5, 0, "Paper", core.ColorLose)

	out := RenderScreen(s, DarkTheme())
	assert.Contains(t, out, "Rock")
	assert.Contains(t, out, "Paper")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestCuePlayer(t *testing.T) {
	var buf bytes.Buffer
	sound := config.Default().Sound
	p := NewCuePlayer(&buf, sound, nil)

	p.Play([]string{"move_rock", "win", "lose"})
	assert.Equal(t, strings.Repeat("\a", 3), buf.String())

	buf.Reset()
	sound.Enabled = false
	NewCuePlayer(&buf, sound, nil).Play([]string{"win"})
	assert.Empty(t, buf.String())

	// Nil writer and nil player are safe.
	NewCuePlayer(nil, config.Default().Sound, nil).Play([]string{"win"})
	var nilPlayer *CuePlayer
	nilPlayer.Play([]string{"win"})
}

func TestGameModelRoutesInput(t *testing.T) {
	game := &stubGame{id: "stub", mode: "pvp"}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	m, _ = send(t, m, keyMsg("a"), keyMsg("j"), TickMsg{})
	assert.Equal(t, []core.Action{core.ActionRock}, game.p1)
	assert.Equal(t, []core.Action{core.ActionRock}, game.p2)

	// The frame is cleared after each tick.
	_, _ = send(t, m, TickMsg{})
	assert.Len(t, game.p1, 1)
}

func TestGameModelConfirmQuit(t *testing.T) {
	var bells bytes.Buffer
	game := &stubGame{id: "stub", mode: "pvc"}
	m := NewGameModel(game, testConfig(), Options{Settings: config.Default(), Bell: &bells})
	m.Init()

	m, cmd := send(t, m, keyMsg("q"))
	assert.True(t, m.Confirming())
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "Do you really want to quit?")

	// Input is frozen while the prompt is open.
	m, _ = send(t, m, keyMsg("a"), TickMsg{})
	assert.Empty(t, game.p1)

	m, _ = send(t, m, keyMsg("n"))
	assert.False(t, m.Confirming())

	m, _ = send(t, m, keyMsg("q"))
	m, cmd = send(t, m, keyMsg("y"))
	assert.True(t, m.IsQuitting())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, strings.Repeat("\a", 3), bells.String())
}

func TestGameModelQuitWithoutConfirm(t *testing.T) {
	settings := config.Default()
	settings.ConfirmQuit = false
	m := NewGameModel(&stubGame{id: "stub"}, testConfig(), Options{Settings: settings})

	m, cmd := send(t, m, keyMsg("ctrl+c"))
	assert.True(t, m.IsQuitting())
	assert.True(t, isQuit(cmd))
}

func TestGameModelPersistsThemeAndMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &stubGame{id: "stub", mode: "pvc"}
	m := NewGameModel(game, testConfig(), Options{Settings: config.Default(), Store: store})
	m.Init()
	assert.Equal(t, "light", m.Theme().Name)

	m, _ = send(t, m, keyMsg("t"))
	assert.Equal(t, "dark", m.Theme().Name)
	assert.Equal(t, "dark", store.Theme("light"))

	// Starting a game does not write the mode; switching does.
	assert.Equal(t, "unset", store.Mode("unset"))
	_, _ = send(t, m, keyMsg("m"), TickMsg{})
	assert.Equal(t, "pvp", store.Mode("unset"))

	// A new model picks up the stored theme.
	m2 := NewGameModel(&stubGame{id: "stub"}, testConfig(), Options{Settings: config.Default(), Store: store})
	assert.Equal(t, "dark", m2.Theme().Name)
}

func TestGameModelResizeDoesNotReset(t *testing.T) {
	game := &stubGame{id: "stub"}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()
	require.Equal(t, 1, game.resets)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 1, game.resizes)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height()) // one row for the help bar

	m, _ = send(t, m, keyMsg("?"))
	assert.Equal(t, 2, game.resizes)
	assert.Equal(t, 27, m.screen.Height())
}

func TestGameModelBack(t *testing.T) {
	m := NewGameModel(&stubGame{id: "stub"}, testConfig(), Options{})
	m, cmd := send(t, m, keyMsg("b"))
	assert.True(t, m.BackToMenu())
	assert.True(t, isQuit(cmd))

	m = NewGameModel(&stubGame{id: "stub"}, testConfig(), Options{})
	m.embedded = true
	m, cmd = send(t, m, keyMsg("esc"))
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd)
}

func TestMenuModel(t *testing.T) {
	m := NewMenuModel(testConfig(), Options{}, "stub_b")
	assert.Equal(t, "stub_b", m.items[m.cursor].GameID)

	next, _ := m.Update(keyMsg("up"))
	m = next.(MenuModel)
	assert.Equal(t, "stub_a", m.items[m.cursor].GameID)

	view := m.View()
	assert.Contains(t, view, "Stub stub_a")
	assert.Contains(t, view, "Choose a game mode")

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "stub_a", m.Selected().GameID)
	assert.True(t, isQuit(cmd))
}

func TestSessionModelMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(testConfig(), Options{}, "session-1", "stub_a")
	assert.Equal(t, "session-1", s.SessionID())

	next, cmd := s.Update(keyMsg("enter"))
	s = next.(SessionModel)
	require.True(t, s.inGame)
	assert.NotNil(t, cmd) // tick loop started
	assert.Contains(t, s.View(), "stub")

	next, cmd = s.Update(keyMsg("t"))
	s = next.(SessionModel)
	assert.Equal(t, "dark", s.theme.Name)
	assert.False(t, isQuit(cmd))

	next, _ = s.Update(keyMsg("b"))
	s = next.(SessionModel)
	assert.False(t, s.inGame)
	assert.Equal(t, "stub_a", s.menu.items[s.menu.cursor].GameID)
	assert.Equal(t, "dark", s.menu.theme.Name)
}
