package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roshambo/internal/config"
	"github.com/vovakirdan/roshambo/internal/core"
	"github.com/vovakirdan/roshambo/internal/registry"
	"github.com/vovakirdan/roshambo/internal/storage"
)

// quitCue is played when the player confirms quitting.
const quitCue = "match_end"

// Options are the collaborators shared by every model.
// All fields are optional.
type Options struct {
	Settings config.Config
	Store    *storage.Store
	Logger   *log.Logger
	// Bell receives terminal bell characters for sound cues.
	Bell io.Writer
}

func (o Options) withDefaults() Options {
	if o.Settings.Theme == "" {
		o.Settings = config.Default()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// initialTheme prefers the stored theme over the configured one.
func (o Options) initialTheme() Theme {
	name := o.Settings.Theme
	if o.Store != nil {
		name = o.Store.Theme(name)
	}
	theme, err := ThemeByName(name)
	if err != nil {
		o.Logger.Warn("unknown theme, using light", "theme", name)
		return LightTheme()
	}
	return theme
}

// modeNamer is implemented by games with a switchable play mode.
type modeNamer interface {
	ModeName() string
}

// GameModel runs one registry game inside Bubble Tea.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	theme      Theme
	sound      *CuePlayer
	logger     *log.Logger
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	mode       string

	// embedded is set when a parent model owns the program, so going back
	// to the menu must not quit it.
	embedded   bool
	confirming bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	opts = opts.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := GameModel{
		game:       game,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMap(opts.Settings.Keys),
		help:       help.New(),
		theme:      opts.initialTheme(),
		sound:      NewCuePlayer(opts.Bell, opts.Settings.Sound, opts.Logger),
		logger:     opts.Logger,
		inputFrame: core.NewMultiInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.syncMode()
	return m
}

// gameHeight is the terminal height minus the help bar.
func (m GameModel) gameHeight() int {
	return max(m.config.ScreenH-m.helpHeight(), 0)
}

func (m GameModel) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// syncMode updates mode-dependent bindings and persists mode changes.
func (m *GameModel) syncMode() {
	mn, ok := m.game.(modeNamer)
	if !ok {
		return
	}
	mode := mn.ModeName()
	if mode == m.mode {
		return
	}
	first := m.mode == ""
	m.mode = mode
	m.keys.SetHotSeat(mode == "pvp")
	if first {
		return
	}
	m.logger.Info("mode changed", "mode", mode)
	if m.opts.Store != nil {
		if err := m.opts.Store.SetMode(mode); err != nil {
			m.logger.Warn("could not save mode", "error", err)
		}
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// resize applies the current terminal and help sizes to the game.
func (m *GameModel) resize() {
	h := m.gameHeight()
	m.screen.Resize(m.config.ScreenW, h)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, h)
		return
	}
	m.game.Reset(m.gameConfig())
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	switch m.keys.MapKeyToMultiFrame(msg, &m.inputFrame) {
	case core.ActionQuit:
		if m.opts.Settings.ConfirmQuit {
			m.confirming = true
			return m, nil
		}
		return m.quit()

	case core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case core.ActionToggleTheme:
		m.theme = m.theme.Toggle()
		m.logger.Debug("theme changed", "theme", m.theme.Name)
		if m.opts.Store != nil {
			if err := m.opts.Store.SetTheme(m.theme.Name); err != nil {
				m.logger.Warn("could not save theme", "error", err)
			}
		}
	}

	return m, nil
}

// handleConfirmKey answers the quit prompt.
func (m GameModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter", "ctrl+c":
		m.sound.Play([]string{quitCue})
		return m.quit()
	case "n", "N", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m GameModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Debug("quit", "game", m.game.ID())
	return m, tea.Quit
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// The match is frozen while the quit prompt is open.
	if m.confirming {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.sound.Play(result.Cues)
	m.syncMode()

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("match over", "game", m.game.ID(), "score", m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.confirming {
		drawConfirm(m.screen)
	}

	bar := m.theme.Base().Width(m.config.ScreenW).Render(m.help.View(m.keys))
	return RenderScreen(m.screen, m.theme) + "\n" + bar
}

// drawConfirm draws the quit prompt over the board.
func drawConfirm(s *core.Screen) {
	box := s.Bounds().Centered(34, 5)
	s.FillRect(box, ' ')
	s.DrawBox(box, core.ColorBorder)
	s.DrawTextCentered(box.Y+1, "Do you really want to quit?", core.ColorTitle)
	s.DrawTextCentered(box.Y+3, "[y] Yes    [n] No", core.ColorMuted)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Confirming reports whether the quit prompt is open.
func (m GameModel) Confirming() bool {
	return m.confirming
}

// Theme returns the active theme.
func (m GameModel) Theme() Theme {
	return m.theme
}

// GameResult describes how a game program ended.
type GameResult struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (GameResult, error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}

	gm, ok := final.(GameModel)
	if !ok {
		return GameResult{Config: cfg}, nil
	}
	return GameResult{BackToMenu: gm.BackToMenu(), Config: gm.config}, nil
}
