package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roshambo/internal/config"
	"github.com/vovakirdan/roshambo/internal/core"
)

// Theme maps semantic color roles to terminal styles.
type Theme struct {
	Name       string
	Background lipgloss.Color

	cells map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// palette is the foreground color for each role.
type palette map[core.Color]lipgloss.Color

func newTheme(name string, bg, fg lipgloss.Color, p palette) Theme {
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)

	cells := make(map[core.Color]lipgloss.Style, len(p)+1)
	cells[core.ColorDefault] = base
	for role, c := range p {
		cells[role] = base.Foreground(c)
	}
	cells[core.ColorTitle] = cells[core.ColorTitle].Bold(true)
	cells[core.ColorHighlight] = cells[core.ColorHighlight].Bold(true)

	return Theme{
		Name:            name,
		Background:      bg,
		cells:           cells,
		MenuTitle:       cells[core.ColorTitle],
		MenuItemNormal:  base,
		MenuItemActive:  cells[core.ColorHighlight],
		MenuDescription: cells[core.ColorMuted],
	}
}

// LightTheme is dark text on a white background.
func LightTheme() Theme {
	return newTheme(config.ThemeLight, lipgloss.Color("#FFFFFF"), lipgloss.Color("#000000"), palette{
		core.ColorTitle:     lipgloss.Color("#1F3A93"),
		core.ColorAccent:    lipgloss.Color("#005F87"),
		core.ColorMuted:     lipgloss.Color("#6C6C6C"),
		core.ColorWin:       lipgloss.Color("#008700"), // green
		core.ColorLose:      lipgloss.Color("#AF0000"), // red
		core.ColorDraw:      lipgloss.Color("#AF5F00"),
		core.ColorHighlight: lipgloss.Color("#5F00AF"),
		core.ColorBorder:    lipgloss.Color("#808080"),
	})
}

// DarkTheme is light text on a near-black background.
func DarkTheme() Theme {
	return newTheme(config.ThemeDark, lipgloss.Color("#1E1E1E"), lipgloss.Color("#FFFFFF"), palette{
		core.ColorTitle:     lipgloss.Color("#5FD7FF"),
		core.ColorAccent:    lipgloss.Color("#87AFFF"),
		core.ColorMuted:     lipgloss.Color("#8A8A8A"),
		core.ColorWin:       lipgloss.Color("#5FFF5F"),
		core.ColorLose:      lipgloss.Color("#FF5F5F"),
		core.ColorDraw:      lipgloss.Color("#FFD75F"),
		core.ColorHighlight: lipgloss.Color("#FFFF5F"),
		core.ColorBorder:    lipgloss.Color("#585858"),
	})
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case config.ThemeLight:
		return LightTheme(), nil
	case config.ThemeDark:
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("tui: unknown theme %q (want light or dark)", name)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == config.ThemeDark {
		return LightTheme()
	}
	return DarkTheme()
}

// Style returns the style for a color role, falling back to the default role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.cells[c]; ok {
		return s
	}
	return t.cells[core.ColorDefault]
}

// Base returns the plain text style for this theme.
func (t Theme) Base() lipgloss.Style {
	return t.cells[core.ColorDefault]
}
