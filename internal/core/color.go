package core

// Color is a semantic color role for a screen cell.
// The platform layer maps roles to concrete terminal colors per theme,
// so games never pick raw palette values.
type Color uint8

// Color roles used by games.
const (
	ColorDefault Color = iota
	ColorTitle
	ColorAccent
	ColorMuted
	ColorWin
	ColorLose
	ColorDraw
	ColorHighlight
	ColorBorder
)

// String returns the role name, mostly for debugging and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorTitle:
		return "title"
	case ColorAccent:
		return "accent"
	case ColorMuted:
		return "muted"
	case ColorWin:
		return "win"
	case ColorLose:
		return "lose"
	case ColorDraw:
		return "draw"
	case ColorHighlight:
		return "highlight"
	case ColorBorder:
		return "border"
	default:
		return "unknown"
	}
}
