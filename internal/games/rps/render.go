package rps

import (
	"fmt"

	"github.com/vovakirdan/roshambo/internal/core"
)

const (
	minScreenW = 50
	minScreenH = 18

	panelW = 22
	panelH = 7
)

// glyphs are the small pictures shown for a thrown move.
var glyphs = map[Move]string{
	Rock:     "( o )",
	Paper:    "[===]",
	Scissors: "8<",
}

// Render draws the match to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	sum := g.ctrl.Summary()
	g.renderHUD(dst, sum)
	g.renderPanels(dst, sum)
	g.renderMessages(dst)

	if sum.Phase == MatchOver {
		g.renderMatchOver(dst, sum)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorLose)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH), core.ColorMuted)
}

// renderHUD draws title, mode and the score line.
func (g *Game) renderHUD(dst *core.Screen, sum Summary) {
	first, second := g.names()

	dst.DrawTextCentered(0, "R O C K   P A P E R   S C I S S O R S", core.ColorTitle)
	dst.DrawTextCentered(1, g.mode.Label(), core.ColorMuted)

	score := fmt.Sprintf("Round %d/%d | Go %d/%d | %s: %d | %s: %d",
		sum.Round, sum.RoundsPerMatch, sum.Go, sum.GoesPerRound,
		first, sum.GoWins.First, second, sum.GoWins.Second)
	dst.DrawTextCentered(3, score, core.ColorDefault)

	rounds := fmt.Sprintf("Rounds won  %s %d - %d %s", first, sum.RoundWins.First, sum.RoundWins.Second, second)
	dst.DrawTextCentered(4, rounds, core.ColorAccent)
}

// renderPanels draws one box per party.
// The second box is the computer's choice display in vs-computer mode.
func (g *Game) renderPanels(dst *core.Screen, sum Summary) {
	first, second := g.names()
	gap := 4
	totalW := panelW*2 + gap
	left := (g.screenW - totalW) / 2
	top := 6

	g.renderPanel(dst, core.NewRect(left, top, panelW, panelH), first, First, sum.FirstReady)

	title := second
	if g.mode == PlayerVsComputer {
		title = "Computer's Choice"
	}
	g.renderPanel(dst, core.NewRect(left+panelW+gap, top, panelW, panelH), title, Second, sum.SecondReady)
}

func (g *Game) renderPanel(dst *core.Screen, r core.Rect, title string, party Party, ready bool) {
	dst.DrawBox(r, core.ColorBorder)
	dst.DrawTextColored(r.X+(r.W-len(title))/2, r.Y, title, core.ColorTitle)

	midY := r.Y + r.H/2
	text, color := g.panelStatus(party, ready)
	dst.DrawTextColored(r.X+(r.W-len(text))/2, midY-1, text, color)

	if g.hasLast && !ready {
		move := g.last.First
		if party == Second {
			move = g.last.Second
		}
		glyph := glyphs[move]
		dst.DrawTextColored(r.X+(r.W-len(glyph))/2, midY+1, glyph, color)
	}
}

// panelStatus returns the status line for a party's panel.
// A pending move is shown only as "Ready" so it stays hidden from the
// other player.
func (g *Game) panelStatus(party Party, ready bool) (string, core.Color) {
	if ready {
		return "Ready", core.ColorHighlight
	}
	if !g.hasLast {
		return "Waiting...", core.ColorMuted
	}

	move := g.last.First
	won := g.last.Outcome == FirstWins
	if party == Second {
		move = g.last.Second
		won = g.last.Outcome == SecondWins
	}

	switch {
	case g.last.Outcome == Draw:
		return move.String(), core.ColorDraw
	case won:
		return move.String(), core.ColorWin
	default:
		return move.String(), core.ColorLose
	}
}

func (g *Game) renderMessages(dst *core.Screen) {
	y := 6 + panelH + 1
	for i, line := range g.messages {
		dst.DrawTextCentered(y+i, line, g.tone)
	}
}

// renderMatchOver draws the final result box over the board.
func (g *Game) renderMatchOver(dst *core.Screen, sum Summary) {
	winner, _ := g.ctrl.Winner()
	name := g.partyName(winner)

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("%s wins the game!", name),
		fmt.Sprintf("Rounds %d - %d", sum.RoundWins.First, sum.RoundWins.Second),
		"",
		"Restart to play again",
	}

	w := 32
	h := len(lines) + 2
	box := dst.Bounds().Centered(w, h)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorBorder)

	color := core.ColorWin
	if winner == Second && g.mode == PlayerVsComputer {
		color = core.ColorLose
	}
	for i, line := range lines {
		c := core.ColorDefault
		switch i {
		case 0:
			c = core.ColorTitle
		case 2:
			c = color
		}
		dst.DrawTextColored(box.X+(w-len(line))/2, box.Y+1+i, line, c)
	}
}
