package rps

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/roshambo/internal/core"
	"github.com/vovakirdan/roshambo/internal/registry"
)

// Registry IDs.
const (
	IDVsComputer = "rps"
	IDVsPlayer   = "rps_pvp"
)

// Game adapts a Controller to the platform game loop.
type Game struct {
	mode Mode
	ctrl *Controller

	screenW int
	screenH int

	// Last resolved go, for the result panel
	last     Result
	hasLast  bool
	messages []string
	tone     core.Color

	cues     []Cue
	tooSmall bool
}

// New creates a player-vs-computer game.
func New() *Game {
	return &Game{mode: PlayerVsComputer}
}

// NewHotSeat creates a two-player game sharing one keyboard.
func NewHotSeat() *Game {
	return &Game{mode: PlayerVsPlayer}
}

func init() {
	registry.Register(IDVsComputer, func() registry.Game {
		return New()
	})
	registry.Register(IDVsPlayer, func() registry.Game {
		return NewHotSeat()
	})
}

// ID returns the game identifier for the current mode.
func (g *Game) ID() string {
	if g.mode == PlayerVsPlayer {
		return IDVsPlayer
	}
	return IDVsComputer
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == PlayerVsPlayer {
		return "Rock Paper Scissors (2 Players)"
	}
	return "Rock Paper Scissors"
}

// Mode returns the current play mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// ModeName returns the current mode as stored in preferences ("pvc" or "pvp").
func (g *Game) ModeName() string {
	return g.mode.String()
}

// Summary exposes the controller's match snapshot.
func (g *Game) Summary() Summary {
	return g.ctrl.Summary()
}

// Reset starts a fresh match seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	ctrl, err := NewController(DefaultMatchConfig(g.mode), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		// Default config is always valid.
		panic(err)
	}
	g.ctrl = ctrl
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
	g.newMatch("New game started!")
}

// Resize updates the layout without touching the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

func (g *Game) newMatch(msg string) {
	g.hasLast = false
	g.last = Result{}
	g.messages = []string{msg}
	g.tone = core.ColorAccent
	g.cues = append(g.cues, CueMatchStart)
}

// Step applies one tick of input. Cues raised since the previous Step,
// including the match_start cue from Reset, are returned with the result.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	p1 := in.Player1()

	switch {
	case p1.Has(core.ActionToggleMode):
		next := PlayerVsPlayer
		if g.mode == PlayerVsPlayer {
			next = PlayerVsComputer
		}
		g.setMode(next)
	case p1.Has(core.ActionRestart):
		g.ctrl.Restart()
		g.newMatch("New game started!")
	default:
		g.play(First, p1)
		if g.mode == PlayerVsPlayer {
			g.play(Second, in.Player2())
		}
	}

	return core.StepResult{State: g.State(), Cues: g.drainCues()}
}

func (g *Game) setMode(mode Mode) {
	if err := g.ctrl.SetMode(mode); err != nil {
		return
	}
	g.mode = mode
	g.newMatch(fmt.Sprintf("Switched to %s", mode.Label()))
}

// play submits the first move found in the frame, if any.
func (g *Game) play(party Party, frame core.InputFrame) {
	move := moveFromFrame(frame)
	if move == MoveNone {
		return
	}
	res, err := g.ctrl.SubmitMove(move, party)
	if err != nil {
		// Moves after the match ends are ignored until restart.
		return
	}
	g.cues = append(g.cues, CuesFor(move, res)...)
	g.describe(party, res)
}

func moveFromFrame(frame core.InputFrame) Move {
	switch {
	case frame.Has(core.ActionRock):
		return Rock
	case frame.Has(core.ActionPaper):
		return Paper
	case frame.Has(core.ActionScissors):
		return Scissors
	default:
		return MoveNone
	}
}

// describe builds the message panel text for a submission.
func (g *Game) describe(party Party, res Result) {
	first, second := g.names()

	if res.Awaiting {
		who, other := first, second
		if party == Second {
			who, other = second, first
		}
		g.messages = []string{fmt.Sprintf("%s has chosen. Waiting for %s...", who, other)}
		g.tone = core.ColorMuted
		return
	}

	g.last = res
	g.hasLast = true
	g.messages = []string{fmt.Sprintf("%s chose %s, %s chose %s", first, res.First, second, res.Second)}

	switch res.Outcome {
	case Draw:
		g.messages = append(g.messages, "It's a draw!")
		g.tone = core.ColorDraw
	case FirstWins:
		g.messages = append(g.messages, fmt.Sprintf("%s wins this go!", first))
		g.tone = core.ColorWin
	case SecondWins:
		g.messages = append(g.messages, fmt.Sprintf("%s wins this go!", second))
		g.tone = core.ColorLose
	}

	if res.RoundClosed {
		closed := res.Summary.Round
		if !res.MatchOver {
			closed--
		}
		g.messages = append(g.messages, fmt.Sprintf("%s takes round %d (%d-%d)",
			g.partyName(res.RoundWinner), closed, res.RoundGoWins.First, res.RoundGoWins.Second))
		if !res.MatchOver {
			g.messages = append(g.messages, fmt.Sprintf("Round %d starting!", res.Summary.Round))
		}
	}
}

// names returns display names for the first and second party.
func (g *Game) names() (string, string) {
	if g.mode == PlayerVsPlayer {
		return "Player 1", "Player 2"
	}
	return "Player", "Computer"
}

func (g *Game) partyName(p Party) string {
	first, second := g.names()
	if p == Second {
		return second
	}
	return first
}

func (g *Game) drainCues() []string {
	if len(g.cues) == 0 {
		return nil
	}
	out := make([]string, len(g.cues))
	for i, c := range g.cues {
		out[i] = string(c)
	}
	g.cues = g.cues[:0]
	return out
}

// State returns the current game state. Score is the first party's round wins.
func (g *Game) State() core.GameState {
	sum := g.ctrl.Summary()
	return core.GameState{
		Score:    sum.RoundWins.First,
		GameOver: sum.Phase == MatchOver,
		Paused:   g.tooSmall,
	}
}
