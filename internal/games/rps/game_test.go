package rps

import (
	"strings"
	"testing"

	"github.com/vovakirdan/roshambo/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 12345}
}

func frame(p1, p2 core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	if p1 != core.ActionNone {
		in.Set(core.Player1, p1)
	}
	if p2 != core.ActionNone {
		in.Set(core.Player2, p2)
	}
	return in
}

func render(g *Game) string {
	s := core.NewScreen(80, 24)
	g.Render(s)
	return s.String()
}

func TestResetEmitsMatchStart(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	res := g.Step(core.NewMultiInputFrame())
	if len(res.Cues) != 1 || res.Cues[0] != string(CueMatchStart) {
		t.Errorf("first step cues = %v, expected [match_start]", res.Cues)
	}

	res = g.Step(core.NewMultiInputFrame())
	if len(res.Cues) != 0 {
		t.Errorf("idle step should raise no cues, got %v", res.Cues)
	}

	if !strings.Contains(render(g), "New game started!") {
		t.Error("fresh game should announce a new game")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should see the same computer moves
	g1, g2 := New(), New()
	g1.Reset(testConfig())
	g2.Reset(testConfig())

	for i := 0; i < 6; i++ {
		g1.Step(frame(core.ActionPaper, core.ActionNone))
		g2.Step(frame(core.ActionPaper, core.ActionNone))

		if g1.last.Second != g2.last.Second {
			t.Fatalf("go %d: computer moves differ: %s vs %s", i+1, g1.last.Second, g2.last.Second)
		}
	}
	if g1.Summary() != g2.Summary() {
		t.Errorf("summaries differ: %+v vs %+v", g1.Summary(), g2.Summary())
	}
}

func TestVsComputerDescribesGo(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(core.NewMultiInputFrame())

	res := g.Step(frame(core.ActionRock, core.ActionNone))
	if len(res.Cues) < 2 || res.Cues[0] != string(CueMoveRock) {
		t.Errorf("cues = %v, expected move_rock first", res.Cues)
	}

	out := render(g)
	if !strings.Contains(out, "Player chose Rock, Computer chose") {
		t.Errorf("result line missing:\n%s", out)
	}
	if !strings.Contains(out, "Computer's Choice") {
		t.Error("vs computer should show the computer's choice panel")
	}
}

func TestVsComputerIgnoresPlayerTwoKeys(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(frame(core.ActionNone, core.ActionRock))
	if g.Summary().Go != 1 || g.hasLast {
		t.Error("player 2 input must not play in vs computer mode")
	}
}

func TestHotSeatHidesPendingMove(t *testing.T) {
	g := NewHotSeat()
	g.Reset(testConfig())
	g.Step(core.NewMultiInputFrame())

	res := g.Step(frame(core.ActionRock, core.ActionNone))
	if res.State.GameOver {
		t.Fatal("one move should not end anything")
	}
	if !g.Summary().FirstReady {
		t.Fatal("player 1 should be ready")
	}

	out := render(g)
	if strings.Contains(out, "Rock") {
		t.Errorf("pending move leaked onto the screen:\n%s", out)
	}
	if !strings.Contains(out, "Player 1 has chosen. Waiting for Player 2...") {
		t.Errorf("waiting message missing:\n%s", out)
	}

	g.Step(frame(core.ActionNone, core.ActionScissors))
	out = render(g)
	if !strings.Contains(out, "Player 1 chose Rock, Player 2 chose Scissors") {
		t.Errorf("resolution line missing:\n%s", out)
	}
	if !strings.Contains(out, "Player 1 wins this go!") {
		t.Errorf("winner line missing:\n%s", out)
	}
}

func TestHotSeatBothKeysSameTick(t *testing.T) {
	g := NewHotSeat()
	g.Reset(testConfig())

	g.Step(frame(core.ActionPaper, core.ActionRock))
	if g.Summary().GoWins.First != 1 {
		t.Errorf("GoWins = %+v, expected first party credited", g.Summary().GoWins)
	}
}

func TestFullMatchEndsGame(t *testing.T) {
	g := NewHotSeat()
	g.Reset(testConfig())

	var res core.StepResult
	for i := 0; i < 9; i++ {
		res = g.Step(frame(core.ActionScissors, core.ActionPaper))
	}

	if !res.State.GameOver {
		t.Fatal("match should be over after nine straight wins")
	}
	if res.State.Score != 3 {
		t.Errorf("Score = %d, expected 3 rounds", res.State.Score)
	}
	if res.Cues[len(res.Cues)-1] != string(CueMatchEnd) {
		t.Errorf("last cue = %v, expected match_end", res.Cues)
	}
	if out := render(g); !strings.Contains(out, "Player 1 wins the game!") {
		t.Errorf("game over overlay missing:\n%s", out)
	}

	// Further moves are ignored
	res = g.Step(frame(core.ActionRock, core.ActionPaper))
	if len(res.Cues) != 0 || !res.State.GameOver {
		t.Error("moves after match over should be ignored")
	}

	res = g.Step(frame(core.ActionRestart, core.ActionNone))
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should start a fresh match, got %+v", res.State)
	}
}

func TestRoundAnnouncement(t *testing.T) {
	g := NewHotSeat()
	g.Reset(testConfig())

	for i := 0; i < 3; i++ {
		g.Step(frame(core.ActionRock, core.ActionScissors))
	}

	out := render(g)
	if !strings.Contains(out, "Player 1 takes round 1 (3-0)") {
		t.Errorf("round winner line missing:\n%s", out)
	}
	if !strings.Contains(out, "Round 2 starting!") {
		t.Errorf("round start line missing:\n%s", out)
	}
	if !strings.Contains(out, "Round 2/3 | Go 1/3") {
		t.Errorf("score line not advanced:\n%s", out)
	}
}

func TestToggleModeRestarts(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame(core.ActionRock, core.ActionNone))

	g.Step(frame(core.ActionToggleMode, core.ActionNone))
	if g.Mode() != PlayerVsPlayer || g.ID() != IDVsPlayer {
		t.Errorf("mode = %s, id = %s after toggle", g.Mode(), g.ID())
	}
	if g.Summary().Go != 1 || g.hasLast {
		t.Error("mode switch should start a fresh match")
	}

	g.Step(frame(core.ActionToggleMode, core.ActionNone))
	if g.Mode() != PlayerVsComputer {
		t.Error("second toggle should return to vs computer")
	}
}

func TestResizeKeepsMatch(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frame(core.ActionRock, core.ActionNone))
	before := g.Summary()

	g.Resize(30, 10)
	if !g.State().Paused {
		t.Error("tiny window should pause")
	}
	s := core.NewScreen(30, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Error("tiny window should show a resize hint")
	}

	g.Resize(80, 24)
	if g.Summary() != before {
		t.Error("resize must not touch the match")
	}
}
