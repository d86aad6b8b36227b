package rps

import (
	"errors"
	"fmt"
)

// Match shape constants. These are fixed: the CLI and YAML config never
// expose them.
const (
	DefaultRoundsPerMatch = 3
	DefaultGoesPerRound   = 3
)

var (
	// ErrInvalidParty is returned when a party submits a move it may not
	// submit: the second party under PlayerVsComputer, an unknown party,
	// or any submission outside AwaitingMoves.
	ErrInvalidParty = errors.New("rps: invalid party")

	// ErrInvalidMove is returned for a move that is not Rock, Paper or Scissors.
	ErrInvalidMove = errors.New("rps: invalid move")

	// ErrInvalidConfig is returned for a match config the controller cannot run.
	ErrInvalidConfig = errors.New("rps: invalid match config")
)

// MatchConfig describes the shape of a match.
type MatchConfig struct {
	RoundsPerMatch int
	GoesPerRound   int
	Mode           Mode
}

// DefaultMatchConfig returns a best-of-3 rounds, best-of-3 goes config.
func DefaultMatchConfig(mode Mode) MatchConfig {
	return MatchConfig{
		RoundsPerMatch: DefaultRoundsPerMatch,
		GoesPerRound:   DefaultGoesPerRound,
		Mode:           mode,
	}
}

// Validate checks that both counts are positive and odd.
// Odd counts make every round and every match produce a strict winner.
func (c MatchConfig) Validate() error {
	if c.RoundsPerMatch <= 0 || c.RoundsPerMatch%2 == 0 {
		return fmt.Errorf("%w: rounds per match must be a positive odd number, got %d", ErrInvalidConfig, c.RoundsPerMatch)
	}
	if c.GoesPerRound <= 0 || c.GoesPerRound%2 == 0 {
		return fmt.Errorf("%w: goes per round must be a positive odd number, got %d", ErrInvalidConfig, c.GoesPerRound)
	}
	if c.Mode != PlayerVsComputer && c.Mode != PlayerVsPlayer {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, c.Mode)
	}
	return nil
}

// RandSource supplies the computer's choices. *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// state is the mutable match state. It is replaced wholesale on restart.
type state struct {
	round     int
	goNum     int
	goWins    Tally
	roundWins Tally
	pending   [2]Move // indexed by party-1; MoveNone means empty
	phase     Phase
}

func freshState() state {
	return state{round: 1, goNum: 1, phase: AwaitingMoves}
}

// Summary is a read-only snapshot of the match.
// Pending moves are reported only as present or absent so that a hot-seat
// opponent looking at the screen learns nothing.
type Summary struct {
	Mode           Mode
	Round          int
	RoundsPerMatch int
	Go             int
	GoesPerRound   int
	GoWins         Tally
	RoundWins      Tally
	Phase          Phase
	FirstReady     bool
	SecondReady    bool
}

// Result describes what a SubmitMove call did.
type Result struct {
	// Awaiting is true when the move was stored and the other party has
	// not played yet. All other fields except Summary are zero.
	Awaiting bool

	First   Move
	Second  Move
	Outcome Outcome

	// RoundClosed is set when this go completed a round.
	RoundClosed bool
	RoundWinner Party
	RoundGoWins Tally // go tally that closed the round

	// MatchOver is set when this go completed the final round.
	MatchOver   bool
	MatchWinner Party

	Summary Summary
}

// Controller owns a match and is the only place scores change.
// It is not safe for concurrent use; each UI loop owns its own controller.
type Controller struct {
	cfg MatchConfig
	rng RandSource
	st  state
}

// NewController creates a controller with a fresh match.
func NewController(cfg MatchConfig, rng RandSource) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &Controller{cfg: cfg, rng: rng, st: freshState()}, nil
}

// Config returns the active match config.
func (c *Controller) Config() MatchConfig {
	return c.cfg
}

// Mode returns the active play mode.
func (c *Controller) Mode() Mode {
	return c.cfg.Mode
}

// SubmitMove records a move for a party and resolves the go once both
// sides have played.
func (c *Controller) SubmitMove(move Move, party Party) (Result, error) {
	if !move.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidMove, int(move))
	}
	if party != First && party != Second {
		return Result{}, fmt.Errorf("%w: unknown party %d", ErrInvalidParty, int(party))
	}
	if c.st.phase != AwaitingMoves {
		return Result{}, fmt.Errorf("%w: %s cannot play during %s", ErrInvalidParty, party, c.st.phase)
	}

	if c.cfg.Mode == PlayerVsComputer {
		if party == Second {
			return Result{}, fmt.Errorf("%w: second party is the computer in %s mode", ErrInvalidParty, c.cfg.Mode)
		}
		return c.resolve(move, c.computerMove()), nil
	}

	c.st.pending[party-1] = move
	first, second := c.st.pending[0], c.st.pending[1]
	if first == MoveNone || second == MoveNone {
		return Result{Awaiting: true, Summary: c.Summary()}, nil
	}
	return c.resolve(first, second), nil
}

func (c *Controller) computerMove() Move {
	return Moves[c.rng.Intn(len(Moves))]
}

// resolve scores one go and advances the match.
func (c *Controller) resolve(first, second Move) Result {
	st := &c.st
	res := Result{First: first, Second: second, Outcome: Resolve(first, second)}

	st.pending = [2]Move{}
	st.phase = GoResolved

	if winner, ok := res.Outcome.Winner(); ok {
		st.goWins.credit(winner)
	}

	if st.goWins.Total() < c.cfg.GoesPerRound {
		st.goNum++
		st.phase = AwaitingMoves
		res.Summary = c.Summary()
		return res
	}

	// Odd goes per round guarantee a strict leader here.
	st.phase = RoundOver
	roundWinner, _ := st.goWins.leader()
	st.roundWins.credit(roundWinner)
	res.RoundGoWins = st.goWins
	st.goWins = Tally{}
	st.goNum = 1
	res.RoundClosed = true
	res.RoundWinner = roundWinner

	if st.round >= c.cfg.RoundsPerMatch {
		st.phase = MatchOver
		res.MatchOver = true
		res.MatchWinner, _ = st.roundWins.leader()
	} else {
		st.round++
		st.phase = AwaitingMoves
	}

	res.Summary = c.Summary()
	return res
}

// Restart discards the match and starts a fresh one with the same config.
func (c *Controller) Restart() {
	c.st = freshState()
}

// Reconfigure starts a fresh match with a new config.
// On error the current match is left untouched.
func (c *Controller) Reconfigure(cfg MatchConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.st = freshState()
	return nil
}

// SetMode restarts the match in the given mode.
func (c *Controller) SetMode(mode Mode) error {
	cfg := c.cfg
	cfg.Mode = mode
	return c.Reconfigure(cfg)
}

// Summary returns a snapshot of the current match.
func (c *Controller) Summary() Summary {
	return Summary{
		Mode:           c.cfg.Mode,
		Round:          c.st.round,
		RoundsPerMatch: c.cfg.RoundsPerMatch,
		Go:             c.st.goNum,
		GoesPerRound:   c.cfg.GoesPerRound,
		GoWins:         c.st.goWins,
		RoundWins:      c.st.roundWins,
		Phase:          c.st.phase,
		FirstReady:     c.st.pending[0] != MoveNone,
		SecondReady:    c.st.pending[1] != MoveNone,
	}
}

// Winner returns the match winner once the match is over.
func (c *Controller) Winner() (Party, bool) {
	if c.st.phase != MatchOver {
		return 0, false
	}
	return c.st.roundWins.leader()
}
