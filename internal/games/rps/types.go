// Package rps implements rock-paper-scissors: the match
// controller that owns all scoring state, and the game adapter that drives
// it from platform input and renders it to a screen buffer.
package rps

import (
	"fmt"
	"strings"
)

// Move is a single rock-paper-scissors throw.
// The zero value is not a valid move.
type Move int

const (
	MoveNone Move = iota
	Rock
	Paper
	Scissors
)

// Moves lists the valid moves in draw order for the random source.
var Moves = [...]Move{Rock, Paper, Scissors}

// Valid reports whether m is one of the three throwable moves.
func (m Move) Valid() bool {
	return m == Rock || m == Paper || m == Scissors
}

// String returns the display name of the move.
func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "None"
	}
}

// Outcome is the result of comparing the first party's move with the second's.
type Outcome int

const (
	Draw Outcome = iota
	FirstWins
	SecondWins
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "Draw"
	case FirstWins:
		return "FirstWins"
	case SecondWins:
		return "SecondWins"
	default:
		return "Unknown"
	}
}

// Party identifies one side of a match.
type Party int

const (
	First Party = iota + 1
	Second
)

// String returns the party name.
func (p Party) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return "Unknown"
	}
}

// Mode selects who plays the second party.
type Mode int

const (
	PlayerVsComputer Mode = iota
	PlayerVsPlayer
)

// String returns the short mode code used on the command line and in storage.
func (m Mode) String() string {
	switch m {
	case PlayerVsComputer:
		return "pvc"
	case PlayerVsPlayer:
		return "pvp"
	default:
		return "unknown"
	}
}

// Label returns a human-readable mode name.
func (m Mode) Label() string {
	if m == PlayerVsPlayer {
		return "Player 1 vs Player 2"
	}
	return "Player vs Computer"
}

// ParseMode parses "pvc" or "pvp" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvc", "cpu", "computer":
		return PlayerVsComputer, nil
	case "pvp", "hotseat", "versus":
		return PlayerVsPlayer, nil
	default:
		return PlayerVsComputer, fmt.Errorf("rps: unknown mode %q (want pvc or pvp)", s)
	}
}

// Phase is the controller's position in the match state machine.
// GoResolved and RoundOver are transient within a single SubmitMove call;
// callers only ever observe AwaitingMoves and MatchOver.
type Phase int

const (
	AwaitingMoves Phase = iota
	GoResolved
	RoundOver
	MatchOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case AwaitingMoves:
		return "AwaitingMoves"
	case GoResolved:
		return "GoResolved"
	case RoundOver:
		return "RoundOver"
	case MatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// Tally is a pair of win counters, one per party.
type Tally struct {
	First  int
	Second int
}

// Total returns the sum of both counters.
func (t Tally) Total() int {
	return t.First + t.Second
}

// Of returns the counter for the given party.
func (t Tally) Of(p Party) int {
	if p == Second {
		return t.Second
	}
	return t.First
}

func (t *Tally) credit(p Party) {
	switch p {
	case First:
		t.First++
	case Second:
		t.Second++
	}
}

// leader returns the party with the strictly greater count.
// ok is false on an exact tie.
func (t Tally) leader() (p Party, ok bool) {
	switch {
	case t.First > t.Second:
		return First, true
	case t.Second > t.First:
		return Second, true
	default:
		return 0, false
	}
}
