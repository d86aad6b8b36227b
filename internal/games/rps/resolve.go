package rps

// beats maps each move to the one move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Resolve compares a (first party) against b (second party).
// Both moves must be valid; an invalid move never beats anything, so
// Resolve(MoveNone, MoveNone) is a Draw and callers must validate first.
func Resolve(a, b Move) Outcome {
	switch {
	case a == b:
		return Draw
	case beats[a] == b:
		return FirstWins
	default:
		return SecondWins
	}
}

// Winner converts an outcome into the winning party.
// ok is false for a draw.
func (o Outcome) Winner() (p Party, ok bool) {
	switch o {
	case FirstWins:
		return First, true
	case SecondWins:
		return Second, true
	default:
		return 0, false
	}
}
