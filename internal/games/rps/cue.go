package rps

// Cue is a semantic sound event. The platform maps cues to actual sounds.
type Cue string

const (
	CueMoveRock     Cue = "move_rock"
	CueMovePaper    Cue = "move_paper"
	CueMoveScissors Cue = "move_scissors"
	CueDraw         Cue = "draw"
	CueWin          Cue = "win"
	CueLose         Cue = "lose"
	CueMatchStart   Cue = "match_start"
	CueMatchEnd     Cue = "match_end"
)

// AllCues lists every cue, in declaration order.
var AllCues = []Cue{
	CueMoveRock, CueMovePaper, CueMoveScissors,
	CueDraw, CueWin, CueLose,
	CueMatchStart, CueMatchEnd,
}

// MoveCue returns the cue played when a move is thrown.
func MoveCue(m Move) (Cue, bool) {
	switch m {
	case Rock:
		return CueMoveRock, true
	case Paper:
		return CueMovePaper, true
	case Scissors:
		return CueMoveScissors, true
	default:
		return "", false
	}
}

// CuesFor returns the cues for a submission of move, in play order.
// Win and lose are from the first party's point of view.
func CuesFor(move Move, res Result) []Cue {
	var cues []Cue
	if c, ok := MoveCue(move); ok {
		cues = append(cues, c)
	}
	if res.Awaiting {
		return cues
	}

	switch res.Outcome {
	case Draw:
		cues = append(cues, CueDraw)
	case FirstWins:
		cues = append(cues, CueWin)
	case SecondWins:
		cues = append(cues, CueLose)
	}

	if res.MatchOver {
		cues = append(cues, CueMatchEnd)
	}
	return cues
}
