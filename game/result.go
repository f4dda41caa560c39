package game

type Status int

const (
	Ongoing Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Result is the outcome of a position. Winner is Empty unless Status is Won.
type Result struct {
	Status Status
	Winner Player
}

// Outcome classifies the board. A win takes precedence over a full board.
func Outcome(b *Board) Result {
	switch {
	case CheckWin(b, PlayerA):
		return Result{Status: Won, Winner: PlayerA}
	case CheckWin(b, PlayerB):
		return Result{Status: Won, Winner: PlayerB}
	case b.IsFull():
		return Result{Status: Draw}
	default:
		return Result{Status: Ongoing}
	}
}

func (r Result) Over() bool {
	return r.Status != Ongoing
}

// String matches the messages printed at the end of a game.
func (r Result) String() string {
	switch r.Status {
	case Won:
		return r.Winner.String() + " wins"
	case Draw:
		return "Its a Tie"
	default:
		return "ongoing"
	}
}
