package game

import "fmt"

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Player identifies the owner of a cell. PlayerA moves first and is the maximizer.
type Player int8

const (
	Empty Player = iota
	PlayerA
	PlayerB
)

// Opponent returns the other player. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// String renders the player the way the board is printed.
func (p Player) String() string {
	switch p {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return " "
	}
}

// ParsePlayer accepts the printed marks and the colour names used in the menu.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "X", "x", "red", "A", "a":
		return PlayerA, nil
	case "O", "o", "yellow", "B", "b":
		return PlayerB, nil
	}
	return Empty, fmt.Errorf("unknown player %q", s)
}

// Error is a constant error kind returned by board operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrColumnEmpty   Error = "column is empty"
	ErrInvalidPlayer Error = "invalid player"
)

// Evaluate scores a position from PlayerA's point of view.
type Evaluate func(*Board) Score
