package engine

import (
	"connectfour/game"
	"connectfour/searcher"
)

// NewGame returns the empty starting board.
func NewGame() game.Board {
	return game.NewBoard()
}

// LegalMoves lists the playable columns in ascending order.
func LegalMoves(board game.Board) []int {
	return board.AvailableMoves()
}

// ApplyMove returns a copy of board with player's disc dropped in column and
// the row it landed in. On error the returned board equals the input.
func ApplyMove(board game.Board, column int, player game.Player) (game.Board, int, error) {
	next := board.Clone()
	row, err := next.Drop(column, player)
	if err != nil {
		return board, -1, err
	}
	return next, row, nil
}

func IsTerminal(board game.Board) game.Result {
	return game.Outcome(&board)
}

// BestMove searches depth plies ahead and returns the column to play.
func BestMove(board game.Board, player game.Player, depth int) (int, error) {
	result, err := searcher.NewMinimax(searcher.WithDepth(depth)).Search(&board, player)
	if err != nil {
		return -1, err
	}
	return result.Column, nil
}
