package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

const (
	ErrSearchOnTerminalBoard game.Error = "search on a terminal board"
	ErrInvalidDepth          game.Error = "search depth must be at least 1"
)

// Result is the outcome of a search: the chosen column and its minimax score
// from PlayerA's point of view.
type Result struct {
	Column int
	Score  game.Score
	Metric metrics.SearchMetric
}

// Searcher picks a move for the player to move.
type Searcher interface {
	Search(board *game.Board, player game.Player) (Result, error)
}
