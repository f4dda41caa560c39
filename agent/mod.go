package agent

import (
	"connectfour/game"
	"connectfour/searcher"
)

type Agent interface {
	// FindMove returns the column to play and, for search-based agents, the score and metrics
	FindMove(board *game.Board, player game.Player) (searcher.Result, error)
}

type computerAgent struct {
	searcher searcher.Searcher
}

// NewComputerAgent returns an agent that plays the searcher's best move.
func NewComputerAgent(s searcher.Searcher) Agent {
	return computerAgent{searcher: s}
}

func (a computerAgent) FindMove(board *game.Board, player game.Player) (searcher.Result, error) {
	return a.searcher.Search(board, player)
}
